package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pario-ai/anggaran/pkg/models"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestExtractArgs(t *testing.T) {
	out, err := run(t, "", "extract", "anggaran", "Rp", "300", "juta")
	if err != nil {
		t.Fatal(err)
	}
	if out != "300000000\n" {
		t.Errorf("got %q", out)
	}
}

func TestExtractStdin(t *testing.T) {
	out, err := run(t, "5 miliar\ntolong bantu\n1.5jt\n", "extract", "--format")
	if err != nil {
		t.Fatal(err)
	}
	want := "Rp 5.000.000.000\nnot found\nRp 15.000.000\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestExtractExplain(t *testing.T) {
	out, err := run(t, "", "extract", "--explain", "50k")
	if err != nil {
		t.Fatal(err)
	}
	if out != "50000\tthousand\t\"50k\"\n" {
		t.Errorf("got %q", out)
	}
}

func TestAnalyzeJSON(t *testing.T) {
	out, err := run(t, "", "analyze", "--json", "pengadaan", "server", "Rp", "300.000.000")
	if err != nil {
		t.Fatal(err)
	}
	var resp models.AnalyzeResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if resp.Tier != models.DecisionB || resp.Amount != "300000000" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestAnalyzeRender(t *testing.T) {
	out, err := run(t, "", "analyze", "lisensi", "Rp", "20", "juta")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Rp 20.000.000", "Keputusan: a", "Review Pekerjaan", "RKS Lisensi (Dir. Bidang)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAnalyzeRequiresText(t *testing.T) {
	if _, err := run(t, "", "analyze"); err == nil {
		t.Error("expected error without text")
	}
}

func TestAnalyzeWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anggaran.yaml")
	if err := os.WriteFile(path, []byte("decision:\n  threshold: 10000000\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "", "--config", path, "analyze", "--json", "20jt")
	if err != nil {
		t.Fatal(err)
	}
	var resp models.AnalyzeResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if resp.Tier != models.DecisionB {
		t.Errorf("tier = %s, want b with a 10jt threshold", resp.Tier)
	}
}

func TestDocuments(t *testing.T) {
	out, err := run(t, "", "documents", "--tier", "b")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Draf Nota Dinas Izin Prinsip") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, err = run(t, "", "documents", "review")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Review Pekerjaan") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, err = run(t, "", "documents", "kontrak")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Dokumen tidak ditemukan.") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, err := run(t, "", "documents", "--tier", "z"); err == nil {
		t.Error("expected error for unknown tier")
	}
}
