package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var pdfHeader = []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")

	content := []byte("hello world")
	writeFile(t, src, content)

	if err := CopyFile(src, dst); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Fatalf("content mismatch: got %q, want %q", got, content)
	}
}

func TestCopyFileNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.pdf")
	dst := filepath.Join(dir, "dst.pdf")
	writeFile(t, src, []byte("new"))
	writeFile(t, dst, []byte("old"))

	for _, copyFn := range []func(string, string) error{CopyFile, CopyFileVerified} {
		err := copyFn(src, dst)
		if !errors.Is(err, ErrTargetExists) {
			t.Fatalf("expected ErrTargetExists, got %v", err)
		}
	}
	got, _ := os.ReadFile(dst)
	if string(got) != "old" {
		t.Fatalf("existing target modified: %q", got)
	}
}

func TestCopyFileVerified(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")

	content := []byte("verified copy content")
	writeFile(t, src, content)

	if err := CopyFileVerified(src, dst); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Fatalf("content mismatch: got %q, want %q", got, content)
	}
}

func TestCopyFileVerified_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFileVerified(filepath.Join(dir, "nonexistent"), filepath.Join(dir, "dst.bin"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if Exists(filepath.Join(dir, "dst.bin")) {
		t.Fatal("expected no destination file")
	}
}

func TestListPDFs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.pdf"), pdfHeader)
	writeFile(t, filepath.Join(dir, "nested", "a.PDF"), pdfHeader)
	writeFile(t, filepath.Join(dir, "fake.pdf"), []byte("plain text pretending"))
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("ignore me"))
	writeFile(t, filepath.Join(dir, KeepFile), nil)

	pdfs, rejected, err := ListPDFs(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(dir, "b.pdf"), filepath.Join(dir, "nested", "a.PDF")}
	if len(pdfs) != len(want) || pdfs[0] != want[0] || pdfs[1] != want[1] {
		t.Fatalf("unexpected pdfs %v, want %v", pdfs, want)
	}
	if len(rejected) != 1 || rejected[0] != filepath.Join(dir, "fake.pdf") {
		t.Fatalf("unexpected rejected %v", rejected)
	}
}

func TestListFilesTopLevelOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.pdf"), pdfHeader)
	writeFile(t, filepath.Join(dir, "sub", "b.pdf"), pdfHeader)

	files, err := ListFiles(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0] != filepath.Join(dir, "a.pdf") {
		t.Fatalf("unexpected files %v", files)
	}
}

func TestClearDirectoryKeepsGitkeep(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, KeepFile), nil)
	writeFile(t, filepath.Join(dir, "Trades", "Crypto", "BTC_20230305.pdf"), pdfHeader)
	writeFile(t, filepath.Join(dir, "kept", KeepFile), nil)
	writeFile(t, filepath.Join(dir, "kept", "old.pdf"), pdfHeader)
	writeFile(t, filepath.Join(dir, "loose.pdf"), pdfHeader)

	if err := ClearDirectory(dir); err != nil {
		t.Fatal(err)
	}

	for _, gone := range []string{"Trades", "loose.pdf", filepath.Join("kept", "old.pdf")} {
		if Exists(filepath.Join(dir, gone)) {
			t.Fatalf("expected %s to be removed", gone)
		}
	}
	for _, kept := range []string{KeepFile, filepath.Join("kept", KeepFile)} {
		if !Exists(filepath.Join(dir, kept)) {
			t.Fatalf("expected %s to survive", kept)
		}
	}
}

func TestClearDirectoryMissingIsNoop(t *testing.T) {
	if err := ClearDirectory(filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
