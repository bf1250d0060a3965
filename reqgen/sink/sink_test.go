package sink

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFilesystemSinkWrite(t *testing.T) {
	root := t.TempDir()
	s := NewFilesystemSink(root)
	ctx := context.Background()

	if err := s.WriteFile(ctx, "api/reqwire.gen.go", []byte("package api\n")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(root, "api", "reqwire.gen.go"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "package api\n" {
		t.Errorf("content = %q", got)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Join(root, "api"))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".reqwire-") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestFilesystemSinkOverwrite(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	s := NewFilesystemSink(root)
	if err := s.WriteFile(ctx, "f.go", []byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteFile(ctx, "f.go", []byte("two")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ := os.ReadFile(filepath.Join(root, "f.go"))
	if string(got) != "two" {
		t.Errorf("content = %q", got)
	}

	s.Overwrite = false
	err := s.WriteFile(ctx, "f.go", []byte("three"))
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("expected exists error, got %v", err)
	}
}

func TestFilesystemSinkRejectsEscape(t *testing.T) {
	s := NewFilesystemSink(t.TempDir())
	err := s.WriteFile(context.Background(), "../escape.go", []byte("x"))
	if err == nil {
		t.Fatal("expected error for escaping path")
	}
}

func TestFilesystemSinkCanceledContext(t *testing.T) {
	s := NewFilesystemSink(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.WriteFile(ctx, "f.go", []byte("x")); err == nil {
		t.Fatal("expected context error")
	}
}

func TestMemorySink(t *testing.T) {
	s := NewMemorySink()
	ctx := context.Background()

	content := []byte("package api")
	if err := s.WriteFile(ctx, "a/f.go", content); err != nil {
		t.Fatal(err)
	}
	content[0] = 'X' // the sink must have taken a copy
	if got := string(s.Get("a/f.go")); got != "package api" {
		t.Errorf("Get = %q", got)
	}
	if s.Get("missing") != nil {
		t.Error("Get(missing) should be nil")
	}
	if n := len(s.Files()); n != 1 {
		t.Errorf("Files() has %d entries", n)
	}

	s.Reset()
	if n := len(s.Files()); n != 0 {
		t.Errorf("after Reset, %d entries", n)
	}
}

func TestValidatePath(t *testing.T) {
	valid := []string{"f.go", "a/b/f.go", "reqwire.gen.go"}
	for _, p := range valid {
		if err := ValidatePath(p); err != nil {
			t.Errorf("ValidatePath(%q) = %v", p, err)
		}
	}
	invalid := []string{"", "/abs/f.go", "C:file.go", "a/../f.go", "./f.go", "a//f.go"}
	for _, p := range invalid {
		if err := ValidatePath(p); err == nil {
			t.Errorf("ValidatePath(%q): expected error", p)
		}
	}
}
