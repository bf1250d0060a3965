package reqgen

import (
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// workspace copies the testdata module into a temp dir so Generate can write
// into it. The copy's go.mod points the runtime import at this repository,
// so reloading the package after generation still type-checks.
func workspace(t *testing.T) string {
	t.Helper()
	t.Setenv("GOWORK", "off")
	t.Setenv("GOFLAGS", "-mod=mod")

	dir := t.TempDir()
	// os.CopyFS equivalent; os.CopyFS needs Go 1.23 and this builds on 1.21.
	src := filepath.Join("testdata", "gen")
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(dir, rel)
		if d.IsDir() {
			return os.MkdirAll(dst, 0777)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(dst, data, 0666)
	})
	if err != nil {
		t.Fatalf("copy testdata: %v", err)
	}

	root, err := filepath.Abs("..")
	if err != nil {
		t.Fatal(err)
	}
	gomod := fmt.Sprintf(`module example.com/gen

go 1.21

require github.com/tmstorey/reqwire v0.0.0

replace github.com/tmstorey/reqwire => %s
`, root)
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestBuild(t *testing.T) {
	dir := workspace(t)

	files, err := Build(Config{Dir: dir})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
	f := files[0]
	if f.Name != DefaultFileName {
		t.Errorf("file name = %q, want %q", f.Name, DefaultFileName)
	}
	src := string(f.Content)
	for _, want := range []string{
		"package gen",
		"type PingBuilder struct {",
		"func (b *PingBuilder) Send() ([]byte, error) {",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("missing %q in output", want)
		}
	}
	if _, err := parser.ParseFile(token.NewFileSet(), f.Name, f.Content, 0); err != nil {
		t.Errorf("output does not parse: %v", err)
	}
}

func TestGenerateAndCheck(t *testing.T) {
	dir := workspace(t)
	ctx := context.Background()
	cfg := Config{Dir: dir}

	stale, err := Check(ctx, cfg)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(stale) != 1 {
		t.Fatalf("before generation, stale = %v", stale)
	}

	written, err := Generate(ctx, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(written) != 1 {
		t.Fatalf("written = %v", written)
	}
	if _, err := os.Stat(written[0]); err != nil {
		t.Fatalf("generated file missing: %v", err)
	}

	stale, err = Check(ctx, cfg)
	if err != nil {
		t.Fatalf("Check after generate: %v", err)
	}
	if len(stale) != 0 {
		t.Errorf("after generation, stale = %v", stale)
	}

	// Hand-editing the generated file makes it stale again.
	if err := os.WriteFile(written[0], []byte("package gen\n"), 0644); err != nil {
		t.Fatal(err)
	}
	stale, err = Check(ctx, cfg)
	if err != nil {
		t.Fatalf("Check after edit: %v", err)
	}
	if len(stale) != 1 {
		t.Errorf("after edit, stale = %v", stale)
	}
}

func TestBuildReportsValidationErrors(t *testing.T) {
	dir := workspace(t)
	// Break the source: a placeholder with no matching field.
	src := `package gen

//reqwire:request path=/broken/{missing}
type Broken struct {
	Name string ` + "`rest:\"body\"`" + `
}
`
	if err := os.WriteFile(filepath.Join(dir, "broken.go"), []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Build(Config{Dir: dir})
	if err == nil || !strings.Contains(err.Error(), "unmatched_path_parameter") {
		t.Fatalf("Build error = %v", err)
	}
}
