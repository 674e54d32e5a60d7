package compendium

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerate_MarkdownEndToEnd(t *testing.T) {
	repo := t.TempDir()
	writeTestFile(t, repo, "main.py", []byte("print('hi')"))
	writeTestFile(t, repo, "lib/util.py", []byte("x = 1"))
	writeTestFile(t, repo, "lib/blob.bin", append([]byte("bin"), 0x00))

	out := filepath.Join(t.TempDir(), "out.md")
	err := NewGenerator(nil).Generate(GenerateArgs{
		Root:   repo,
		Output: out,
		Format: FormatMarkdown,
		Scan:   DefaultScanConfig(),
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	doc := string(data)
	if !strings.HasPrefix(doc, "# Repository Code Compendium\n\n") {
		t.Error("output missing title")
	}
	if !strings.Contains(doc, "### File: main.py") || !strings.Contains(doc, "### File: lib/util.py") {
		t.Errorf("output missing file sections:\n%s", doc)
	}
	if strings.Contains(doc, "blob.bin") {
		t.Error("binary file leaked into the document")
	}
}

func TestGenerate_JSONWithSuppliedInventory(t *testing.T) {
	repo := t.TempDir()
	writeTestFile(t, repo, "a.py", []byte("x=1"))
	writeTestFile(t, repo, "b.py", []byte("y=2"))

	inv, err := NewScanner(nil).Scan(repo, DefaultScanConfig())
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	// Collaborator deselects one entry before generating.
	if !inv.Toggle("b.py") {
		t.Fatal("missing b.py in inventory")
	}

	out := filepath.Join(t.TempDir(), "out.json")
	err = NewGenerator(nil).Generate(GenerateArgs{
		Root:      repo,
		Output:    out,
		Format:    FormatJSON,
		Inventory: inv,
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var doc struct {
		Repository []FileContent `json:"repository"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(doc.Repository) != 1 || doc.Repository[0].Path != "a.py" {
		t.Errorf("deselected entry was not honored: %+v", doc.Repository)
	}
}

func TestGenerate_OverwritesExistingOutput(t *testing.T) {
	repo := t.TempDir()
	writeTestFile(t, repo, "a.txt", []byte("new"))

	out := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(out, []byte(strings.Repeat("stale", 100)), 0o644); err != nil {
		t.Fatal(err)
	}

	err := NewGenerator(nil).Generate(GenerateArgs{
		Root:   repo,
		Output: out,
		Format: FormatPlain,
		Scan:   DefaultScanConfig(),
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	data, _ := os.ReadFile(out)
	if strings.Contains(string(data), "stale") {
		t.Error("existing output content must be overwritten")
	}
}

func TestGenerate_ConfigurationErrors(t *testing.T) {
	repo := t.TempDir()
	writeTestFile(t, repo, "a.txt", []byte("x"))

	gen := NewGenerator(nil)

	if err := gen.Generate(GenerateArgs{Root: repo, Format: FormatPlain, Scan: DefaultScanConfig()}); err == nil {
		t.Error("missing output path must fail")
	}

	out := filepath.Join(t.TempDir(), "out.md")
	if err := gen.Generate(GenerateArgs{
		Root:   filepath.Join(repo, "missing"),
		Output: out,
		Format: FormatMarkdown,
		Scan:   DefaultScanConfig(),
	}); err == nil {
		t.Error("missing root must fail")
	}

	inv := Inventory{{Path: "a.txt", Selected: false}}
	if err := gen.Generate(GenerateArgs{
		Root:      repo,
		Output:    out,
		Format:    FormatMarkdown,
		Inventory: inv,
	}); err == nil {
		t.Error("empty selection must fail before any write")
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("failed run must not leave an output file behind")
	}
}

func TestGenerate_PostScanFilters(t *testing.T) {
	repo := t.TempDir()
	writeTestFile(t, repo, "keep.go", []byte("package a"))
	writeTestFile(t, repo, "skip.md", []byte("# doc"))

	include, err := CompilePatterns(`\.go$`)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "out.md")
	err = NewGenerator(nil).Generate(GenerateArgs{
		Root:    repo,
		Output:  out,
		Format:  FormatMarkdown,
		Scan:    DefaultScanConfig(),
		Include: include,
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	data, _ := os.ReadFile(out)
	if strings.Contains(string(data), "skip.md") {
		t.Error("include filter did not drop non-matching file")
	}
	if !strings.Contains(string(data), "keep.go") {
		t.Error("include filter dropped a matching file")
	}
}
