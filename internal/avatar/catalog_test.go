package avatar

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if len(c.Hats) != 12 {
		t.Errorf("Expected 12 hats, got %d", len(c.Hats))
	}
	if !c.HasHat("none") || !c.HasHat("random") {
		t.Error("Expected none and random hats")
	}
	if r, ok := c.Range(FieldFace); !ok || r != (Range{0, 5}) {
		t.Errorf("Expected face range 0-5, got %+v", r)
	}
	if _, ok := c.Range(FieldHat); ok {
		t.Error("Expected no range for hat")
	}

	// mutating one catalog must not leak into the next
	c.Hats[0] = "changed"
	c.Ranges[FieldSkin] = Range{0, 1}
	d := DefaultCatalog()
	if d.Hats[0] != "none" || d.Ranges[FieldSkin] != (Range{0, 9}) {
		t.Error("Expected a fresh default catalog")
	}
}

func TestHatOptions(t *testing.T) {
	opts := DefaultCatalog().HatOptions()
	if len(opts) != 12 {
		t.Fatalf("Expected 12 options, got %d", len(opts))
	}
	if opts[0].Value != "none" || opts[0].Label != "None" {
		t.Errorf("Expected none/None, got %+v", opts[0])
	}
	if opts[3].Value != "construction" || opts[3].Label != "Construction" {
		t.Errorf("Expected construction/Construction, got %+v", opts[3])
	}
}

func TestLoadCatalog(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "catalog.yaml")
	data := `hats:
  - none
  - pirate
ranges:
  size:
    min: 50
    max: 80
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(c.Hats) != 2 || !c.HasHat("pirate") || c.HasHat("bunny") {
		t.Errorf("Expected hats from file, got %v", c.Hats)
	}
	if r, _ := c.Range(FieldSize); r != (Range{50, 80}) {
		t.Errorf("Expected size range 50-80, got %+v", r)
	}
	if r, _ := c.Range(FieldFace); r != (Range{0, 5}) {
		t.Errorf("Expected default face range kept, got %+v", r)
	}
}

func TestLoadCatalog_EmptyFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(c.Hats) != 12 || len(c.Ranges) != 9 {
		t.Errorf("Expected default catalog, got %d hats %d ranges", len(c.Hats), len(c.Ranges))
	}
}

func TestLoadCatalog_Errors(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("hats: [unterminated"), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	if _, err := LoadCatalog(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadCatalog_RepoCatalog(t *testing.T) {
	c, err := LoadCatalog(filepath.Join("..", "..", "catalog.yaml"))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	def := DefaultCatalog()
	if len(c.Hats) != len(def.Hats) {
		t.Errorf("Expected %d hats, got %d", len(def.Hats), len(c.Hats))
	}
	for f, r := range def.Ranges {
		if c.Ranges[f] != r {
			t.Errorf("range %s: expected %+v, got %+v", f, r, c.Ranges[f])
		}
	}
}
