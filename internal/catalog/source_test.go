package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venues.yaml")
	data := `
venues:
  - id: cafe1
    name: Cafe One
    description: Coffee
    opens_at: "10:00"
    closes_at: "23:00"
    phone: "+123321456"
    link: https://instagram.com/
  - id: cafe2
    name: Cafe Two
  - id: cafe3
    name: Cafe Three
  - id: cafe4
    name: Cafe Four
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadYAML(path, 3)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 4 || c.PageCount() != 2 {
		t.Errorf("len %d pages %d", c.Len(), c.PageCount())
	}
	it, ok := c.ItemByID("cafe1")
	if !ok || it.OpensAt != "10:00" || it.Link != "https://instagram.com/" {
		t.Errorf("cafe1 = %+v, %v", it, ok)
	}
}

func TestLoadYAMLErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadYAML(filepath.Join(dir, "absent.yaml"), 3); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("venues: [junk"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadYAML(bad, 3); err == nil {
		t.Error("expected error for malformed yaml")
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("venues: []"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadYAML(empty, 3); err == nil {
		t.Error("expected error for empty venue list")
	}
}
