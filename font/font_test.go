package font

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCollection(t *testing.T) {
	c := Collection()
	if len(c) == 0 {
		t.Fatal("empty font collection")
	}
	if cap(c) != len(c) {
		t.Errorf("cap(Collection())=%d, want %d", cap(c), len(c))
	}
}

func TestWithFileErrors(t *testing.T) {
	if _, err := WithFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Errorf("WithFile(missing) succeeded")
	}

	bogus := filepath.Join(t.TempDir(), "bogus.ttf")
	if err := os.WriteFile(bogus, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := WithFile(bogus); err == nil {
		t.Errorf("WithFile(bogus) succeeded")
	}
}
