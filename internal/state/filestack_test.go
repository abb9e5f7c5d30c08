package state

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStackWithNestedRestoresOffset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outer.48s")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()

	if _, err := f.WriteString("1234567890"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}

	var fs FileStack
	if err := fs.WithNested(f, func() error {
		if fs.Depth() != 1 {
			t.Fatalf("Depth inside nested call = %d, want 1", fs.Depth())
		}
		_, err := f.Seek(0, 0)
		return err
	}); err != nil {
		t.Fatalf("WithNested: %v", err)
	}

	if fs.Depth() != 0 {
		t.Fatalf("Depth after WithNested = %d, want 0", fs.Depth())
	}
	pos, err := f.Seek(0, 1)
	if err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if pos != 10 {
		t.Fatalf("offset not restored: %d, want 10", pos)
	}
}
