package folio

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStoreRoundTrip(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	rel, err := store.Store("projects", []byte("payload"), ".jpg")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if !strings.HasPrefix(rel, "projects/") || !strings.HasSuffix(rel, ".jpg") {
		t.Fatalf("unexpected stored path %q", rel)
	}
	if strings.Contains(rel, "\\") {
		t.Fatalf("stored path %q must use forward slashes", rel)
	}

	full := filepath.Join(store.root, filepath.FromSlash(rel))
	data, err := os.ReadFile(full)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("read back %q, want %q", data, "payload")
	}

	if err := store.Delete(rel); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(full); !os.IsNotExist(err) {
		t.Fatalf("file still present after delete")
	}
	// Deleting again is fine; the record has already moved on.
	if err := store.Delete(rel); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestDiskStoreRejectsEscapingPaths(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	for _, rel := range []string{"../outside.txt", "a/../../outside.txt", "/etc/passwd", "."} {
		if err := store.Delete(rel); err == nil {
			t.Errorf("expected delete of %q to be rejected", rel)
		}
	}
}

func TestProcessImageResizesWideImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 200))
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	data, err := processImage(&buf, 100)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	out, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got := out.Bounds().Dx(); got != 100 {
		t.Errorf("width = %d, want 100", got)
	}
	if got := out.Bounds().Dy(); got != 50 {
		t.Errorf("height = %d, want 50", got)
	}
}

func TestProcessImageKeepsSmallImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 80, 60))
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	data, err := processImage(&buf, 100)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	out, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got := out.Bounds().Dx(); got != 80 {
		t.Errorf("width = %d, want 80", got)
	}
}
