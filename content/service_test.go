package content

import (
	"path/filepath"
	"testing"

	"github.com/nikmish/folio/docstore"
)

// fakeFiles records delete calls so tests can assert file release behavior.
type fakeFiles struct {
	stored  map[string][]byte
	deleted []string
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{stored: map[string][]byte{}}
}

func (f *fakeFiles) Store(pathPrefix string, data []byte, ext string) (string, error) {
	path := pathPrefix + "/file" + ext
	f.stored[path] = data
	return path, nil
}

func (f *fakeFiles) Delete(path string) error {
	f.deleted = append(f.deleted, path)
	delete(f.stored, path)
	return nil
}

func setupTestService(t *testing.T) (*Service, *fakeFiles) {
	t.Helper()
	store, err := docstore.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	files := newFakeFiles()
	svc, err := NewService(store, files, nil)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return svc, files
}

func TestPaginateClampsOutOfRangePages(t *testing.T) {
	items := make([]int, 13)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name      string
		page      int
		wantPage  int
		wantFirst int
		wantLen   int
	}{
		{"first page", 1, 1, 0, 6},
		{"middle page", 2, 2, 6, 6},
		{"last partial page", 3, 3, 12, 1},
		{"zero clamps to first", 0, 1, 0, 6},
		{"negative clamps to first", -3, 1, 0, 6},
		{"past end clamps to last", 99, 3, 12, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pg := Paginate(items, tt.page, PageSizePublic)
			if pg.Page != tt.wantPage {
				t.Errorf("page = %d, want %d", pg.Page, tt.wantPage)
			}
			if len(page) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(page), tt.wantLen)
			}
			if len(page) > 0 && page[0] != tt.wantFirst {
				t.Errorf("first item = %d, want %d", page[0], tt.wantFirst)
			}
			if pg.TotalItems != 13 || pg.TotalPages != 3 {
				t.Errorf("totals = %d/%d, want 13/3", pg.TotalItems, pg.TotalPages)
			}
		})
	}
}

func TestPaginateEmptyList(t *testing.T) {
	page, pg := Paginate([]string{}, 5, PageSizeSubmissions)
	if len(page) != 0 {
		t.Fatalf("expected empty page, got %d items", len(page))
	}
	if pg.Page != 1 || pg.TotalPages != 1 {
		t.Errorf("page/totalPages = %d/%d, want 1/1", pg.Page, pg.TotalPages)
	}
	if pg.HasPrev() || pg.HasNext() {
		t.Error("empty listing should have no prev or next page")
	}
}
