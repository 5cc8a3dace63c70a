package docstore

import (
	"errors"
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_docs.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

type widget struct {
	Name     string   `json:"name"`
	Color    string   `json:"color,omitempty"`
	Size     int      `json:"size"`
	IsActive bool     `json:"is_active"`
	Tags     []string `json:"tags,omitempty"`
	OwnerID  *string  `json:"owner_id"`
}

func TestInsertAndGet(t *testing.T) {
	s := setupTestStore(t)

	doc, err := s.Insert("widgets", widget{Name: "gear", Size: 3, IsActive: true})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if doc.ID == "" {
		t.Fatal("Insert should assign an id")
	}
	if doc.CreatedAt.IsZero() || doc.UpdatedAt.IsZero() {
		t.Fatal("Insert should set timestamps")
	}

	got, err := s.Get("widgets", doc.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	var w widget
	if err := got.Decode(&w); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if w.Name != "gear" || w.Size != 3 || !w.IsActive {
		t.Errorf("decoded widget = %+v, want gear/3/active", w)
	}
}

func TestGetNotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Get("widgets", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateReplacesBody(t *testing.T) {
	s := setupTestStore(t)

	doc, err := s.Insert("widgets", widget{Name: "gear", Size: 3})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := s.Update("widgets", doc.ID, widget{Name: "sprocket", Size: 5}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := s.Get("widgets", doc.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	var w widget
	if err := got.Decode(&w); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if w.Name != "sprocket" || w.Size != 5 {
		t.Errorf("widget after update = %+v, want sprocket/5", w)
	}
	if got.UpdatedAt.Before(got.CreatedAt) {
		t.Error("UpdatedAt should not precede CreatedAt")
	}
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	s := setupTestStore(t)

	err := s.Update("widgets", "missing", widget{Name: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	s := setupTestStore(t)

	doc, err := s.Insert("widgets", widget{Name: "gear"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := s.Delete("widgets", doc.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete("widgets", doc.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete should be ErrNotFound, got %v", err)
	}
}

func TestCollectionsAreIsolated(t *testing.T) {
	s := setupTestStore(t)

	doc, err := s.Insert("widgets", widget{Name: "gear"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if _, err := s.Get("gadgets", doc.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("document should not be visible from another collection, got %v", err)
	}
}

func TestFindFilters(t *testing.T) {
	s := setupTestStore(t)

	owner := "owner-1"
	fixtures := []widget{
		{Name: "Red Gear", Color: "red", Size: 3, IsActive: true, OwnerID: &owner},
		{Name: "Blue Gear", Color: "blue", Size: 5, IsActive: true},
		{Name: "Old Sprocket", Color: "red", Size: 3, IsActive: false},
	}
	for _, w := range fixtures {
		if _, err := s.Insert("widgets", w); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	tests := []struct {
		name    string
		filters []Filter
		want    int
	}{
		{"eq string", []Filter{Eq("color", "red")}, 2},
		{"eq bool", []Filter{Eq("is_active", true)}, 2},
		{"eq number", []Filter{Eq("size", 3)}, 2},
		{"and", []Filter{Eq("color", "red"), Eq("is_active", true)}, 1},
		{"eq nil matches null and absent", []Filter{Eq("owner_id", nil)}, 2},
		{"in", []Filter{In("color", "red", "blue")}, 3},
		{"in no match", []Filter{In("color", "green")}, 0},
		{"icontains", []Filter{IContains("name", "gear")}, 2},
		{"icontains case", []Filter{IContains("name", "RED")}, 1},
		{"exists", []Filter{Exists("owner_id")}, 1},
		{"or", []Filter{Or(Eq("color", "blue"), Eq("is_active", false))}, 2},
		{"or with exists", []Filter{Or(Eq("is_active", true), Exists("missing_field"))}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := s.Find("widgets", tt.filters...)
			if err != nil {
				t.Fatalf("Find failed: %v", err)
			}
			if len(docs) != tt.want {
				t.Errorf("Find returned %d docs, want %d", len(docs), tt.want)
			}
		})
	}
}

func TestFindOne(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.FindOne("widgets"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindOne on empty collection should be ErrNotFound, got %v", err)
	}

	first, err := s.Insert("widgets", widget{Name: "first"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if _, err := s.Insert("widgets", widget{Name: "second"}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := s.FindOne("widgets")
	if err != nil {
		t.Fatalf("FindOne failed: %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("FindOne should return the oldest document, got %s want %s", got.ID, first.ID)
	}
}

func TestCount(t *testing.T) {
	s := setupTestStore(t)

	for i := 0; i < 3; i++ {
		w := widget{Name: "w", IsActive: i < 2}
		if _, err := s.Insert("widgets", w); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	total, err := s.Count("widgets")
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if total != 3 {
		t.Errorf("Count = %d, want 3", total)
	}

	active, err := s.Count("widgets", Eq("is_active", true))
	if err != nil {
		t.Fatalf("Count with filter failed: %v", err)
	}
	if active != 2 {
		t.Errorf("Count(is_active) = %d, want 2", active)
	}
}

func TestMapReturnsFreshCopy(t *testing.T) {
	s := setupTestStore(t)

	doc, err := s.Insert("widgets", widget{Name: "gear"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	m1, err := doc.Map()
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	m1["name"] = "mutated"

	m2, err := doc.Map()
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	if m2["name"] != "gear" {
		t.Errorf("Map should not share state between calls, got %v", m2["name"])
	}
}
