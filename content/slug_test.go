package content

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Web Development", "web-development"},
		{"C++ & Friends", "c-friends"},
		{"  spaces  everywhere  ", "spaces-everywhere"},
		{"Already-Slugged", "already-slugged"},
		{"ünïcode", "n-code"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDuplicateCategoryNamesGetSuffixedSlugs(t *testing.T) {
	svc, _ := setupTestService(t)

	first, err := svc.SaveResearchCategory("", CategoryInput{Name: "Research", IsActive: true})
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := svc.SaveResearchCategory("", CategoryInput{Name: "Research", IsActive: true})
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	third, err := svc.SaveResearchCategory("", CategoryInput{Name: "Research", IsActive: true})
	if err != nil {
		t.Fatalf("third create failed: %v", err)
	}

	if first.Slug != "research" {
		t.Errorf("first slug = %q, want %q", first.Slug, "research")
	}
	if second.Slug != "research-1" {
		t.Errorf("second slug = %q, want %q", second.Slug, "research-1")
	}
	if third.Slug != "research-2" {
		t.Errorf("third slug = %q, want %q", third.Slug, "research-2")
	}
}

func TestSlugAssignedOnFirstSaveOnly(t *testing.T) {
	svc, _ := setupTestService(t)

	cat, err := svc.SaveSkillCategory("", CategoryInput{Name: "Databases", IsActive: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if cat.Slug != "databases" {
		t.Fatalf("slug = %q, want %q", cat.Slug, "databases")
	}

	renamed, err := svc.SaveSkillCategory(cat.ID, CategoryInput{Name: "Data Stores", IsActive: true})
	if err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if renamed.Slug != "databases" {
		t.Errorf("rename must keep the original slug, got %q", renamed.Slug)
	}
}

func TestSlugSkipsBlankBase(t *testing.T) {
	svc, _ := setupTestService(t)

	cat, err := svc.SaveSkillCategory("", CategoryInput{Name: "!!!", IsActive: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if cat.Slug != "category" {
		t.Errorf("slug = %q, want fallback %q", cat.Slug, "category")
	}
}
