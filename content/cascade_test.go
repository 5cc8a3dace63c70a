package content

import (
	"errors"
	"testing"
)

func mustCategory(t *testing.T, svc *Service, name string, active bool) *Category {
	t.Helper()
	cat, err := svc.SaveSkillCategory("", CategoryInput{Name: name, IsActive: active})
	if err != nil {
		t.Fatalf("failed to create category %q: %v", name, err)
	}
	return cat
}

func mustSkill(t *testing.T, svc *Service, name, categoryID string, active bool) *Skill {
	t.Helper()
	sk, err := svc.CreateSkill(SkillInput{
		Name:        name,
		CategoryID:  categoryID,
		Proficiency: 80,
		IsActive:    active,
	})
	if err != nil {
		t.Fatalf("failed to create skill %q: %v", name, err)
	}
	return sk
}

func TestToggleCategoryActiveCascadesDeactivation(t *testing.T) {
	svc, _ := setupTestService(t)

	cat := mustCategory(t, svc, "Languages", true)
	sk := mustSkill(t, svc, "Python", cat.ID, true)

	toggled, err := svc.ToggleSkillCategoryActive(cat.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if toggled.IsActive {
		t.Fatal("category should be inactive after toggle")
	}

	got, err := svc.GetSkill(sk.ID)
	if err != nil {
		t.Fatalf("failed to reload skill: %v", err)
	}
	if got.IsActive {
		t.Error("skill should have been deactivated with its category")
	}
}

func TestToggleCategoryActiveDoesNotCascadeActivation(t *testing.T) {
	svc, _ := setupTestService(t)

	cat := mustCategory(t, svc, "Languages", true)
	sk := mustSkill(t, svc, "Python", cat.ID, true)

	if _, err := svc.ToggleSkillCategoryActive(cat.ID); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	reactivated, err := svc.ToggleSkillCategoryActive(cat.ID)
	if err != nil {
		t.Fatalf("reactivate failed: %v", err)
	}
	if !reactivated.IsActive {
		t.Fatal("category should be active again")
	}

	got, err := svc.GetSkill(sk.ID)
	if err != nil {
		t.Fatalf("failed to reload skill: %v", err)
	}
	if got.IsActive {
		t.Error("skill must stay inactive until toggled on its own")
	}
}

func TestToggleSkillActiveUnderInactiveCategory(t *testing.T) {
	svc, _ := setupTestService(t)

	cat := mustCategory(t, svc, "Languages", false)
	sk := mustSkill(t, svc, "Python", cat.ID, false)

	_, err := svc.ToggleSkillActive(sk.ID)
	if !errors.Is(err, ErrInactiveParent) {
		t.Fatalf("expected ErrInactiveParent, got %v", err)
	}

	got, err := svc.GetSkill(sk.ID)
	if err != nil {
		t.Fatalf("failed to reload skill: %v", err)
	}
	if got.IsActive {
		t.Error("blocked activation must not change the stored skill")
	}
}

func TestCreateSkillDowngradesActiveUnderInactiveCategory(t *testing.T) {
	svc, _ := setupTestService(t)

	cat := mustCategory(t, svc, "Languages", false)
	sk := mustSkill(t, svc, "Python", cat.ID, true)

	if sk.IsActive {
		t.Error("skill under an inactive category must be stored inactive")
	}
}

func TestDeleteCategoryClearsSkillReferences(t *testing.T) {
	svc, _ := setupTestService(t)

	cat := mustCategory(t, svc, "Languages", true)
	sk := mustSkill(t, svc, "Python", cat.ID, true)

	if _, err := svc.DeleteSkillCategory(cat.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	got, err := svc.GetSkill(sk.ID)
	if err != nil {
		t.Fatalf("skill should survive its category: %v", err)
	}
	if got.CategoryID != nil {
		t.Errorf("category reference should be cleared, got %q", *got.CategoryID)
	}
	if !got.IsActive {
		t.Error("deleting the category must not deactivate the skill")
	}
}

func TestUncategorizedSkillActivatesFreely(t *testing.T) {
	svc, _ := setupTestService(t)

	sk := mustSkill(t, svc, "Git", "", false)
	got, err := svc.ToggleSkillActive(sk.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !got.IsActive {
		t.Error("uncategorized skill should activate without a parent check")
	}
}

func TestSkillUnderDeletedCategoryActivatesFreely(t *testing.T) {
	svc, _ := setupTestService(t)

	cat := mustCategory(t, svc, "Languages", true)
	sk := mustSkill(t, svc, "Python", cat.ID, false)
	if _, err := svc.DeleteSkillCategory(cat.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	got, err := svc.ToggleSkillActive(sk.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !got.IsActive {
		t.Error("skill with a cleared reference should activate")
	}
}

func TestResearchEntryLegacyActiveFlag(t *testing.T) {
	svc, _ := setupTestService(t)

	// Legacy records predate the is_active field. Seed one directly.
	doc, err := svc.store.Insert(ColResearchEntries, map[string]any{
		"title": "Old Paper",
	})
	if err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}

	entry, err := svc.GetResearchEntry(doc.ID)
	if err != nil {
		t.Fatalf("failed to load entry: %v", err)
	}
	if !entry.Active() {
		t.Fatal("an entry without the flag counts as active")
	}

	n, err := svc.ActiveResearchCount()
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("active count = %d, want 1", n)
	}

	// The first toggle of a legacy record deactivates it.
	toggled, err := svc.ToggleResearchEntryActive(doc.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if toggled.Active() {
		t.Error("first toggle should deactivate a legacy entry")
	}
}

func TestResearchEntryActivationBlockedByInactiveCategory(t *testing.T) {
	svc, _ := setupTestService(t)

	cat, err := svc.SaveResearchCategory("", CategoryInput{Name: "ML", IsActive: true})
	if err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	entry, err := svc.CreateResearchEntry(ResearchEntryInput{Title: "Paper", CategoryID: cat.ID})
	if err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	if _, err := svc.ToggleResearchCategoryActive(cat.ID); err != nil {
		t.Fatalf("deactivate category failed: %v", err)
	}
	got, err := svc.GetResearchEntry(entry.ID)
	if err != nil {
		t.Fatalf("failed to reload entry: %v", err)
	}
	if got.Active() {
		t.Fatal("cascade should have deactivated the entry")
	}

	_, err = svc.ToggleResearchEntryActive(entry.ID)
	if !errors.Is(err, ErrInactiveParent) {
		t.Fatalf("expected ErrInactiveParent, got %v", err)
	}
}
