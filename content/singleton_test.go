package content

import (
	"errors"
	"testing"
)

func TestHomePageGetOrCreate(t *testing.T) {
	svc, _ := setupTestService(t)

	page, err := svc.HomePage()
	if err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	if page.ID == "" {
		t.Fatal("first read should create the record")
	}
	if !page.StatsVisible() {
		t.Error("defaults should show the stats section")
	}

	again, err := svc.HomePage()
	if err != nil {
		t.Fatalf("second read failed: %v", err)
	}
	if again.ID != page.ID {
		t.Errorf("second read returned a different record: %s vs %s", again.ID, page.ID)
	}

	n, err := svc.store.Count(ColHomePage)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("collection holds %d documents, want 1", n)
	}
}

func TestSaveHomePageRejectsSecondInstance(t *testing.T) {
	svc, _ := setupTestService(t)

	if _, err := svc.HomePage(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	// A save with no id would insert a second document of the kind.
	err := svc.SaveHomePage(&HomePage{HeroTitle: "rogue"})
	if !errors.Is(err, ErrMultipleInstance) {
		t.Fatalf("expected ErrMultipleInstance, got %v", err)
	}

	n, err := svc.store.Count(ColHomePage)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("rejected save must not write, got %d documents", n)
	}
}

func TestSaveHomePagePersistsEdits(t *testing.T) {
	svc, _ := setupTestService(t)

	page, err := svc.HomePage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	page.HeroTitle = "Hello"
	page.ShowStats = boolPtr(false)
	if err := svc.SaveHomePage(page); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := svc.HomePage()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got.HeroTitle != "Hello" {
		t.Errorf("hero title = %q, want %q", got.HeroTitle, "Hello")
	}
	if got.StatsVisible() {
		t.Error("stats section should be hidden after the edit")
	}
}

func TestPeekHomePageWithoutRecord(t *testing.T) {
	svc, _ := setupTestService(t)

	page, err := svc.PeekHomePage()
	if err != nil {
		t.Fatalf("peek failed: %v", err)
	}
	if page != nil {
		t.Fatal("peek must not create the record")
	}

	var nilPage *HomePage
	if !nilPage.CtaSectionVisible() {
		t.Error("accessors on an absent page should fall back to defaults")
	}
}

func TestContactPageDefaults(t *testing.T) {
	svc, _ := setupTestService(t)

	page, err := svc.ContactPage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !page.ContactFormVisible() {
		t.Error("defaults should show the contact form")
	}
	if page.PageTitle == "" {
		t.Error("defaults should include a page title")
	}
}
