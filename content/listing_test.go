package content

import (
	"errors"
	"testing"
	"time"
)

func mustBlog(t *testing.T, svc *Service, title string, publish, active bool) *Blog {
	t.Helper()
	b, err := svc.CreateBlog(BlogInput{
		Title:    title,
		Content:  "<p>body of " + title + "</p>",
		Preview:  "preview of " + title,
		Publish:  publish,
		IsActive: active,
	}, BlogAuthor{ID: "u1", Username: "admin", Name: "Site Admin"})
	if err != nil {
		t.Fatalf("failed to create blog %q: %v", title, err)
	}
	return b
}

func TestPublishedBlogListing(t *testing.T) {
	svc, _ := setupTestService(t)

	mustBlog(t, svc, "Draft One", false, true)
	first := mustBlog(t, svc, "Published Old", true, true)
	mustBlog(t, svc, "Published Hidden", true, false)
	// Force a distinct published date so the ordering is observable.
	older := time.Now().UTC().Add(-time.Hour)
	first.PublishedDate = &older
	if err := svc.store.Update(ColBlogs, first.ID, first); err != nil {
		t.Fatalf("backdate failed: %v", err)
	}
	second := mustBlog(t, svc, "Published New", true, true)

	blogs, err := svc.PublishedBlogs("", "")
	if err != nil {
		t.Fatalf("listing failed: %v", err)
	}
	if len(blogs) != 2 {
		t.Fatalf("listing returned %d blogs, want 2", len(blogs))
	}
	if blogs[0].ID != second.ID || blogs[1].ID != first.ID {
		t.Errorf("listing order = %q, %q; want newest published first",
			blogs[0].Title, blogs[1].Title)
	}
}

func TestPublishedBlogSearchAndTagFilter(t *testing.T) {
	svc, _ := setupTestService(t)

	b, err := svc.CreateBlog(BlogInput{
		Title:    "Concurrency Patterns",
		Content:  "<p>channels and goroutines</p>",
		Preview:  "short intro",
		Tags:     []string{"go", "concurrency"},
		Publish:  true,
		IsActive: true,
	}, BlogAuthor{Username: "admin"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreateBlog(BlogInput{
		Title:    "Cooking Notes",
		Content:  "<p>recipes</p>",
		Tags:     []string{"food"},
		Publish:  true,
		IsActive: true,
	}, BlogAuthor{Username: "admin"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	bySearch, err := svc.PublishedBlogs("GOROUTINE", "")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(bySearch) != 1 || bySearch[0].ID != b.ID {
		t.Errorf("case-insensitive body search should match one blog, got %d", len(bySearch))
	}

	byTag, err := svc.PublishedBlogs("", "go")
	if err != nil {
		t.Fatalf("tag filter failed: %v", err)
	}
	if len(byTag) != 1 || byTag[0].ID != b.ID {
		t.Errorf("tag filter should match one blog, got %d", len(byTag))
	}

	tags, err := svc.AllBlogTags()
	if err != nil {
		t.Fatalf("tags failed: %v", err)
	}
	want := []string{"concurrency", "food", "go"}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("tags = %v, want %v", tags, want)
		}
	}
}

func TestBlogPublishedDateSetOnce(t *testing.T) {
	svc, _ := setupTestService(t)

	b := mustBlog(t, svc, "Post", false, true)
	if b.PublishedDate != nil {
		t.Fatal("draft must not carry a published date")
	}

	published, err := svc.UpdateBlog(b.ID, BlogInput{
		Title: "Post", Content: b.Content, Publish: true, IsActive: true,
	})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if published.PublishedDate == nil {
		t.Fatal("publishing must set the published date")
	}
	stamp := *published.PublishedDate

	// Unpublish and publish again: the original stamp survives.
	if _, err := svc.UpdateBlog(b.ID, BlogInput{
		Title: "Post", Content: b.Content, Status: StatusDraft, IsActive: true,
	}); err != nil {
		t.Fatalf("unpublish failed: %v", err)
	}
	again, err := svc.UpdateBlog(b.ID, BlogInput{
		Title: "Post", Content: b.Content, Publish: true, IsActive: true,
	})
	if err != nil {
		t.Fatalf("republish failed: %v", err)
	}
	if again.PublishedDate == nil || !again.PublishedDate.Equal(stamp) {
		t.Error("republishing must not move the published date")
	}
}

func TestBlogPreviewTruncated(t *testing.T) {
	svc, _ := setupTestService(t)

	long := make([]byte, 0, 400)
	for i := 0; i < 400; i++ {
		long = append(long, 'x')
	}
	b, err := svc.CreateBlog(BlogInput{
		Title: "Post", Content: "body", Preview: string(long), IsActive: true,
	}, BlogAuthor{Username: "admin"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(b.Preview) != PreviewMaxLen {
		t.Errorf("preview length = %d, want %d", len(b.Preview), PreviewMaxLen)
	}
}

func TestFeaturedProjectsBackfill(t *testing.T) {
	svc, _ := setupTestService(t)

	var featured *Project
	for i := 0; i < 5; i++ {
		in := ProjectInput{Title: "Project", IsActive: true}
		if i == 2 {
			in.IsFeatured = true
		}
		p, err := svc.CreateProject(in)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if in.IsFeatured {
			featured = p
		}
	}

	got, err := svc.FeaturedProjects()
	if err != nil {
		t.Fatalf("selection failed: %v", err)
	}
	if len(got) != FeaturedProjectLimit {
		t.Fatalf("selection returned %d projects, want %d", len(got), FeaturedProjectLimit)
	}
	if got[0].ID != featured.ID {
		t.Error("flagged project should lead the selection")
	}
}

func TestFeaturedProjectsCapped(t *testing.T) {
	svc, _ := setupTestService(t)

	for i := 0; i < 4; i++ {
		if _, err := svc.CreateProject(ProjectInput{
			Title: "Project", IsFeatured: true, IsActive: true,
		}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	got, err := svc.FeaturedProjects()
	if err != nil {
		t.Fatalf("selection failed: %v", err)
	}
	if len(got) != FeaturedProjectLimit {
		t.Errorf("selection returned %d projects, want %d", len(got), FeaturedProjectLimit)
	}
}

func TestActiveSkillsByCategoryGrouping(t *testing.T) {
	svc, _ := setupTestService(t)

	langs, err := svc.SaveSkillCategory("", CategoryInput{Name: "Languages", IsActive: true, Order: 2})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	tools, err := svc.SaveSkillCategory("", CategoryInput{Name: "Tools", IsActive: true, Order: 1})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	hidden, err := svc.SaveSkillCategory("", CategoryInput{Name: "Hidden", IsActive: false})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	mustSkill(t, svc, "Go", langs.ID, true)
	python := mustSkill(t, svc, "Python", langs.ID, true)
	python.Proficiency = 95
	if err := svc.store.Update(ColSkills, python.ID, python); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	mustSkill(t, svc, "Docker", tools.ID, true)
	mustSkill(t, svc, "Inactive", langs.ID, false)
	mustSkill(t, svc, "Secret", hidden.ID, true)
	mustSkill(t, svc, "Git", "", true)

	groups, err := svc.ActiveSkillsByCategory()
	if err != nil {
		t.Fatalf("grouping failed: %v", err)
	}

	// Categories follow their display order; uncategorized comes last.
	wantGroups := []string{"Languages", "Tools", UncategorizedLabel}
	if len(groups) != len(wantGroups) {
		t.Fatalf("got %d groups, want %d", len(groups), len(wantGroups))
	}
	for i, g := range groups {
		if g.Name != wantGroups[i] {
			t.Errorf("group[%d] = %q, want %q", i, g.Name, wantGroups[i])
		}
	}

	langGroup := groups[0]
	if len(langGroup.Skills) != 2 {
		t.Fatalf("languages group has %d skills, want 2", len(langGroup.Skills))
	}
	if langGroup.Skills[0].Name != "Python" {
		t.Errorf("skills should sort by proficiency descending, got %q first", langGroup.Skills[0].Name)
	}
}

func TestSubmissionLifecycle(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.CreateSubmission(SubmissionInput{Name: "A", Email: "a@x.dev", Subject: "Hi"})
	if !IsValidation(err) {
		t.Fatalf("missing message should be a validation error, got %v", err)
	}

	sub, err := svc.CreateSubmission(SubmissionInput{
		Name: "Ada", Email: "ada@x.dev", Subject: "Hello", Message: "Nice site",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if sub.IsRead {
		t.Fatal("new submissions start unread")
	}

	total, unread, err := svc.SubmissionCounts()
	if err != nil {
		t.Fatalf("counts failed: %v", err)
	}
	if total != 1 || unread != 1 {
		t.Errorf("counts = %d/%d, want 1/1", total, unread)
	}

	// Opening the detail view marks it read.
	got, err := svc.GetSubmission(sub.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !got.IsRead {
		t.Error("detail view should mark the submission read")
	}
	_, unread, err = svc.SubmissionCounts()
	if err != nil {
		t.Fatalf("counts failed: %v", err)
	}
	if unread != 0 {
		t.Errorf("unread = %d, want 0", unread)
	}

	unreadList, err := svc.Submissions("unread", "")
	if err != nil {
		t.Fatalf("listing failed: %v", err)
	}
	if len(unreadList) != 0 {
		t.Errorf("unread listing has %d items, want 0", len(unreadList))
	}

	bySearch, err := svc.Submissions("", "nice")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(bySearch) != 1 {
		t.Errorf("message search matched %d, want 1", len(bySearch))
	}
}

func TestBulkSubmissionOperations(t *testing.T) {
	svc, _ := setupTestService(t)

	ids := make([]string, 0, 3)
	for _, name := range []string{"A", "B", "C"} {
		sub, err := svc.CreateSubmission(SubmissionInput{
			Name: name, Email: name + "@x.dev", Subject: "s", Message: "m",
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		ids = append(ids, sub.ID)
	}

	n, err := svc.MarkSubmissionsRead(ids[:2])
	if err != nil {
		t.Fatalf("bulk mark failed: %v", err)
	}
	if n != 2 {
		t.Errorf("marked %d, want 2", n)
	}

	n, err = svc.MarkSubmissionsUnread(ids)
	if err != nil {
		t.Fatalf("bulk unmark failed: %v", err)
	}
	if n != 2 {
		t.Errorf("unmarked %d, want 2 (the third was never read)", n)
	}

	n, err = svc.DeleteSubmissions(ids)
	if err != nil {
		t.Fatalf("bulk delete failed: %v", err)
	}
	if n != 3 {
		t.Errorf("deleted %d, want 3", n)
	}
	if _, _, err := svc.SubmissionCounts(); err != nil {
		t.Fatalf("counts failed: %v", err)
	}
}

func TestProjectDeleteReleasesImage(t *testing.T) {
	svc, files := setupTestService(t)

	p, err := svc.CreateProject(ProjectInput{
		Title: "Shot", ImagePath: "uploads/projects/shot.jpg", IsActive: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.DeleteProject(p.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(files.deleted) != 1 || files.deleted[0] != "uploads/projects/shot.jpg" {
		t.Errorf("image file should be released, deleted = %v", files.deleted)
	}

	if _, err := svc.GetProject(p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestProjectImageReplacementReleasesOldFile(t *testing.T) {
	svc, files := setupTestService(t)

	p, err := svc.CreateProject(ProjectInput{
		Title: "Shot", ImagePath: "uploads/projects/old.jpg", IsActive: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.UpdateProject(p.ID, ProjectInput{
		Title: "Shot", ImagePath: "uploads/projects/new.jpg", IsActive: true,
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(files.deleted) != 1 || files.deleted[0] != "uploads/projects/old.jpg" {
		t.Errorf("old image should be released, deleted = %v", files.deleted)
	}
}
