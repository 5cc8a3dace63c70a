package content

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nikmish/folio/docstore"
)

// FeaturedProjectLimit caps the home page showcase.
const FeaturedProjectLimit = 3

// ProjectInput carries the admin-form fields for a project. ImagePath is the
// already-stored upload path; an empty value keeps the current image.
type ProjectInput struct {
	Title       string
	Description string
	TechStack   []string
	ImagePath   string
	GithubLink  string
	DemoLink    string
	IsFeatured  bool
	IsActive    bool
}

// GetProject returns one project by id.
func (s *Service) GetProject(id string) (*Project, error) {
	doc, err := s.store.Get(ColProjects, id)
	if err != nil {
		return nil, fmt.Errorf("load project %s: %w", id, err)
	}
	var p Project
	if err := decode(doc, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProject stores a new project.
func (s *Service) CreateProject(in ProjectInput) (*Project, error) {
	p, err := projectFromInput(&Project{}, in)
	if err != nil {
		return nil, err
	}
	doc, err := s.store.Insert(ColProjects, p)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	p.attach(doc)
	return p, nil
}

// UpdateProject applies the form input to an existing project. When the input
// carries a new image path the previous file is released after the record is
// written.
func (s *Service) UpdateProject(id string, in ProjectInput) (*Project, error) {
	p, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}
	oldImage := p.ImagePath
	p, err = projectFromInput(p, in)
	if err != nil {
		return nil, err
	}
	if err := s.store.Update(ColProjects, id, p); err != nil {
		return nil, fmt.Errorf("update project %s: %w", id, err)
	}
	if in.ImagePath != "" && oldImage != "" && oldImage != p.ImagePath {
		s.releaseFile(oldImage)
	}
	return p, nil
}

func projectFromInput(p *Project, in ProjectInput) (*Project, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, &ValidationError{Field: "project title"}
	}
	p.Title = title
	p.Description = strings.TrimSpace(in.Description)
	p.TechStack = cleanList(in.TechStack)
	if in.ImagePath != "" {
		p.ImagePath = in.ImagePath
	}
	p.GithubLink = strings.TrimSpace(in.GithubLink)
	p.DemoLink = strings.TrimSpace(in.DemoLink)
	p.IsFeatured = in.IsFeatured
	p.IsActive = in.IsActive
	return p, nil
}

// DeleteProject removes the project and releases its image file.
func (s *Service) DeleteProject(id string) (*Project, error) {
	p, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}
	if err := s.store.Delete(ColProjects, id); err != nil {
		return nil, fmt.Errorf("delete project %s: %w", id, err)
	}
	if p.ImagePath != "" {
		s.releaseFile(p.ImagePath)
	}
	return p, nil
}

// ToggleProjectActive flips a project's public visibility.
func (s *Service) ToggleProjectActive(id string) (*Project, error) {
	p, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}
	p.IsActive = !p.IsActive
	if err := s.store.Update(ColProjects, id, p); err != nil {
		return nil, fmt.Errorf("update project %s: %w", id, err)
	}
	return p, nil
}

// ToggleProjectFeatured flips a project's home-page showcase flag.
func (s *Service) ToggleProjectFeatured(id string) (*Project, error) {
	p, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}
	p.IsFeatured = !p.IsFeatured
	if err := s.store.Update(ColProjects, id, p); err != nil {
		return nil, fmt.Errorf("update project %s: %w", id, err)
	}
	return p, nil
}

// ActiveProjects lists visible projects newest first, optionally narrowed by
// a free-text search over title and description.
func (s *Service) ActiveProjects(search string) ([]Project, error) {
	filters := []docstore.Filter{docstore.Eq("is_active", true)}
	if search != "" {
		filters = append(filters, docstore.Or(
			docstore.IContains("title", search),
			docstore.IContains("description", search),
		))
	}
	return s.findProjects(filters...)
}

// AllProjects lists every project for the admin manager, newest first.
func (s *Service) AllProjects() ([]Project, error) {
	return s.findProjects()
}

// FeaturedProjects returns up to FeaturedProjectLimit projects for the home
// page. Flagged projects come first; when fewer than the limit carry the
// flag, the newest active projects fill the remainder. The fill does not
// exclude projects already chosen, so a flagged project that is also recent
// can appear twice. TODO(nikmish): confirm with product whether the
// duplicate inclusion is intended before deduplicating here.
func (s *Service) FeaturedProjects() ([]Project, error) {
	featured, err := s.findProjects(
		docstore.Eq("is_active", true),
		docstore.Eq("is_featured", true),
	)
	if err != nil {
		return nil, err
	}
	if len(featured) >= FeaturedProjectLimit {
		return featured[:FeaturedProjectLimit], nil
	}
	rest, err := s.findProjects(docstore.Eq("is_active", true))
	if err != nil {
		return nil, err
	}
	if fill := FeaturedProjectLimit - len(featured); fill < len(rest) {
		rest = rest[:fill]
	}
	return append(featured, rest...), nil
}

// RelatedProjects returns up to limit other active projects for the detail
// page sidebar, newest first.
func (s *Service) RelatedProjects(excludeID string, limit int) ([]Project, error) {
	projects, err := s.findProjects(docstore.Eq("is_active", true))
	if err != nil {
		return nil, err
	}
	related := projects[:0:0]
	for _, p := range projects {
		if p.ID == excludeID {
			continue
		}
		related = append(related, p)
		if len(related) == limit {
			break
		}
	}
	return related, nil
}

// ActiveProjectCount counts publicly visible projects.
func (s *Service) ActiveProjectCount() (int, error) {
	return s.store.Count(ColProjects, docstore.Eq("is_active", true))
}

// ProjectCount counts all projects.
func (s *Service) ProjectCount() (int, error) {
	return s.store.Count(ColProjects)
}

func (s *Service) findProjects(filters ...docstore.Filter) ([]Project, error) {
	docs, err := s.store.Find(ColProjects, filters...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	projects, err := decodeAll[Project](docs)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}

// cleanList trims entries and drops empties, preserving order.
func cleanList(items []string) []string {
	var out []string
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
