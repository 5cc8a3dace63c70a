// Package content implements the portfolio's content model: typed records
// over the document store, singleton page configuration, the category
// activation cascade, slug assignment, and the listing projections consumed
// by the rendering layer.
package content

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/nikmish/folio/docstore"
)

// FileStore abstracts uploaded-file persistence. The content layer never
// inspects file bytes; it only remembers paths and releases them when the
// owning record lets go.
type FileStore interface {
	Store(pathPrefix string, data []byte, ext string) (string, error)
	Delete(path string) error
}

// Service exposes every content operation the handlers need. All methods are
// synchronous; consistency is per-document, last write wins.
type Service struct {
	store  *docstore.Store
	files  FileStore
	logger *logrus.Logger
}

// NewService wires the content service with its collaborators. The file
// store and logger may be nil; file releases then become no-ops and logging
// is skipped.
func NewService(store *docstore.Store, files FileStore, logger *logrus.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("content: document store is required")
	}
	return &Service{store: store, files: files, logger: logger}, nil
}

// releaseFile deletes a stored file after the owning record mutation has
// succeeded. Best-effort: failures are logged and never propagated.
func (s *Service) releaseFile(path string) {
	if path == "" || s.files == nil {
		return
	}
	if err := s.files.Delete(path); err != nil {
		s.warn(logrus.Fields{"path": path, "error": err.Error()}, "failed to delete stored file")
	}
}

func (s *Service) warn(fields logrus.Fields, msg string) {
	if s.logger == nil {
		return
	}
	s.logger.WithFields(fields).Warn(msg)
}

func (s *Service) info(fields logrus.Fields, msg string) {
	if s.logger == nil {
		return
	}
	s.logger.WithFields(fields).Info(msg)
}

// Listing page sizes.
const (
	PageSizePublic      = 6  // projects, blogs, research entries
	PageSizeSubmissions = 10 // admin contact submissions
)

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
}

// HasPrev reports whether an earlier page exists.
func (p Pagination) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a later page exists.
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }

// PrevPage returns the previous page number, clamped to the first page.
func (p Pagination) PrevPage() int {
	if p.Page <= 1 {
		return 1
	}
	return p.Page - 1
}

// NextPage returns the next page number, clamped to the last page.
func (p Pagination) NextPage() int {
	if p.Page >= p.TotalPages {
		return p.TotalPages
	}
	return p.Page + 1
}

// Paginate slices items into the requested page. Out-of-range page numbers
// clamp to the nearest valid page and never error.
func Paginate[T any](items []T, page, perPage int) ([]T, Pagination) {
	if perPage < 1 {
		perPage = 1
	}
	totalPages := (len(items) + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * perPage
	end := start + perPage
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: len(items),
		TotalPages: totalPages,
	}
}
