package content

import (
	"errors"
	"fmt"

	"github.com/nikmish/folio/docstore"
)

// Singleton kinds are collections allowed to hold at most one document. The
// invariant is enforced statelessly at write time rather than with in-memory
// state: an insert fails when an instance already exists.

// getOrCreateSingleton returns the sole document of kind, creating it from
// defaults on first access.
func (s *Service) getOrCreateSingleton(kind string, defaults any) (docstore.Document, error) {
	doc, err := s.store.FindOne(kind)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		return docstore.Document{}, fmt.Errorf("load singleton %s: %w", kind, err)
	}
	doc, err = s.store.Insert(kind, defaults)
	if err != nil {
		return docstore.Document{}, fmt.Errorf("seed singleton %s: %w", kind, err)
	}
	return doc, nil
}

// saveSingleton persists a singleton document. An insert (empty id) is
// rejected with ErrMultipleInstance when an instance already exists; updates
// go through normally. No delete operation exists for singleton kinds.
func (s *Service) saveSingleton(kind, id string, v any) (string, error) {
	if id == "" {
		n, err := s.store.Count(kind)
		if err != nil {
			return "", fmt.Errorf("count singleton %s: %w", kind, err)
		}
		if n > 0 {
			return "", fmt.Errorf("insert second %s document: %w", kind, ErrMultipleInstance)
		}
		doc, err := s.store.Insert(kind, v)
		if err != nil {
			return "", fmt.Errorf("insert singleton %s: %w", kind, err)
		}
		return doc.ID, nil
	}
	if err := s.store.Update(kind, id, v); err != nil {
		return "", fmt.Errorf("update singleton %s: %w", kind, err)
	}
	return id, nil
}
