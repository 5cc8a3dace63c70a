package content

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nikmish/folio/docstore"
)

// SubmissionInput carries the public contact-form fields. All four are
// required.
type SubmissionInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// CreateSubmission stores a contact-form message. Every field must be
// non-blank; the first missing one is reported.
func (s *Service) CreateSubmission(in SubmissionInput) (*ContactSubmission, error) {
	sub := &ContactSubmission{
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Subject:     strings.TrimSpace(in.Subject),
		Message:     strings.TrimSpace(in.Message),
		SubmittedAt: time.Now().UTC(),
	}
	switch {
	case sub.Name == "":
		return nil, &ValidationError{Field: "name"}
	case sub.Email == "":
		return nil, &ValidationError{Field: "email"}
	case sub.Subject == "":
		return nil, &ValidationError{Field: "subject"}
	case sub.Message == "":
		return nil, &ValidationError{Field: "message"}
	}
	doc, err := s.store.Insert(ColContactSubmissions, sub)
	if err != nil {
		return nil, fmt.Errorf("insert submission: %w", err)
	}
	sub.attach(doc)
	s.info(logrus.Fields{"from": sub.Email, "subject": sub.Subject}, "contact submission received")
	return sub, nil
}

// Submissions lists contact submissions newest first. filter narrows to
// "read" or "unread"; search matches name, email, subject, or message.
func (s *Service) Submissions(filter, search string) ([]ContactSubmission, error) {
	var filters []docstore.Filter
	switch filter {
	case "read":
		filters = append(filters, docstore.Eq("is_read", true))
	case "unread":
		filters = append(filters, docstore.Eq("is_read", false))
	}
	if search != "" {
		filters = append(filters, docstore.Or(
			docstore.IContains("name", search),
			docstore.IContains("email", search),
			docstore.IContains("subject", search),
			docstore.IContains("message", search),
		))
	}
	docs, err := s.store.Find(ColContactSubmissions, filters...)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	subs, err := decodeAll[ContactSubmission](docs)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].SubmittedAt.After(subs[j].SubmittedAt)
	})
	return subs, nil
}

// GetSubmission returns one submission and marks it read, matching the
// behavior of opening it in the admin detail view.
func (s *Service) GetSubmission(id string) (*ContactSubmission, error) {
	sub, err := s.loadSubmission(id)
	if err != nil {
		return nil, err
	}
	if !sub.IsRead {
		sub.IsRead = true
		if err := s.store.Update(ColContactSubmissions, id, sub); err != nil {
			return nil, fmt.Errorf("mark submission %s read: %w", id, err)
		}
	}
	return sub, nil
}

// UpdateSubmissionNotes replaces the admin notes on a submission.
func (s *Service) UpdateSubmissionNotes(id, notes string) (*ContactSubmission, error) {
	sub, err := s.loadSubmission(id)
	if err != nil {
		return nil, err
	}
	sub.Notes = strings.TrimSpace(notes)
	if err := s.store.Update(ColContactSubmissions, id, sub); err != nil {
		return nil, fmt.Errorf("update submission %s: %w", id, err)
	}
	return sub, nil
}

// ToggleSubmissionRead flips the read flag.
func (s *Service) ToggleSubmissionRead(id string) (*ContactSubmission, error) {
	sub, err := s.loadSubmission(id)
	if err != nil {
		return nil, err
	}
	sub.IsRead = !sub.IsRead
	if err := s.store.Update(ColContactSubmissions, id, sub); err != nil {
		return nil, fmt.Errorf("update submission %s: %w", id, err)
	}
	return sub, nil
}

// DeleteSubmission removes one submission.
func (s *Service) DeleteSubmission(id string) error {
	if err := s.store.Delete(ColContactSubmissions, id); err != nil {
		return fmt.Errorf("delete submission %s: %w", id, err)
	}
	return nil
}

// MarkSubmissionsRead marks the given submissions read and reports how many
// records changed.
func (s *Service) MarkSubmissionsRead(ids []string) (int, error) {
	return s.bulkSubmissions(ids, func(sub *ContactSubmission) bool {
		if sub.IsRead {
			return false
		}
		sub.IsRead = true
		return true
	})
}

// DeleteSubmissions removes the given submissions and reports how many
// existed.
// MarkSubmissionsUnread clears the read flag on the given ids, returning how
// many changed.
func (s *Service) MarkSubmissionsUnread(ids []string) (int, error) {
	return s.bulkSubmissions(ids, func(sub *ContactSubmission) bool {
		if !sub.IsRead {
			return false
		}
		sub.IsRead = false
		return true
	})
}

func (s *Service) DeleteSubmissions(ids []string) (int, error) {
	docs, err := s.store.Find(ColContactSubmissions, docstore.In("id", idsAny(ids)...))
	if err != nil {
		return 0, fmt.Errorf("list submissions: %w", err)
	}
	n := 0
	for _, d := range docs {
		if err := s.store.Delete(ColContactSubmissions, d.ID); err != nil {
			return n, fmt.Errorf("delete submission %s: %w", d.ID, err)
		}
		n++
	}
	return n, nil
}

// SubmissionCounts returns the total and unread submission counts for the
// dashboard.
func (s *Service) SubmissionCounts() (total, unread int, err error) {
	total, err = s.store.Count(ColContactSubmissions)
	if err != nil {
		return 0, 0, err
	}
	unread, err = s.store.Count(ColContactSubmissions, docstore.Eq("is_read", false))
	if err != nil {
		return 0, 0, err
	}
	return total, unread, nil
}

func (s *Service) loadSubmission(id string) (*ContactSubmission, error) {
	doc, err := s.store.Get(ColContactSubmissions, id)
	if err != nil {
		return nil, fmt.Errorf("load submission %s: %w", id, err)
	}
	var sub ContactSubmission
	if err := decode(doc, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *Service) bulkSubmissions(ids []string, mutate func(*ContactSubmission) bool) (int, error) {
	docs, err := s.store.Find(ColContactSubmissions, docstore.In("id", idsAny(ids)...))
	if err != nil {
		return 0, fmt.Errorf("list submissions: %w", err)
	}
	n := 0
	for _, d := range docs {
		var sub ContactSubmission
		if err := decode(d, &sub); err != nil {
			return n, err
		}
		if !mutate(&sub) {
			continue
		}
		if err := s.store.Update(ColContactSubmissions, sub.ID, &sub); err != nil {
			return n, fmt.Errorf("update submission %s: %w", sub.ID, err)
		}
		n++
	}
	return n, nil
}

func idsAny(ids []string) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}
