package content

import (
	"fmt"
	"strings"
)

// ProfileInput carries the admin-form fields for the site profile. The path
// fields hold already-stored upload paths; empty values keep the current
// files.
type ProfileInput struct {
	Name       string
	Role       string
	Bio        string
	Email      string
	Phone      string
	ImagePath  string
	ResumePath string
	Github     string
	Linkedin   string
	Twitter    string
}

// Profile returns the site profile, or nil when none has been created yet.
// Public pages fall back to per-field defaults in that case.
func (s *Service) Profile() (*Profile, error) {
	doc, err := s.store.FindOne(ColProfile)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	var p Profile
	if err := decode(doc, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveProfile writes the profile, creating it on first save. Replaced
// image and resume files are released after the record is written.
func (s *Service) SaveProfile(in ProfileInput) (*Profile, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &ValidationError{Field: "profile name"}
	}
	p, err := s.Profile()
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &Profile{}
	}
	oldImage, oldResume := p.ImagePath, p.ResumePath
	p.Name = name
	p.Role = strings.TrimSpace(in.Role)
	p.Bio = strings.TrimSpace(in.Bio)
	p.Email = strings.TrimSpace(in.Email)
	p.Phone = strings.TrimSpace(in.Phone)
	if in.ImagePath != "" {
		p.ImagePath = in.ImagePath
	}
	if in.ResumePath != "" {
		p.ResumePath = in.ResumePath
	}
	p.Github = strings.TrimSpace(in.Github)
	p.Linkedin = strings.TrimSpace(in.Linkedin)
	p.Twitter = strings.TrimSpace(in.Twitter)

	id, err := s.saveSingleton(ColProfile, p.ID, p)
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	p.ID = id
	if in.ImagePath != "" && oldImage != "" && oldImage != p.ImagePath {
		s.releaseFile(oldImage)
	}
	if in.ResumePath != "" && oldResume != "" && oldResume != p.ResumePath {
		s.releaseFile(oldResume)
	}
	return p, nil
}

// RemoveResume clears the stored resume path and releases the file.
func (s *Service) RemoveResume() (*Profile, error) {
	p, err := s.Profile()
	if err != nil {
		return nil, err
	}
	if p == nil || p.ResumePath == "" {
		return p, nil
	}
	old := p.ResumePath
	p.ResumePath = ""
	if err := s.store.Update(ColProfile, p.ID, p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	s.releaseFile(old)
	return p, nil
}
