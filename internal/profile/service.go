package profile

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

// Identity is the slice of the user record the profile view needs.
type Identity struct {
	Name  string
	Email string
}

// IdentitySource resolves user identity; the users service satisfies it
// through an adapter in bootstrap.
type IdentitySource interface {
	Identity(ctx context.Context, userID string) (Identity, error)
	UpdateName(ctx context.Context, userID, name string) error
}

// CatalogNames lists known skill names for resume matching.
type CatalogNames interface {
	Names(ctx context.Context) ([]string, error)
}

// TextExtractor pulls plain text out of an uploaded resume.
type TextExtractor interface {
	Text(data []byte, mimeType, fileName string) (string, error)
}

// Service contains business logic for profiles.
type Service struct {
	Repo    Repo
	Ident   IdentitySource
	Catalog CatalogNames
	Extract TextExtractor
}

// Get returns the profile view for a user.
func (s *Service) Get(ctx context.Context, userID string) (View, error) {
	if userID == "" {
		return View{}, ErrInvalidInput
	}
	ident, err := s.Ident.Identity(ctx, userID)
	if err != nil {
		return View{}, err
	}
	p, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return View{}, err
	}
	return toView(userID, ident, p), nil
}

// Update applies a partial profile update. Skills merge by exact name, every
// other provided section replaces the stored one.
func (s *Service) Update(ctx context.Context, userID string, req UpdateRequest) (View, error) {
	if userID == "" {
		return View{}, ErrInvalidInput
	}

	p, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return View{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return View{}, ErrInvalidInput
		}
		if err := s.Ident.UpdateName(ctx, userID, name); err != nil {
			return View{}, err
		}
	}
	if req.Contact != nil {
		p.Contact = *req.Contact
	}
	if req.Experiences != nil {
		p.Experiences = *req.Experiences
	}
	if req.Projects != nil {
		p.Projects = *req.Projects
	}
	if req.Skills != nil {
		p.MergeSkillNames(*req.Skills)
	}
	if req.Achievements != nil {
		p.Achievements = *req.Achievements
	}
	if req.Certifications != nil {
		p.Certifications = *req.Certifications
	}

	if err := s.Repo.Save(ctx, userID, p); err != nil {
		return View{}, err
	}

	ident, err := s.Ident.Identity(ctx, userID)
	if err != nil {
		return View{}, err
	}
	return toView(userID, ident, p), nil
}

// ImportResume extracts text from an uploaded resume and adds every catalog
// skill mentioned in it as a beginner record. Returns the added names.
func (s *Service) ImportResume(ctx context.Context, userID, fileName, mimeType string, data []byte) ([]string, error) {
	if userID == "" || len(data) == 0 {
		return nil, ErrInvalidInput
	}

	text, err := s.Extract.Text(data, mimeType, fileName)
	if err != nil {
		return nil, err
	}

	names, err := s.Catalog.Names(ctx)
	if err != nil {
		return nil, err
	}

	matched := matchSkills(text, names)
	if len(matched) == 0 {
		return []string{}, nil
	}

	p, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	var added []string
	for _, name := range matched {
		if p.FindSkill(name) == -1 {
			added = append(added, name)
		}
	}
	if len(added) == 0 {
		return []string{}, nil
	}

	p.MergeSkillNames(added)
	if err := s.Repo.Save(ctx, userID, p); err != nil {
		return nil, err
	}
	return added, nil
}

// matchSkills finds catalog names mentioned in text, case-insensitively.
// Catalog names are short multi-token labels ("Node.js", "Machine Learning"),
// so a substring scan over the lowercased text is enough.
func matchSkills(text string, names []string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, name := range names {
		if name == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(name)) {
			out = append(out, name)
		}
	}
	return out
}
