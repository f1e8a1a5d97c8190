package skills

import "context"

// Service contains business logic for the skill catalog.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) List(ctx context.Context, search string) ([]Skill, error) {
	return s.Repo.List(ctx, search)
}

// Seed upserts the default catalog. Existing entries keep their category.
func (s *Service) Seed(ctx context.Context) error {
	for _, name := range DefaultCatalog {
		if err := s.Repo.Upsert(ctx, Skill{Name: name}); err != nil {
			return err
		}
	}
	return nil
}

// Names returns all catalog names, for resume skill matching.
func (s *Service) Names(ctx context.Context) ([]string, error) {
	list, err := s.Repo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(list))
	for _, sk := range list {
		names = append(names, sk.Name)
	}
	return names, nil
}
