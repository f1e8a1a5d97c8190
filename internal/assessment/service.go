package assessment

import (
	"context"
	"strings"
	"time"

	"skillmingle-backend/internal/profile"
	"skillmingle-backend/internal/shared/metrics"
)

// Service coordinates question retrieval, scoring and profile updates.
type Service struct {
	Catalog   *Catalog
	Evaluator Evaluator
	Profiles  profile.Repo

	now func() time.Time
}

func NewService(catalog *Catalog, evaluator Evaluator, profiles profile.Repo) *Service {
	return &Service{
		Catalog:   catalog,
		Evaluator: evaluator,
		Profiles:  profiles,
		now:       time.Now,
	}
}

// Questions returns the question set for a skill, answer key included.
func (s *Service) Questions(skill string) ([]Question, error) {
	if strings.TrimSpace(skill) == "" {
		return nil, ErrInvalidInput
	}
	return s.Catalog.Questions(skill), nil
}

// Submit scores a submission against the skill's question set, records it in
// the user's assessment history, updates the matching skill record and
// persists the profile. The store's read-modify-write discipline decides the
// outcome if two submissions for the same user race.
func (s *Service) Submit(ctx context.Context, userID, skill string, answers []int) (Outcome, error) {
	if strings.TrimSpace(skill) == "" {
		return Outcome{}, ErrInvalidInput
	}

	questions := s.Catalog.Questions(skill)
	outcome, err := s.Evaluator.Score(questions, answers)
	if err != nil {
		return Outcome{}, err
	}

	p, err := s.Profiles.Get(ctx, userID)
	if err != nil {
		metrics.IncAssessmentFailed()
		return Outcome{}, err
	}

	ApplyResult(&p, skill, outcome, s.now().UTC())

	if err := s.Profiles.Save(ctx, userID, p); err != nil {
		metrics.IncAssessmentFailed()
		return Outcome{}, err
	}

	metrics.IncAssessmentSubmitted()
	metrics.IncLevel(string(outcome.Level))
	metrics.ObserveScorePercent(outcome.Percentage)

	return outcome, nil
}
