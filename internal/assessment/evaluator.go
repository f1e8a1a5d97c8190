package assessment

import (
	"time"

	"skillmingle-backend/internal/profile"
)

const expertCutoff = 80.0

// Evaluator scores submissions and applies results to profiles. Pure and
// deterministic; the only tunable is the intermediate cutoff, which shipped
// under two different values historically (50 and 60) and is therefore
// configurable with 60 as the default.
type Evaluator struct {
	IntermediateCutoff float64
}

// NewEvaluator returns an Evaluator with the given intermediate cutoff;
// non-positive values fall back to 60.
func NewEvaluator(intermediateCutoff float64) Evaluator {
	if intermediateCutoff <= 0 {
		intermediateCutoff = 60
	}
	return Evaluator{IntermediateCutoff: intermediateCutoff}
}

// Score counts exact index matches and derives percentage and level.
// Answers shorter than the question set leave the tail unanswered; longer
// submissions are rejected with ErrAnswerCount. Level thresholds are applied
// to the unrounded percentage.
func (e Evaluator) Score(questions []Question, answers []int) (Outcome, error) {
	if len(answers) > len(questions) {
		return Outcome{}, ErrAnswerCount
	}

	score := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			score++
		}
	}

	total := len(questions)
	percentage := 0.0
	if total > 0 {
		percentage = float64(score) / float64(total) * 100
	}

	return Outcome{
		Score:          score,
		TotalQuestions: total,
		Percentage:     percentage,
		Level:          e.level(percentage),
	}, nil
}

func (e Evaluator) level(percentage float64) Level {
	switch {
	case percentage >= expertCutoff:
		return LevelExpert
	case percentage >= e.IntermediateCutoff:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// ApplyResult appends the outcome to the profile's assessment history and
// updates the first skill record whose name is exactly string-equal to the
// submitted identifier. No normalization: a record stored as "React" is not
// updated by a submission for "react". If no record matches, the skill list
// is left unchanged.
func ApplyResult(p *profile.Profile, skill string, outcome Outcome, now time.Time) {
	p.Assessments = append(p.Assessments, profile.AssessmentRecord{
		Skill:          skill,
		Score:          outcome.Score,
		TotalQuestions: outcome.TotalQuestions,
		Level:          string(outcome.Level),
		Date:           now,
	})

	if i := p.FindSkill(skill); i != -1 {
		p.Skills[i].Level = string(outcome.Level)
		p.Skills[i].Score = outcome.Percentage
	}
}
