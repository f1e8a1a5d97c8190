package assessment

import (
	"testing"
	"time"

	"skillmingle-backend/internal/profile"
)

// syntheticQuestions returns n questions whose correct answer is always 0.
func syntheticQuestions(n int) []Question {
	out := make([]Question, n)
	for i := range out {
		out[i] = Question{
			Text:          "q",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: 0,
		}
	}
	return out
}

func answersWithCorrect(total, correct int) []int {
	out := make([]int, total)
	for i := range out {
		if i < correct {
			out[i] = 0
		} else {
			out[i] = 1
		}
	}
	return out
}

func TestScoreLevels(t *testing.T) {
	e := NewEvaluator(60)

	tests := []struct {
		name      string
		total     int
		correct   int
		wantLevel Level
	}{
		{"all wrong", 5, 0, LevelBeginner},
		{"just below intermediate", 5, 2, LevelBeginner},
		{"exactly 60", 5, 3, LevelIntermediate},
		{"between cutoffs", 8, 5, LevelIntermediate},
		{"just below expert", 1000, 799, LevelIntermediate},
		{"just below intermediate large", 1000, 599, LevelBeginner},
		{"exactly 80", 5, 4, LevelExpert},
		{"perfect", 5, 5, LevelExpert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := syntheticQuestions(tt.total)
			outcome, err := e.Score(questions, answersWithCorrect(tt.total, tt.correct))
			if err != nil {
				t.Fatalf("Score: %v", err)
			}
			if outcome.Score != tt.correct {
				t.Fatalf("expected score %d, got %d", tt.correct, outcome.Score)
			}
			if outcome.Level != tt.wantLevel {
				t.Fatalf("expected level %s at %.3f%%, got %s", tt.wantLevel, outcome.Percentage, outcome.Level)
			}
		})
	}
}

func TestScoreCutoffIsConfigurable(t *testing.T) {
	questions := syntheticQuestions(2)
	answers := answersWithCorrect(2, 1) // 50%

	outcome, err := NewEvaluator(50).Score(questions, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if outcome.Level != LevelIntermediate {
		t.Fatalf("cutoff 50: expected intermediate at 50%%, got %s", outcome.Level)
	}

	outcome, err = NewEvaluator(60).Score(questions, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if outcome.Level != LevelBeginner {
		t.Fatalf("cutoff 60: expected beginner at 50%%, got %s", outcome.Level)
	}
}

func TestScoreIsMonotonic(t *testing.T) {
	e := NewEvaluator(60)
	questions := syntheticQuestions(5)
	answers := []int{1, 0, 2, 3, 1}

	base, err := e.Score(questions, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	for i := range answers {
		if answers[i] == questions[i].CorrectAnswer {
			continue
		}
		fixed := append([]int(nil), answers...)
		fixed[i] = questions[i].CorrectAnswer
		outcome, err := e.Score(questions, fixed)
		if err != nil {
			t.Fatalf("Score: %v", err)
		}
		if outcome.Score < base.Score {
			t.Fatalf("fixing answer %d decreased score from %d to %d", i, base.Score, outcome.Score)
		}
	}
}

func TestScoreShortAnswersTreatedAsUnanswered(t *testing.T) {
	e := NewEvaluator(60)
	questions := syntheticQuestions(5)

	outcome, err := e.Score(questions, []int{0, 0})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if outcome.Score != 2 || outcome.TotalQuestions != 5 {
		t.Fatalf("expected 2/5, got %d/%d", outcome.Score, outcome.TotalQuestions)
	}
}

func TestScoreRejectsExtraAnswers(t *testing.T) {
	e := NewEvaluator(60)
	if _, err := e.Score(syntheticQuestions(5), make([]int, 6)); err != ErrAnswerCount {
		t.Fatalf("expected ErrAnswerCount, got %v", err)
	}
}

func TestScoreKnownScenarios(t *testing.T) {
	catalog := NewCatalog()
	e := NewEvaluator(60)

	tests := []struct {
		skill      string
		answers    []int
		wantScore  int
		wantPct    float64
		wantLevel  Level
	}{
		{"JavaScript", []int{1, 0, 0, 1, 3}, 5, 100, LevelExpert},
		{"Python", []int{0, 0, 0, 0, 0}, 2, 40, LevelBeginner},
		{"unknownlang", []int{-1, -1, -1, -1, -1}, 0, 0, LevelBeginner},
	}

	for _, tt := range tests {
		t.Run(tt.skill, func(t *testing.T) {
			outcome, err := e.Score(catalog.Questions(tt.skill), tt.answers)
			if err != nil {
				t.Fatalf("Score: %v", err)
			}
			if outcome.Score != tt.wantScore {
				t.Fatalf("expected score %d, got %d", tt.wantScore, outcome.Score)
			}
			if outcome.Percentage != tt.wantPct {
				t.Fatalf("expected percentage %.2f, got %.2f", tt.wantPct, outcome.Percentage)
			}
			if outcome.Level != tt.wantLevel {
				t.Fatalf("expected level %s, got %s", tt.wantLevel, outcome.Level)
			}
		})
	}
}

func TestApplyResultUpdatesExactMatchOnly(t *testing.T) {
	p := profile.Profile{
		Skills: []profile.SkillRecord{
			{Skill: "React", Level: "beginner", Score: 0},
		},
	}
	outcome := Outcome{Score: 5, TotalQuestions: 5, Percentage: 100, Level: LevelExpert}
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	// Different case: the record must not be touched, only history grows.
	ApplyResult(&p, "react", outcome, now)
	if len(p.Assessments) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(p.Assessments))
	}
	if p.Skills[0].Level != "beginner" || p.Skills[0].Score != 0 {
		t.Fatalf("case-mismatched submission updated the skill record: %+v", p.Skills[0])
	}

	// Exact match updates level and stores the percentage, not the raw count.
	ApplyResult(&p, "React", outcome, now)
	if p.Skills[0].Level != "expert" || p.Skills[0].Score != 100 {
		t.Fatalf("expected expert/100, got %+v", p.Skills[0])
	}
	if len(p.Skills) != 1 {
		t.Fatalf("ApplyResult must never create skill records, got %d", len(p.Skills))
	}

	last := p.Assessments[len(p.Assessments)-1]
	if last.Skill != "React" || last.Score != 5 || last.TotalQuestions != 5 || last.Level != "expert" || !last.Date.Equal(now) {
		t.Fatalf("unexpected history entry: %+v", last)
	}
}
