package assessment

// Level is the proficiency level derived from an assessment percentage.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelExpert       Level = "expert"
)

// Question is one multiple-choice question. CorrectAnswer is the index into
// Options of the right choice.
type Question struct {
	Text          string
	Options       []string
	CorrectAnswer int
}

// Unanswered is the sentinel clients send for a skipped question. Any index
// outside the option range counts as no match, so the exact value is not
// load-bearing.
const Unanswered = -1

// Outcome is the result of scoring one submission.
type Outcome struct {
	Score          int
	TotalQuestions int
	Percentage     float64
	Level          Level
}
