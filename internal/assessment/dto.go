package assessment

import "fmt"

type questionResponse struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

type questionSetResponse struct {
	Skill     string             `json:"skill"`
	Questions []questionResponse `json:"questions"`
}

func toQuestionSetResponse(skill string, questions []Question) questionSetResponse {
	out := questionSetResponse{
		Skill:     skill,
		Questions: make([]questionResponse, 0, len(questions)),
	}
	for _, q := range questions {
		out.Questions = append(out.Questions, questionResponse{
			Question:      q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return out
}

type submitRequest struct {
	Skill   string `json:"skill"`
	Answers []int  `json:"answers"`
}

// submitResponse reports the percentage as a 2-decimal fixed string, matching
// the contract clients already parse.
type submitResponse struct {
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	Percentage     string `json:"percentage"`
	Level          string `json:"level"`
}

func toSubmitResponse(outcome Outcome) submitResponse {
	return submitResponse{
		Score:          outcome.Score,
		TotalQuestions: outcome.TotalQuestions,
		Percentage:     fmt.Sprintf("%.2f", outcome.Percentage),
		Level:          string(outcome.Level),
	}
}
