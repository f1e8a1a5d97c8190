package profile

import "time"

// Profile is the per-user profile aggregate, stored as a single document.
type Profile struct {
	Contact        string             `json:"contact"`
	Experiences    []Experience       `json:"experiences"`
	Projects       []Project          `json:"projects"`
	Skills         []SkillRecord      `json:"skills"`
	Achievements   []string           `json:"achievements"`
	Certifications []string           `json:"certifications"`
	Assessments    []AssessmentRecord `json:"assessments"`
}

// Experience is one work-history entry.
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Project is one portfolio entry.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
}

// SkillRecord tracks a user's proficiency in one skill. At most one record
// exists per distinct skill string; lookups use exact string equality.
type SkillRecord struct {
	Skill string  `json:"skill"`
	Level string  `json:"level"`
	Score float64 `json:"score"`
}

// AssessmentRecord is one entry in the assessment history.
type AssessmentRecord struct {
	Skill          string    `json:"skill"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Level          string    `json:"level"`
	Date           time.Time `json:"date"`
}

// FindSkill returns the index of the first skill record exactly matching name,
// or -1. No normalization is applied: "React" and "react" are distinct.
func (p *Profile) FindSkill(name string) int {
	for i, s := range p.Skills {
		if s.Skill == name {
			return i
		}
	}
	return -1
}

// MergeSkillNames adds a beginner record for every name not already present
// as an exact match. Existing records are never touched. This is the only
// path that creates skill records; assessments only update existing ones.
func (p *Profile) MergeSkillNames(names []string) {
	for _, name := range names {
		if name == "" {
			continue
		}
		if p.FindSkill(name) == -1 {
			p.Skills = append(p.Skills, SkillRecord{Skill: name, Level: "beginner", Score: 0})
		}
	}
}
