package profile

// UpdateRequest is the PUT /profile body. Nil sections are left unchanged;
// present sections replace the stored ones, except Skills which merges names.
type UpdateRequest struct {
	Name           *string       `json:"name"`
	Contact        *string       `json:"contact"`
	Experiences    *[]Experience `json:"experiences"`
	Projects       *[]Project    `json:"projects"`
	Skills         *[]string     `json:"skills"`
	Achievements   *[]string     `json:"achievements"`
	Certifications *[]string     `json:"certifications"`
}

// View is the outward-facing representation of a profile, merged with the
// owning user's identity. The password hash never appears here.
type View struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Contact        string             `json:"contact"`
	Experiences    []Experience       `json:"experiences"`
	Projects       []Project          `json:"projects"`
	Skills         []SkillRecord      `json:"skills"`
	Achievements   []string           `json:"achievements"`
	Certifications []string           `json:"certifications"`
	Assessments    []AssessmentRecord `json:"assessments"`
}

func toView(userID string, ident Identity, p Profile) View {
	v := View{
		ID:             userID,
		Name:           ident.Name,
		Email:          ident.Email,
		Contact:        p.Contact,
		Experiences:    p.Experiences,
		Projects:       p.Projects,
		Skills:         p.Skills,
		Achievements:   p.Achievements,
		Certifications: p.Certifications,
		Assessments:    p.Assessments,
	}
	if v.Experiences == nil {
		v.Experiences = []Experience{}
	}
	if v.Projects == nil {
		v.Projects = []Project{}
	}
	if v.Skills == nil {
		v.Skills = []SkillRecord{}
	}
	if v.Achievements == nil {
		v.Achievements = []string{}
	}
	if v.Certifications == nil {
		v.Certifications = []string{}
	}
	if v.Assessments == nil {
		v.Assessments = []AssessmentRecord{}
	}
	return v
}
