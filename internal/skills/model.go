package skills

// Skill is one entry in the global skill catalog.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// DefaultCatalog is the seed list of skill names.
var DefaultCatalog = []string{
	"JavaScript", "Python", "Java", "React", "Node.js", "Express.js",
	"MongoDB", "SQL", "HTML", "CSS", "TypeScript", "Vue.js", "Angular",
	"Docker", "Kubernetes", "AWS", "Git", "REST API", "GraphQL",
	"Redux", "Next.js", "Django", "Flask", "Spring Boot", "C++",
	"C#", "PHP", "Ruby", "Go", "Swift", "Kotlin", "React Native",
	"Machine Learning", "Data Science", "DevOps", "UI/UX Design",
	"Figma", "Adobe XD", "Agile", "Scrum", "Project Management",
}
