package assessment

import (
	"strings"
	"unicode"
)

// Catalog holds the static question bank and the skill alias table. It is
// built once at startup and read-only afterwards.
type Catalog struct {
	bank    map[string][]Question
	aliases map[string]string
	defKey  string
}

// NewCatalog constructs the built-in catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		bank:    questionBank(),
		aliases: skillAliases(),
		defKey:  "JavaScript",
	}
}

// CanonicalKey normalizes a skill identifier: strip all whitespace, lowercase,
// then consult the alias table. Unknown identifiers come back unchanged, case
// and whitespace preserved, so two differently-cased unknown skills stay
// distinct while known aliases collapse to one canonical key.
func (c *Catalog) CanonicalKey(skill string) string {
	normalized := strings.ToLower(stripSpace(skill))
	if canonical, ok := c.aliases[normalized]; ok {
		return canonical
	}
	return skill
}

// Questions returns the question set for a skill. Known canonical keys get
// their bank set; anything else gets the default set with every occurrence of
// the default skill name replaced by the original identifier. The returned
// slice is always a fresh copy safe for the caller to mutate.
func (c *Catalog) Questions(skill string) []Question {
	key := c.CanonicalKey(skill)
	if set, ok := c.bank[key]; ok {
		return copyQuestions(set)
	}

	set := copyQuestions(c.bank[c.defKey])
	for i := range set {
		set[i].Text = strings.ReplaceAll(set[i].Text, c.defKey, skill)
	}
	return set
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func copyQuestions(set []Question) []Question {
	out := make([]Question, len(set))
	for i, q := range set {
		out[i] = Question{
			Text:          q.Text,
			Options:       append([]string(nil), q.Options...),
			CorrectAnswer: q.CorrectAnswer,
		}
	}
	return out
}

func skillAliases() map[string]string {
	return map[string]string{
		"js":         "JavaScript",
		"javascript": "JavaScript",
		"react":      "React",
		"reactjs":    "React",
		"react.js":   "React",
		"python":     "Python",
		"python3":    "Python",
		// Node.js has aliases but no bank entry, so it falls through to the
		// substituted default set under its canonical name.
		"node":    "Node.js",
		"nodejs":  "Node.js",
		"node.js": "Node.js",
	}
}

func questionBank() map[string][]Question {
	return map[string][]Question{
		"JavaScript": {
			{
				Text:          "What is the output of: console.log(typeof null)?",
				Options:       []string{"null", "object", "undefined", "boolean"},
				CorrectAnswer: 1,
			},
			{
				Text:          "Which method is used to add an element to the end of an array?",
				Options:       []string{"push()", "pop()", "shift()", "unshift()"},
				CorrectAnswer: 0,
			},
			{
				Text: "What is a closure in JavaScript?",
				Options: []string{
					"A function that has access to variables in its outer scope",
					"A way to close a browser tab",
					"A method to close a database connection",
					"A type of loop",
				},
				CorrectAnswer: 0,
			},
			{
				Text: "What does the \"this\" keyword refer to in JavaScript?",
				Options: []string{
					"The current function",
					"The object that owns the function",
					"The global object",
					"The parent object",
				},
				CorrectAnswer: 1,
			},
			{
				Text:          "Which is NOT a way to declare a variable in JavaScript?",
				Options:       []string{"var", "let", "const", "def"},
				CorrectAnswer: 3,
			},
		},
		"React": {
			{
				Text: "What is JSX?",
				Options: []string{
					"A JavaScript extension that allows HTML-like syntax",
					"A database query language",
					"A CSS framework",
					"A testing library",
				},
				CorrectAnswer: 0,
			},
			{
				Text: "What is the purpose of useState hook?",
				Options: []string{
					"To fetch data from an API",
					"To manage component state",
					"To handle side effects",
					"To optimize rendering",
				},
				CorrectAnswer: 1,
			},
			{
				Text: "What is the virtual DOM?",
				Options: []string{
					"A copy of the real DOM kept in memory",
					"A database for React components",
					"A browser extension",
					"A server-side rendering technique",
				},
				CorrectAnswer: 0,
			},
			{
				Text:          "Which lifecycle method is called after a component is rendered?",
				Options:       []string{"componentDidMount", "componentWillMount", "componentDidUpdate", "render"},
				CorrectAnswer: 0,
			},
			{
				Text: "What is the purpose of props in React?",
				Options: []string{
					"To pass data from parent to child components",
					"To manage local state",
					"To handle events",
					"To style components",
				},
				CorrectAnswer: 0,
			},
		},
		"Python": {
			{
				Text:          "What is the output of: print(2 ** 3)?",
				Options:       []string{"6", "8", "9", "5"},
				CorrectAnswer: 1,
			},
			{
				Text:          "Which data type is mutable in Python?",
				Options:       []string{"list", "tuple", "string", "int"},
				CorrectAnswer: 0,
			},
			{
				Text: "What is a list comprehension?",
				Options: []string{
					"A method to read files",
					"A type of loop",
					"A way to create lists using a concise syntax",
					"A database query",
				},
				CorrectAnswer: 2,
			},
			{
				Text: "What does the __init__ method do?",
				Options: []string{
					"Terminates a program",
					"Initializes a class instance",
					"Imports a module",
					"Exports data",
				},
				CorrectAnswer: 1,
			},
			{
				Text:          "Which is used to handle exceptions in Python?",
				Options:       []string{"try-except", "if-else", "for-while", "switch-case"},
				CorrectAnswer: 0,
			},
		},
	}
}
