package skills

import "context"

// Repo defines persistence operations for the skill catalog.
type Repo interface {
	// List returns skills sorted by name, optionally filtered by a
	// case-insensitive substring match on the name.
	List(ctx context.Context, search string) ([]Skill, error)
	// Upsert inserts a skill or leaves an existing one untouched.
	Upsert(ctx context.Context, skill Skill) error
}
