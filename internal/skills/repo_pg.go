package skills

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) List(ctx context.Context, search string) ([]Skill, error) {
	const query = `
SELECT name, category
FROM skills
WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
ORDER BY name`
	rows, err := r.DB.QueryContext(ctx, query, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Skill
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.Name, &s.Category); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PGRepo) Upsert(ctx context.Context, skill Skill) error {
	if skill.Category == "" {
		skill.Category = "General"
	}
	const query = `
INSERT INTO skills (name, category)
VALUES ($1, $2)
ON CONFLICT (name) DO NOTHING`
	_, err := r.DB.ExecContext(ctx, query, skill.Name, skill.Category)
	return err
}
