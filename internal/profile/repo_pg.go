package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres with the profile stored as a JSONB document.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, userID string) error {
	const query = `
INSERT INTO profiles (user_id, doc, created_at, updated_at)
VALUES ($1, '{}'::jsonb, now(), now())
ON CONFLICT (user_id) DO NOTHING`
	_, err := r.DB.ExecContext(ctx, query, userID)
	return err
}

func (r *PGRepo) Get(ctx context.Context, userID string) (Profile, error) {
	const query = `SELECT doc FROM profiles WHERE user_id = $1 LIMIT 1`
	var raw []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (r *PGRepo) Save(ctx context.Context, userID string, p Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	const query = `UPDATE profiles SET doc = $2, updated_at = now() WHERE user_id = $1`
	res, err := r.DB.ExecContext(ctx, query, userID, raw)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
