package profile

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "profile not found" }

// Repo defines persistence operations for profile documents.
type Repo interface {
	Create(ctx context.Context, userID string) error
	Get(ctx context.Context, userID string) (Profile, error)
	Save(ctx context.Context, userID string, p Profile) error
}
