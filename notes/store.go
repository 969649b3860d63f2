package notes

import (
	"context"
	"time"
)

// Store persists notes scoped by owner. Update and Delete match on both the
// note id and the owner in a single statement and report how many rows were
// touched; a zero count means the note does not exist or belongs to someone
// else, and callers cannot tell which.
type Store interface {
	Add(ctx context.Context, userID int64, text string, at time.Time) (Note, error)
	Update(ctx context.Context, userID int64, noteID string, text string) (int64, error)
	Delete(ctx context.Context, userID int64, noteID string) (int64, error)
	List(ctx context.Context, userID int64) ([]Note, error)
}
