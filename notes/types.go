package notes

import "time"

type Note struct {
	ID        int64
	UserID    int64
	Text      string
	CreatedAt time.Time
}
