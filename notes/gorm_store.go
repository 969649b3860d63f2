package notes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/quailyquaily/notesaver/db/models"
	"gorm.io/gorm"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Add(ctx context.Context, userID int64, text string, at time.Time) (Note, error) {
	if s == nil || s.DB == nil {
		return Note{}, fmt.Errorf("nil note store")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Note{}, fmt.Errorf("empty note text")
	}
	if at.IsZero() {
		at = time.Now()
	}

	row := models.Note{
		UserID:    userID,
		NoteText:  text,
		Timestamp: at.Unix(),
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return Note{}, err
	}
	return modelToNote(row), nil
}

func (s *GormStore) Update(ctx context.Context, userID int64, noteID string, text string) (int64, error) {
	if s == nil || s.DB == nil {
		return 0, fmt.Errorf("nil note store")
	}
	noteID = strings.TrimSpace(noteID)
	if noteID == "" {
		return 0, nil
	}
	// The id is bound as given; sqlite's integer affinity on the column makes
	// "7" match row 7 while a non-numeric token matches nothing.
	res := s.DB.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ? AND user_id = ?", noteID, userID).
		Update("note_text", text)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (s *GormStore) Delete(ctx context.Context, userID int64, noteID string) (int64, error) {
	if s == nil || s.DB == nil {
		return 0, fmt.Errorf("nil note store")
	}
	noteID = strings.TrimSpace(noteID)
	if noteID == "" {
		return 0, nil
	}
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", noteID, userID).
		Delete(&models.Note{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// List returns the owner's notes oldest first. Notes sharing a timestamp keep
// insertion order.
func (s *GormStore) List(ctx context.Context, userID int64) ([]Note, error) {
	if s == nil || s.DB == nil {
		return nil, fmt.Errorf("nil note store")
	}
	var rows []models.Note
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]Note, 0, len(rows))
	for _, r := range rows {
		out = append(out, modelToNote(r))
	}
	return out, nil
}

func modelToNote(m models.Note) Note {
	return Note{
		ID:        m.ID,
		UserID:    m.UserID,
		Text:      m.NoteText,
		CreatedAt: time.Unix(m.Timestamp, 0),
	}
}
