package models

// Note is one row of the notes table. Timestamp holds unix seconds of the
// chat message that created the note.
type Note struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    int64  `gorm:"column:user_id;not null;index:idx_notes_user_ts,priority:1"`
	NoteText  string `gorm:"column:note_text;type:text;not null"`
	Timestamp int64  `gorm:"column:timestamp;not null;index:idx_notes_user_ts,priority:2"`
}

func (Note) TableName() string { return "notes" }
