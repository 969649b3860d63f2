package bot

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/quailyquaily/notesaver/internal/textutil"
	"github.com/quailyquaily/notesaver/notes"
)

const (
	// MaxMessageBytes is Telegram's message length limit. The limit counts
	// characters, so budgeting in bytes always stays under it.
	MaxMessageBytes = 4096

	// DefaultMaxLineBytes also caps configured values: escaping can double
	// the text, and one line must always fit in a message.
	DefaultMaxLineBytes = 1800

	timestampLayout = "02-01-2006 15:04:05"
	moreReserve     = 64
)

// escapeMarkdown escapes user text for Telegram's legacy Markdown parse mode.
func escapeMarkdown(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func formatNoteLine(n notes.Note, loc *time.Location, maxTextBytes int) string {
	text := n.Text
	if maxTextBytes > 0 {
		text = textutil.Ellipsize(text, maxTextBytes)
	}
	return fmt.Sprintf("*%d)*  %s `(added: %s)`\n",
		n.ID, escapeMarkdown(text), n.CreatedAt.In(loc).Format(timestampLayout))
}

// formatNoteList renders notes, in the order given, into one message no
// longer than MaxMessageBytes. Lines that do not fit are counted in a
// trailing summary instead.
func formatNoteList(list []notes.Note, loc *time.Location, maxTextBytes int) string {
	if len(list) == 0 {
		return noNotesText
	}
	if loc == nil {
		loc = time.Local
	}

	var b strings.Builder
	b.WriteString(listHeader)
	for i, n := range list {
		line := formatNoteLine(n, loc, maxTextBytes)
		if b.Len()+len(line) > MaxMessageBytes-moreReserve {
			fmt.Fprintf(&b, "…and %d more", len(list)-i)
			break
		}
		b.WriteString(line)
	}
	return b.String()
}
