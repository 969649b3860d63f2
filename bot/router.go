package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/quailyquaily/notesaver/internal/textutil"
	"github.com/quailyquaily/notesaver/notes"
)

// Message is an inbound chat message. ChatID identifies the owner of any
// notes the message touches.
type Message struct {
	ChatID int64
	Text   string
	Date   time.Time
}

// Reply is the single outbound message for a handled command. Quote asks the
// transport to send it as a reply to the inbound message.
type Reply struct {
	Text     string
	Markdown bool
	Quote    bool
}

type Options struct {
	// Location renders listing timestamps. Defaults to time.Local.
	Location *time.Location
	// MaxLineBytes caps the note text shown per listing line, up to
	// DefaultMaxLineBytes.
	MaxLineBytes int
}

type Router struct {
	store        notes.Store
	loc          *time.Location
	maxLineBytes int
}

func NewRouter(store notes.Store, opts Options) *Router {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	maxLine := opts.MaxLineBytes
	if maxLine <= 0 || maxLine > DefaultMaxLineBytes {
		maxLine = DefaultMaxLineBytes
	}
	return &Router{store: store, loc: loc, maxLineBytes: maxLine}
}

// Handle runs the command in msg. ok is false when the message is not a
// recognized command; in that case nothing should be sent. Storage failures
// are returned as errors and produce no reply.
func (r *Router) Handle(ctx context.Context, msg Message) (Reply, bool, error) {
	cmd, ok := ParseCommand(msg.Text)
	if !ok || !isKnown(cmd.Name) {
		return Reply{}, false, nil
	}

	var (
		reply Reply
		err   error
	)
	switch cmd.Name {
	case CmdStart:
		reply = quoted(startText)
	case CmdHelp:
		reply = quoted(helpText)
	case CmdSave:
		reply, err = r.save(ctx, msg, cmd.Args)
	case CmdUpdate:
		reply, err = r.update(ctx, msg, cmd.Args)
	case CmdDelete:
		reply, err = r.delete(ctx, msg, cmd.Args)
	case CmdNotes:
		reply, err = r.list(ctx, msg)
	}
	if err != nil {
		return Reply{}, true, fmt.Errorf("/%s: %w", cmd.Name, err)
	}
	return reply, true, nil
}

func (r *Router) save(ctx context.Context, msg Message, args string) (Reply, error) {
	text := strings.TrimSpace(args)
	if text == "" {
		return quoted(emptyNoteText), nil
	}
	if _, err := r.store.Add(ctx, msg.ChatID, text, msg.Date); err != nil {
		return Reply{}, err
	}
	return quoted(savedText), nil
}

func (r *Router) update(ctx context.Context, msg Message, args string) (Reply, error) {
	noteID, text := textutil.SplitHead(args)
	if noteID == "" {
		return quoted(notFoundText), nil
	}
	if text == "" {
		return quoted(emptyNoteText), nil
	}
	affected, err := r.store.Update(ctx, msg.ChatID, noteID, text)
	if err != nil {
		return Reply{}, err
	}
	if affected == 0 {
		return quoted(notFoundText), nil
	}
	return quoted(fmt.Sprintf(updatedFormat, escapeMarkdown(noteID))), nil
}

func (r *Router) delete(ctx context.Context, msg Message, args string) (Reply, error) {
	noteID := strings.TrimSpace(args)
	if noteID == "" {
		return quoted(notFoundText), nil
	}
	affected, err := r.store.Delete(ctx, msg.ChatID, noteID)
	if err != nil {
		return Reply{}, err
	}
	if affected == 0 {
		return quoted(notFoundText), nil
	}
	return quoted(fmt.Sprintf(deletedFormat, escapeMarkdown(noteID))), nil
}

func (r *Router) list(ctx context.Context, msg Message) (Reply, error) {
	list, err := r.store.List(ctx, msg.ChatID)
	if err != nil {
		return Reply{}, err
	}
	return Reply{
		Text:     formatNoteList(list, r.loc, r.maxLineBytes),
		Markdown: true,
	}, nil
}

func quoted(text string) Reply {
	return Reply{Text: text, Markdown: true, Quote: true}
}
