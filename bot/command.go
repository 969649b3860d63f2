package bot

import (
	"strings"
	"unicode"
)

const (
	CmdStart  = "start"
	CmdHelp   = "help"
	CmdSave   = "save"
	CmdUpdate = "update"
	CmdNotes  = "notes"
	CmdDelete = "delete"
)

// Command is a parsed "/name args" message. Args is everything after the
// command token, untrimmed.
type Command struct {
	Name string
	Args string
}

// ParseCommand extracts the command from a message. The name is lower-cased
// and an "@botname" suffix, which Telegram adds in group chats, is dropped.
func ParseCommand(text string) (Command, bool) {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	if !strings.HasPrefix(text, "/") {
		return Command{}, false
	}
	token, args := text, ""
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		token, args = text[:i], text[i:]
	}
	name := strings.TrimPrefix(token, "/")
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	name = strings.ToLower(name)
	if name == "" {
		return Command{}, false
	}
	return Command{Name: name, Args: args}, true
}

func isKnown(name string) bool {
	switch name {
	case CmdStart, CmdHelp, CmdSave, CmdUpdate, CmdNotes, CmdDelete:
		return true
	default:
		return false
	}
}
