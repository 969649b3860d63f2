package telegram

import (
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// botLogger routes the Telegram client's debug output into slog.
type botLogger struct {
	log *slog.Logger
}

func (l botLogger) Println(v ...interface{}) {
	l.log.Debug("telegram_api", "detail", strings.TrimSpace(fmt.Sprintln(v...)))
}

func (l botLogger) Printf(format string, v ...interface{}) {
	l.log.Debug("telegram_api", "detail", strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// NewBotAPI authenticates with the given token and returns a ready client.
func NewBotAPI(token string, debug bool, log *slog.Logger) (*tgbotapi.BotAPI, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := tgbotapi.SetLogger(botLogger{log: log}); err != nil {
		return nil, err
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	api.Debug = debug
	log.Info("telegram_authorized", "bot_username", api.Self.UserName)
	return api, nil
}
