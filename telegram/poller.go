package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/quailyquaily/notesaver/bot"
)

const DefaultPollTimeout = 60 * time.Second

// API is the subset of *tgbotapi.BotAPI the poller needs.
type API interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	StopReceivingUpdates()
}

type Handler interface {
	Handle(ctx context.Context, msg bot.Message) (bot.Reply, bool, error)
}

// Poller long-polls Telegram and runs every message through Handler, one at a
// time, in arrival order.
type Poller struct {
	API     API
	Handler Handler
	Logger  *slog.Logger

	PollTimeout time.Duration
	// HandlerTimeout bounds a single Handle call. Zero means no limit.
	HandlerTimeout time.Duration
}

// Run blocks until ctx is cancelled or the update stream ends. A message that
// is being handled when ctx is cancelled still gets its reply.
func (p *Poller) Run(ctx context.Context) error {
	if p == nil || p.API == nil || p.Handler == nil {
		return fmt.Errorf("telegram poller is not configured")
	}
	log := p.Logger
	if log == nil {
		log = slog.Default()
	}

	pollTimeout := p.PollTimeout
	if pollTimeout <= 0 {
		pollTimeout = DefaultPollTimeout
	}
	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(pollTimeout / time.Second)
	updates := p.API.GetUpdatesChan(u)

	log.Info("telegram_start", "poll_timeout", pollTimeout.String(), "handler_timeout", p.HandlerTimeout.String())
	for {
		select {
		case <-ctx.Done():
			p.API.StopReceivingUpdates()
			log.Info("telegram_stop", "reason", ctx.Err().Error())
			return nil
		case upd, ok := <-updates:
			if !ok {
				log.Info("telegram_stop", "reason", "updates closed")
				return nil
			}
			p.handleUpdate(context.WithoutCancel(ctx), log, upd)
		}
	}
}

func (p *Poller) handleUpdate(ctx context.Context, log *slog.Logger, upd tgbotapi.Update) {
	m := upd.Message
	if m == nil || m.Chat == nil || m.Text == "" {
		return
	}

	if p.HandlerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.HandlerTimeout)
		defer cancel()
	}

	start := time.Now()
	reply, ok, err := p.Handler.Handle(ctx, bot.Message{
		ChatID: m.Chat.ID,
		Text:   m.Text,
		Date:   m.Time(),
	})
	if !ok {
		return
	}
	cmd, _ := bot.ParseCommand(m.Text)
	command := cmd.Name
	if err != nil {
		log.Error("telegram_handle_error",
			"chat_id", m.Chat.ID,
			"command", command,
			"error", err.Error(),
		)
		return
	}
	log.Info("telegram_command",
		"chat_id", m.Chat.ID,
		"command", command,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	out := tgbotapi.NewMessage(m.Chat.ID, reply.Text)
	if reply.Markdown {
		out.ParseMode = tgbotapi.ModeMarkdown
	}
	if reply.Quote {
		out.ReplyToMessageID = m.MessageID
	}
	if _, err := p.API.Send(out); err != nil {
		log.Error("telegram_send_error",
			"chat_id", m.Chat.ID,
			"command", command,
			"error", err.Error(),
		)
	}
}
