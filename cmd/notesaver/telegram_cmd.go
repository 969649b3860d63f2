package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/quailyquaily/notesaver/bot"
	"github.com/quailyquaily/notesaver/db"
	"github.com/quailyquaily/notesaver/notes"
	"github.com/quailyquaily/notesaver/secrets"
	"github.com/quailyquaily/notesaver/telegram"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTelegramCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "telegram",
		Short: "Run the Telegram bot (long polling)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := loggerFromViper()
			slog.SetDefault(log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			tokenEnv := viper.GetString("telegram.token_env")
			token, err := secrets.NewEnvResolver(nil).Resolve(ctx, tokenEnv)
			if err != nil {
				return fmt.Errorf("telegram token: %w", err)
			}

			loc, err := locationFromViper()
			if err != nil {
				return err
			}

			dbCfg := dbConfigFromViper()
			gdb, err := db.Open(ctx, dbCfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(gdb); err != nil {
					log.Warn("db_close_error", "error", err.Error())
				}
			}()
			log.Info("db_open", "driver", dbCfg.Driver, "dsn", dbCfg.DSN)

			router := bot.NewRouter(notes.NewGormStore(gdb), bot.Options{
				Location:     loc,
				MaxLineBytes: viper.GetInt("notes.max_line_bytes"),
			})

			api, err := telegram.NewBotAPI(token, viper.GetBool("telegram.debug"), log)
			if err != nil {
				return err
			}

			poller := &telegram.Poller{
				API:            api,
				Handler:        router,
				Logger:         log,
				PollTimeout:    viper.GetDuration("telegram.poll_timeout"),
				HandlerTimeout: viper.GetDuration("telegram.handler_timeout"),
			}
			return poller.Run(ctx)
		},
	}

	cmd.Flags().Duration("poll-timeout", telegram.DefaultPollTimeout, "long-poll timeout")
	cmd.Flags().Bool("debug", false, "log Telegram API traffic at debug level")
	_ = viper.BindPFlag("telegram.poll_timeout", cmd.Flags().Lookup("poll-timeout"))
	_ = viper.BindPFlag("telegram.debug", cmd.Flags().Lookup("debug"))
	return cmd
}
