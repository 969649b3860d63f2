package main

import (
	"time"

	"github.com/quailyquaily/notesaver/bot"
	"github.com/quailyquaily/notesaver/db"
	"github.com/quailyquaily/notesaver/telegram"
	"github.com/spf13/viper"
)

func setDefaults() {
	viper.SetDefault("telegram.token_env", "TOKEN")
	viper.SetDefault("telegram.poll_timeout", telegram.DefaultPollTimeout)
	viper.SetDefault("telegram.handler_timeout", time.Duration(0))
	viper.SetDefault("telegram.debug", false)

	def := db.DefaultConfig()
	viper.SetDefault("db.driver", def.Driver)
	viper.SetDefault("db.dsn", def.DSN)
	viper.SetDefault("db.automigrate", def.AutoMigrate)
	viper.SetDefault("db.pool.max_open_conns", def.Pool.MaxOpenConns)
	viper.SetDefault("db.pool.max_idle_conns", def.Pool.MaxIdleConns)
	viper.SetDefault("db.pool.conn_max_lifetime", def.Pool.ConnMaxLifetime)
	viper.SetDefault("db.sqlite.busy_timeout_ms", def.SQLite.BusyTimeoutMs)
	viper.SetDefault("db.sqlite.wal", def.SQLite.WAL)
	viper.SetDefault("db.sqlite.foreign_keys", def.SQLite.ForeignKeys)

	viper.SetDefault("notes.timezone", "Local")
	viper.SetDefault("notes.max_line_bytes", bot.DefaultMaxLineBytes)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("log.add_source", false)
}
