package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quailyquaily/notesaver/bot"
	"github.com/quailyquaily/notesaver/db"
	"github.com/quailyquaily/notesaver/internal/clifmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	Telegram struct {
		TokenEnv       string `yaml:"token_env"`
		PollTimeout    string `yaml:"poll_timeout"`
		HandlerTimeout string `yaml:"handler_timeout"`
		Debug          bool   `yaml:"debug"`
	} `yaml:"telegram"`
	DB struct {
		Driver      string `yaml:"driver"`
		DSN         string `yaml:"dsn"`
		AutoMigrate bool   `yaml:"automigrate"`
		Pool        struct {
			MaxOpenConns    int    `yaml:"max_open_conns"`
			MaxIdleConns    int    `yaml:"max_idle_conns"`
			ConnMaxLifetime string `yaml:"conn_max_lifetime"`
		} `yaml:"pool"`
		SQLite struct {
			BusyTimeoutMs int  `yaml:"busy_timeout_ms"`
			WAL           bool `yaml:"wal"`
			ForeignKeys   bool `yaml:"foreign_keys"`
		} `yaml:"sqlite"`
	} `yaml:"db"`
	Notes struct {
		Timezone     string `yaml:"timezone"`
		MaxLineBytes int    `yaml:"max_line_bytes"`
	} `yaml:"notes"`
	Log struct {
		Level     string `yaml:"level"`
		Format    string `yaml:"format"`
		AddSource bool   `yaml:"add_source"`
	} `yaml:"log"`
}

func defaultFileConfig() fileConfig {
	var c fileConfig
	c.Telegram.TokenEnv = "TOKEN"
	c.Telegram.PollTimeout = "60s"
	c.Telegram.HandlerTimeout = "0s"

	def := db.DefaultConfig()
	c.DB.Driver = def.Driver
	c.DB.DSN = def.DSN
	c.DB.AutoMigrate = def.AutoMigrate
	c.DB.Pool.MaxOpenConns = def.Pool.MaxOpenConns
	c.DB.Pool.MaxIdleConns = def.Pool.MaxIdleConns
	c.DB.Pool.ConnMaxLifetime = def.Pool.ConnMaxLifetime.String()
	c.DB.SQLite.BusyTimeoutMs = def.SQLite.BusyTimeoutMs
	c.DB.SQLite.WAL = def.SQLite.WAL
	c.DB.SQLite.ForeignKeys = def.SQLite.ForeignKeys

	c.Notes.Timezone = "Local"
	c.Notes.MaxLineBytes = bot.DefaultMaxLineBytes

	c.Log.Level = "info"
	c.Log.Format = "text"
	return c
}

func writeDefaultConfig(path string, force bool) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("empty config path")
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	raw, err := yaml.Marshal(defaultFileConfig())
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, raw, 0o644)
}

func newInitCmd() *cobra.Command {
	var (
		path  string
		force bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := writeDefaultConfig(path, force); err != nil {
				return err
			}
			p := clifmt.New(cmd.OutOrStdout())
			p.Linef("%s %s", p.Success("wrote"), path)
			p.Linef("%s", p.Dim("put the bot token in the TOKEN env var or a .env file"))
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "config.yaml", "where to write the config")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
