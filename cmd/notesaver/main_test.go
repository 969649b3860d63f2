package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/quailyquaily/notesaver/bot"
	"github.com/quailyquaily/notesaver/notes"
	"github.com/spf13/viper"
)

func resetConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	cfgFile = ""
	t.Cleanup(func() {
		viper.Reset()
		cfgFile = ""
	})
}

func TestDBConfigFromViper_Defaults(t *testing.T) {
	resetConfig(t)
	setDefaults()

	cfg := dbConfigFromViper()
	if cfg.Driver != "sqlite" || cfg.DSN != "notes.db" || !cfg.AutoMigrate {
		t.Fatalf("unexpected db config: %+v", cfg)
	}
	if cfg.Pool.MaxOpenConns != 1 || cfg.SQLite.BusyTimeoutMs != 5000 || !cfg.SQLite.WAL {
		t.Fatalf("unexpected pool/sqlite config: %+v", cfg)
	}
}

func TestDBConfigFromViper_ZeroesFallBack(t *testing.T) {
	resetConfig(t)
	viper.Set("db.pool.max_open_conns", 0)
	viper.Set("db.pool.conn_max_lifetime", -time.Second)
	viper.Set("db.sqlite.busy_timeout_ms", -1)

	cfg := dbConfigFromViper()
	if cfg.Pool.MaxOpenConns != 1 || cfg.Pool.MaxIdleConns != 1 {
		t.Fatalf("expected pool fallbacks, got %+v", cfg.Pool)
	}
	if cfg.Pool.ConnMaxLifetime != 0 {
		t.Fatalf("expected negative lifetime clamped to 0, got %v", cfg.Pool.ConnMaxLifetime)
	}
	if cfg.SQLite.BusyTimeoutMs != 5000 {
		t.Fatalf("expected busy timeout fallback, got %d", cfg.SQLite.BusyTimeoutMs)
	}
}

func TestLocationFromViper(t *testing.T) {
	resetConfig(t)

	viper.Set("notes.timezone", "Local")
	loc, err := locationFromViper()
	if err != nil || loc != time.Local {
		t.Fatalf("expected time.Local, got %v (err=%v)", loc, err)
	}

	viper.Set("notes.timezone", "UTC")
	loc, err = locationFromViper()
	if err != nil || loc.String() != "UTC" {
		t.Fatalf("expected UTC, got %v (err=%v)", loc, err)
	}

	viper.Set("notes.timezone", "Mars/Olympus")
	if _, err := locationFromViper(); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestNewLogger_JSONLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "warn", "json", false)

	log.Info("telegram_command", "chat_id", 1)
	log.Warn("telegram_send_error", "chat_id", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected only the warn record, got %q", buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("expected JSON log line: %v", err)
	}
	if rec["msg"] != "telegram_send_error" || rec["level"] != "WARN" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	resetConfig(t)
	path := filepath.Join(t.TempDir(), "conf", "config.yaml")

	if err := writeDefaultConfig(path, false); err != nil {
		t.Fatalf("writeDefaultConfig() error = %v", err)
	}
	if err := writeDefaultConfig(path, false); err == nil {
		t.Fatal("expected refusal to overwrite without force")
	}
	if err := writeDefaultConfig(path, true); err != nil {
		t.Fatalf("writeDefaultConfig(force) error = %v", err)
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error = %v", err)
	}
	if got := viper.GetString("telegram.token_env"); got != "TOKEN" {
		t.Fatalf("telegram.token_env = %q", got)
	}
	if got := viper.GetDuration("telegram.poll_timeout"); got != 60*time.Second {
		t.Fatalf("telegram.poll_timeout = %v", got)
	}
	if got := viper.GetInt("notes.max_line_bytes"); got != bot.DefaultMaxLineBytes {
		t.Fatalf("notes.max_line_bytes = %d", got)
	}
	if got := viper.GetInt("db.sqlite.busy_timeout_ms"); got != 5000 {
		t.Fatalf("db.sqlite.busy_timeout_ms = %d", got)
	}
}

func TestPrintNotes(t *testing.T) {
	var buf bytes.Buffer
	at := time.Date(2024, 5, 17, 9, 30, 15, 0, time.UTC)
	printNotes(&buf, 42, []notes.Note{{ID: 1, UserID: 42, Text: "buy milk", CreatedAt: at}}, time.UTC)

	want := "Notes for 42 (1)\n1) buy milk 17-05-2024 09:30:15\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", got, want)
	}

	buf.Reset()
	printNotes(&buf, 7, nil, time.UTC)
	if !strings.Contains(buf.String(), "no notes") {
		t.Fatalf("expected empty marker, got %q", buf.String())
	}
}

func TestTelegramCmd_MissingTokenFailsStartup(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := writeDefaultConfig(path, false); err != nil {
		t.Fatalf("writeDefaultConfig() error = %v", err)
	}
	t.Setenv("TOKEN", "")
	t.Setenv("NOTESAVER_DB_DSN", filepath.Join(dir, "notes.db"))

	root := newRootCmd()
	root.SetArgs([]string{"--config", path, "telegram"})
	root.SetOut(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), "telegram token") {
		t.Fatalf("expected token error, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "notes.db")); statErr == nil {
		t.Fatal("database should not be created before the token is resolved")
	}
}

func TestNotesListCmd(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := writeDefaultConfig(path, false); err != nil {
		t.Fatalf("writeDefaultConfig() error = %v", err)
	}
	t.Setenv("NOTESAVER_DB_DSN", filepath.Join(dir, "notes.db"))
	t.Setenv("NOTESAVER_NOTES_TIMEZONE", "UTC")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs([]string{"--config", path, "notes", "list", "--user", "42"})
	root.SetOut(&out)
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("notes list error = %v", err)
	}
	if !strings.Contains(out.String(), "Notes for 42 (0)") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
