package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/protomem/study-planner/internal/auth"
	"github.com/protomem/study-planner/internal/database"
	"github.com/protomem/study-planner/internal/env"
	"github.com/protomem/study-planner/internal/notify"
	"github.com/protomem/study-planner/internal/reminder"
	"github.com/protomem/study-planner/internal/version"
)

var (
	_cfgFile     = flag.String("cfg", "", "path to config file")
	_showVersion = flag.Bool("version", false, "display version and exit")
)

// @title Study Planner
// @version 1.0
// @description Web API - Study Planner
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	err := run(logger)
	if err != nil {
		trace := string(debug.Stack())
		logger.Error(err.Error(), "trace", trace)
		os.Exit(1)
	}
}

type config struct {
	httpHost string
	httpPort int
	db       struct {
		dsn         string
		automigrate bool
	}
	auth struct {
		secretKey string
		tokenTTL  time.Duration
	}
	telegram struct {
		apiURL   string
		botToken string
		chatID   string
		timeout  time.Duration
	}
	reminder struct {
		lookahead time.Duration
	}
}

type application struct {
	config config
	db     *database.DB
	logger *slog.Logger
	clock  reminder.Clock

	tokens   *auth.Tokens
	notifier reminder.Notifier
	sweeper  *reminder.Sweeper

	wg sync.WaitGroup
}

func run(logger *slog.Logger) error {
	if *_showVersion {
		fmt.Printf("version: %s\n", version.Get())
		return nil
	}

	if *_cfgFile != "" {
		err := env.Load(*_cfgFile)
		if err != nil {
			return err
		}
	}

	cfg := loadConfig()

	if cfg.auth.secretKey == "" {
		return errors.New("SECRET_KEY is required")
	}
	if err := cfg.notifyConfig().Validate(); err != nil {
		return fmt.Errorf("TELEGRAM_API_URL: %w", err)
	}

	db, err := database.New(logger, cfg.db.dsn, cfg.db.automigrate)
	if err != nil {
		return err
	}
	defer db.Close()

	app := newApplication(logger, cfg, db, reminder.SystemClock)

	if !app.notifier.Enabled() {
		app.logger.Warn("telegram is not configured, notifications are disabled")
	}

	return app.serveHTTP()
}

func loadConfig() config {
	var cfg config

	cfg.httpHost = env.GetString("HTTP_HOST", "localhost")
	cfg.httpPort = env.GetInt("HTTP_PORT", 8080)
	cfg.db.dsn = env.GetString("DATABASE_URL", "planner.db")
	cfg.db.automigrate = env.GetBool("DB_AUTOMIGRATE", true)
	cfg.auth.secretKey = env.GetString("SECRET_KEY", "")
	cfg.auth.tokenTTL = env.GetDuration("TOKEN_TTL", auth.DefaultTTL)
	cfg.telegram.apiURL = env.GetString("TELEGRAM_API_URL", notify.DefaultEndpoint)
	cfg.telegram.botToken = env.GetString("TELEGRAM_BOT_TOKEN", "")
	cfg.telegram.chatID = env.GetString("TELEGRAM_CHAT_ID", "")
	cfg.telegram.timeout = env.GetDuration("NOTIFY_TIMEOUT", notify.DefaultTimeout)
	cfg.reminder.lookahead = env.GetDuration("REMINDER_LOOKAHEAD", reminder.DefaultLookahead)

	return cfg
}

func (cfg config) notifyConfig() notify.Config {
	return notify.Config{
		Endpoint: cfg.telegram.apiURL,
		Token:    cfg.telegram.botToken,
		ChatID:   cfg.telegram.chatID,
		Timeout:  cfg.telegram.timeout,
	}
}

func newApplication(logger *slog.Logger, cfg config, db *database.DB, clock reminder.Clock) *application {
	notifier := notify.NewTelegram(logger, cfg.notifyConfig())

	sweeper := reminder.NewSweeper(
		logger,
		database.NewSessionDAO(logger, db),
		notifier,
		clock,
		reminder.Config{Lookahead: cfg.reminder.lookahead},
	)

	return &application{
		config:   cfg,
		db:       db,
		logger:   logger,
		clock:    clock,
		tokens:   auth.NewTokens(cfg.auth.secretKey, cfg.auth.tokenTTL),
		notifier: notifier,
		sweeper:  sweeper,
	}
}
