package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultEndpoint = "https://api.telegram.org/bot%s/sendMessage"
	DefaultTimeout  = 5 * time.Second
)

var (
	ErrNotConfigured   = errors.New("notify: channel not configured")
	ErrInvalidEndpoint = errors.New("notify: endpoint must contain exactly one %s for the bot token")
)

type Config struct {
	// Endpoint is a URL template with a single %s for the bot token.
	Endpoint string
	Token    string
	ChatID   string
	Timeout  time.Duration
}

func (c Config) Enabled() bool {
	return c.Token != "" && c.ChatID != ""
}

// Validate checks the endpoint template; an empty one means DefaultEndpoint.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return nil
	}

	verbs := strings.Count(strings.ReplaceAll(c.Endpoint, "%%", ""), "%")
	if verbs != 1 || strings.Count(c.Endpoint, "%s") != 1 {
		return ErrInvalidEndpoint
	}

	return nil
}

type Status int

const (
	StatusSkipped Status = iota
	StatusDelivered
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusDelivered:
		return "delivered"
	case StatusFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// Result is the outcome of one dispatch. Callers that treat delivery as best
// effort discard it after logging.
type Result struct {
	Status Status
	Err    error
}

func (r Result) Delivered() bool {
	return r.Status == StatusDelivered
}

// Telegram posts text messages to one chat through the Bot API.
type Telegram struct {
	logger     *slog.Logger
	cfg        Config
	httpClient *http.Client
}

func NewTelegram(logger *slog.Logger, cfg Config) *Telegram {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Telegram{
		logger:     logger.With("module", "notify", "channel", "telegram"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (t *Telegram) Enabled() bool {
	return t.cfg.Enabled()
}

// Send never returns an error; every failure is reported through Result.
func (t *Telegram) Send(ctx context.Context, text string) Result {
	if !t.cfg.Enabled() {
		return Result{Status: StatusSkipped, Err: ErrNotConfigured}
	}

	if err := t.post(ctx, text); err != nil {
		t.logger.Warn("failed to send message", "error", err)
		return Result{Status: StatusFailed, Err: err}
	}

	t.logger.Debug("message sent", "chatId", t.cfg.ChatID)

	return Result{Status: StatusDelivered}
}

func (t *Telegram) post(ctx context.Context, text string) error {
	ctx, cancel := context.WithTimeout(ctx, t.cfg.Timeout)
	defer cancel()

	form := url.Values{
		"chat_id": {t.cfg.ChatID},
		"text":    {text},
	}

	if err := t.cfg.Validate(); err != nil {
		return err
	}

	endpoint := fmt.Sprintf(t.cfg.Endpoint, t.cfg.Token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return redactToken(err, t.cfg.Token)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return redactToken(err, t.cfg.Token)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notify: unexpected status %d", resp.StatusCode)
	}

	return nil
}

// redactToken keeps the bot token out of logs; url errors embed the full URL.
func redactToken(err error, token string) error {
	if token == "" {
		return err
	}

	return &redactedError{
		msg: strings.ReplaceAll(err.Error(), token, "***"),
		err: err,
	}
}

// redactedError hides the token in its message but still unwraps to the cause.
type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string {
	return e.msg
}

func (e *redactedError) Unwrap() error {
	return e.err
}
