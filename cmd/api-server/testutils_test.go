package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/protomem/study-planner/internal/database"
	"github.com/protomem/study-planner/internal/reminder"
)

// 2026-10-18 09:00 UTC
var _testNow = time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)

type telegramStub struct {
	mu       sync.Mutex
	status   int
	messages []string
}

func (s *telegramStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, r.PostForm.Get("text"))
	w.WriteHeader(s.status)
}

func (s *telegramStub) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.messages...)
}

func (s *telegramStub) MessagesWithPrefix(prefix string) []string {
	var out []string
	for _, m := range s.Messages() {
		if strings.HasPrefix(m, prefix) {
			out = append(out, m)
		}
	}
	return out
}

type testApp struct {
	*application
	handler  http.Handler
	telegram *telegramStub
}

type testOption func(*config)

func withoutTelegram() testOption {
	return func(cfg *config) {
		cfg.telegram.botToken = ""
	}
}

func newTestApp(t *testing.T, opts ...testOption) *testApp {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	stub := &telegramStub{status: http.StatusOK}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	var cfg config
	cfg.httpPort = 8080
	cfg.db.dsn = filepath.Join(t.TempDir(), "planner.db")
	cfg.db.automigrate = true
	cfg.auth.secretKey = "test-secret"
	cfg.auth.tokenTTL = time.Hour
	cfg.telegram.apiURL = srv.URL + "/bot%s/sendMessage"
	cfg.telegram.botToken = "token"
	cfg.telegram.chatID = "42"
	cfg.telegram.timeout = time.Second
	cfg.reminder.lookahead = reminder.DefaultLookahead

	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := database.New(logger, cfg.db.dsn, cfg.db.automigrate)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	app := newApplication(logger, cfg, db, reminder.FixedClock(_testNow))

	return &testApp{
		application: app,
		handler:     app.routes(),
		telegram:    stub,
	}
}

func (ta *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		js, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(js)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ta.handler.ServeHTTP(rec, req)

	return rec
}

func (ta *testApp) upload(t *testing.T, path, token, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	ta.handler.ServeHTTP(rec, req)

	return rec
}

// register creates an account and returns its token.
func (ta *testApp) register(t *testing.T, email string) string {
	t.Helper()

	rec := ta.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    email,
		"password": "secret-password",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var res responseAuth
	decodeBody(t, rec, &res)
	require.NotEmpty(t, res.Token)

	return res.Token
}

func (ta *testApp) createSession(t *testing.T, token string, input map[string]any) responseSession {
	t.Helper()

	rec := ta.do(t, http.MethodPost, "/api/v1/sessions", token, input)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var res responseSession
	decodeBody(t, rec, &res)

	ta.wg.Wait()

	return res
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

func queryPath(path string, params map[string]string) string {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	return path + "?" + values.Encode()
}
