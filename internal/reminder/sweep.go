package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/protomem/study-planner/internal/model"
	"github.com/protomem/study-planner/internal/notify"
)

const DefaultLookahead = 30 * time.Minute

type Store interface {
	FindDueCandidates(ctx context.Context, user model.ID, date string) ([]model.ReminderCandidate, error)
	MarkSent(ctx context.Context, ids []model.ID) (int64, error)
}

type Notifier interface {
	Enabled() bool
	Send(ctx context.Context, text string) notify.Result
}

type Config struct {
	Lookahead time.Duration
}

type Report struct {
	Candidates int
	Malformed  int
	Due        int
	Delivered  int
	Failed     int
	Marked     int64
}

// Sweeper sends at most one "starting soon" message per session.
//
// Every due session is marked as reminded whether or not its message was
// delivered: a notification outage drops reminders instead of repeating them.
type Sweeper struct {
	logger    *slog.Logger
	store     Store
	notifier  Notifier
	clock     Clock
	lookahead time.Duration
}

func NewSweeper(logger *slog.Logger, store Store, notifier Notifier, clock Clock, cfg Config) *Sweeper {
	if clock == nil {
		clock = SystemClock
	}
	if cfg.Lookahead <= 0 {
		cfg.Lookahead = DefaultLookahead
	}

	return &Sweeper{
		logger:    logger.With("module", "reminder"),
		store:     store,
		notifier:  notifier,
		clock:     clock,
		lookahead: cfg.Lookahead,
	}
}

// Sweep notifies the user about today's open sessions starting within the
// lookahead window. Only store failures are returned.
func (s *Sweeper) Sweep(ctx context.Context, user model.ID) (Report, error) {
	var report Report

	if s.notifier == nil || !s.notifier.Enabled() {
		return report, nil
	}

	logger := s.logger.With("userId", user)

	now := s.clock.Now()
	windowEnd := now.Add(s.lookahead)
	today := now.Format(model.DateLayout)

	candidates, err := s.store.FindDueCandidates(ctx, user, today)
	if err != nil {
		return report, fmt.Errorf("reminder: find candidates: %w", err)
	}
	report.Candidates = len(candidates)

	due := make([]model.ID, 0, len(candidates))
	for _, candidate := range candidates {
		scheduledAt, err := candidate.ScheduledAt(now.Location())
		if err != nil {
			report.Malformed++
			logger.Debug("skip malformed session time", "sessionId", candidate.ID, "time", candidate.Time)
			continue
		}

		if !IsDue(now, windowEnd, scheduledAt) {
			continue
		}

		res := s.notifier.Send(ctx, FormatReminder(candidate))
		if res.Delivered() {
			report.Delivered++
		} else {
			report.Failed++
			logger.Info("reminder not delivered", "sessionId", candidate.ID, "status", res.Status.String(), "error", res.Err)
		}

		due = append(due, candidate.ID)
	}
	report.Due = len(due)

	if len(due) == 0 {
		return report, nil
	}

	// The attempt is recorded even if the request was cancelled meanwhile.
	marked, err := s.store.MarkSent(context.WithoutCancel(ctx), due)
	if err != nil {
		return report, fmt.Errorf("reminder: mark sent: %w", err)
	}
	report.Marked = marked

	logger.Info("reminders swept",
		"candidates", report.Candidates,
		"due", report.Due,
		"delivered", report.Delivered,
		"failed", report.Failed,
		"marked", report.Marked,
	)

	return report, nil
}

// IsDue reports whether scheduledAt lies within [now, windowEnd].
func IsDue(now, windowEnd, scheduledAt time.Time) bool {
	return !scheduledAt.Before(now) && !scheduledAt.After(windowEnd)
}

func FormatReminder(c model.ReminderCandidate) string {
	return fmt.Sprintf("Reminder: study session starting soon\n%s at %s (%d min)", c.Title, c.Time, c.DurationMin)
}

// FormatCreated is the announcement sent when a session is scheduled.
func FormatCreated(s model.Session) string {
	return fmt.Sprintf(
		"New study session: %s\nWhen: %s %s\nDuration: %d min\nPriority: %s",
		s.Title, s.Date, s.Time, s.DurationMin, s.Priority,
	)
}
