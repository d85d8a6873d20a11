package planner

import (
	"strings"

	"github.com/protomem/study-planner/internal/model"
)

const (
	lowFocusRate        = 50
	longPlanMinutes     = 240
	tooManyHighPriority = 3
)

const (
	TipStartSmall    = "Add 2-3 sessions for the next few days and pick a priority for each."
	TipShortSessions = "Start with short sessions of 30-45 minutes."
	TipLowFocus      = "Focus is below 50%: try planning less, but more regularly."
	TipTakeBreaks    = "More than 4 hours planned: add breaks between sessions."
	TipTooManyHigh   = "Lots of high priorities: pick 1-2 main tasks."
	TipBalanced      = "Good balance! Consider adding a goal for the week."
)

// Tips suggests adjustments for the given upcoming sessions.
func Tips(sessions []model.Session) []string {
	if len(sessions) == 0 {
		return []string{TipStartSmall, TipShortSessions}
	}

	var stats model.Stats
	high := 0
	for _, s := range sessions {
		stats.Total++
		stats.Minutes += s.DurationMin
		if s.Completed {
			stats.Done++
		}
		if strings.EqualFold(strings.TrimSpace(s.Priority), model.PriorityHigh) {
			high++
		}
	}

	tips := make([]string, 0, 3)
	if stats.FocusRate() < lowFocusRate {
		tips = append(tips, TipLowFocus)
	}
	if stats.Minutes > longPlanMinutes {
		tips = append(tips, TipTakeBreaks)
	}
	if high >= tooManyHighPriority {
		tips = append(tips, TipTooManyHigh)
	}

	if len(tips) == 0 {
		tips = append(tips, TipBalanced)
	}

	return tips
}
