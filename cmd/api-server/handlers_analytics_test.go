package main

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protomem/study-planner/internal/database"
	"github.com/protomem/study-planner/internal/model"
)

func seedAnalytics(t *testing.T, app *testApp, token string) {
	t.Helper()

	math := createSubject(t, app, token, map[string]string{"name": "Math", "color": "#336699"})

	done := app.createSession(t, token, map[string]any{"title": "A", "subjectId": math.ID, "date": "2026-10-18", "time": "10:00", "durationMin": 45})
	app.createSession(t, token, map[string]any{"title": "B", "subjectId": math.ID, "date": "2026-10-19", "time": "10:00", "durationMin": 30})
	app.createSession(t, token, map[string]any{"title": "C", "date": "2026-10-20", "time": "10:00", "durationMin": 20})
	app.createSession(t, token, map[string]any{"title": "D", "date": "2026-10-15", "time": "10:00", "durationMin": 60})
	app.createSession(t, token, map[string]any{"title": "E", "date": "2026-09-25", "time": "10:00", "durationMin": 15})
	app.createSession(t, token, map[string]any{"title": "F", "date": "2026-09-01", "time": "10:00", "durationMin": 10})

	rec := app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/sessions/%d/toggle", done.Session.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleAnalytics(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "alice@example.com")
	seedAnalytics(t, app, token)

	rec := app.do(t, http.MethodGet, "/api/v1/analytics", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res responseAnalytics
	decodeBody(t, rec, &res)

	assert.Equal(t, []model.SubjectBreakdown{
		{Name: "Math", Color: "#336699", CountSessions: 2, Minutes: 75},
		{Name: model.NoSubjectName, Color: model.DefaultColor, CountSessions: 1, Minutes: 20},
	}, res.BySubject)

	assert.Equal(t, model.Stats{Total: 3, Done: 1, Minutes: 95}, res.Totals)
	assert.Equal(t, 33, res.FocusRate)

	assert.Equal(t, []model.PeriodBucket{
		{Label: "2026-10-20", CountSessions: 1, Minutes: 20},
		{Label: "2026-10-19", CountSessions: 1, Minutes: 30},
		{Label: "2026-10-18", CountSessions: 1, Minutes: 45},
		{Label: "2026-10-15", CountSessions: 1, Minutes: 60},
	}, res.Daily)

	assert.Equal(t, []model.PeriodBucket{
		{Label: "2026-10", CountSessions: 4, Minutes: 155},
		{Label: "2026-09", CountSessions: 1, Minutes: 15},
	}, res.Monthly)
}

func TestHandleAnalytics_Empty(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "alice@example.com")

	rec := app.do(t, http.MethodGet, "/api/v1/analytics", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res responseAnalytics
	decodeBody(t, rec, &res)
	assert.Empty(t, res.BySubject)
	assert.Zero(t, res.FocusRate)
	assert.Empty(t, res.Daily)
	assert.Empty(t, res.Monthly)
}

func TestHandleCalendar(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "alice@example.com")
	seedAnalytics(t, app, token)

	tests := []struct {
		name      string
		path      string
		selected  string
		firstDay  string
		lastDay   string
		withCount map[string]int
	}{
		{
			name:      "explicit date",
			path:      queryPath("/api/v1/calendar", map[string]string{"date": "2026-10-20"}),
			selected:  "2026-10-20",
			firstDay:  "2026-10-17",
			lastDay:   "2026-10-23",
			withCount: map[string]int{"2026-10-18": 1, "2026-10-19": 1, "2026-10-20": 1},
		},
		{
			name:      "invalid date falls back to today",
			path:      queryPath("/api/v1/calendar", map[string]string{"date": "20/10/2026"}),
			selected:  "2026-10-18",
			firstDay:  "2026-10-15",
			lastDay:   "2026-10-21",
			withCount: map[string]int{"2026-10-15": 1, "2026-10-18": 1, "2026-10-19": 1, "2026-10-20": 1},
		},
		{
			name:      "missing date",
			path:      "/api/v1/calendar",
			selected:  "2026-10-18",
			firstDay:  "2026-10-15",
			lastDay:   "2026-10-21",
			withCount: map[string]int{"2026-10-15": 1, "2026-10-18": 1, "2026-10-19": 1, "2026-10-20": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, http.MethodGet, tt.path, token, nil)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var res responseCalendar
			decodeBody(t, rec, &res)

			assert.Equal(t, tt.selected, res.Selected)
			require.Len(t, res.Days, 7)
			assert.Equal(t, tt.firstDay, res.Days[0].Date)
			assert.Equal(t, tt.lastDay, res.Days[6].Date)

			for _, day := range res.Days {
				assert.Len(t, day.Sessions, tt.withCount[day.Date], day.Date)
				for _, s := range day.Sessions {
					assert.Equal(t, day.Date, s.Date)
				}
			}
		})
	}
}

func TestHandleCalendar_BusyWeek(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "alice@example.com")

	bulkSessions(t, app, token, 120, database.InsertSessionDTO{
		Title: "Drill", Date: "2026-10-19", Time: "10:00", DurationMin: 15, Priority: model.PriorityMedium,
	})
	bulkSessions(t, app, token, 5, database.InsertSessionDTO{
		Title: "Review", Date: "2026-10-21", Time: "18:00", DurationMin: 30, Priority: model.PriorityMedium,
	})

	rec := app.do(t, http.MethodGet, "/api/v1/calendar", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res responseCalendar
	decodeBody(t, rec, &res)

	require.Len(t, res.Days, 7)
	assert.Equal(t, "2026-10-19", res.Days[4].Date)
	assert.Len(t, res.Days[4].Sessions, 120)
	assert.Equal(t, "2026-10-21", res.Days[6].Date)
	assert.Len(t, res.Days[6].Sessions, 5)
}

func TestGroupByDay(t *testing.T) {
	start := time.Date(2026, time.December, 30, 0, 0, 0, 0, time.UTC)
	sessions := []model.Session{
		{ID: 1, Date: "2027-01-01"},
		{ID: 2, Date: "2026-12-30"},
		{ID: 3, Date: "2027-01-01"},
		{ID: 4, Date: "2027-02-01"},
	}

	days := groupByDay(start, 3, sessions)

	require.Len(t, days, 3)
	assert.Equal(t, "2026-12-30", days[0].Date)
	assert.Equal(t, "2026-12-31", days[1].Date)
	assert.Equal(t, "2027-01-01", days[2].Date)
	assert.Len(t, days[0].Sessions, 1)
	assert.Empty(t, days[1].Sessions)
	assert.Len(t, days[2].Sessions, 2)
}
