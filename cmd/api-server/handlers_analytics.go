package main

import (
	"net/http"
	"time"

	"github.com/protomem/study-planner/internal/database"
	"github.com/protomem/study-planner/internal/model"
	"github.com/protomem/study-planner/internal/response"
)

const (
	_dailyWindowDays   = 7
	_monthlyWindowDays = 28
	_monthlyLimit      = 4
	_calendarRadius    = 3
)

// Handle Analytics
// @Summary Analytics
// @Description Breakdown by subject, totals, focus rate, daily and monthly buckets
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} main.responseAnalytics
// @Failure 401 {object} any "Authentication required"
// @Failure 500 {object} any "Internal server error"
// @Router /analytics [get]
func (app *application) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromRequest(r)

	now := app.clock.Now()
	today := now.Format(model.DateLayout)
	dailyFrom := now.AddDate(0, 0, -(_dailyWindowDays - 1)).Format(model.DateLayout)
	monthlyFrom := now.AddDate(0, 0, -(_monthlyWindowDays - 1)).Format(model.DateLayout)

	dao := database.NewStatsDAO(app.requestLogger(r), app.db)

	bySubject, err := dao.BySubject(ctx, user.ID, today)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	totals, err := dao.Totals(ctx, user.ID, today)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	daily, err := dao.Daily(ctx, user.ID, dailyFrom)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	monthly, err := dao.Monthly(ctx, user.ID, monthlyFrom, _monthlyLimit)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	res := responseAnalytics{
		BySubject: bySubject,
		Totals:    totals,
		FocusRate: totals.FocusRate(),
		Daily:     daily,
		Monthly:   monthly,
	}

	if err := response.JSON(w, http.StatusOK, res); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Calendar
// @Summary Calendar
// @Description Seven days centred on the given date, each with its sessions
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param date query string false "Centre date, YYYY-MM-DD; defaults to today"
// @Success 200 {object} main.responseCalendar
// @Failure 401 {object} any "Authentication required"
// @Failure 500 {object} any "Internal server error"
// @Router /calendar [get]
func (app *application) handleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromRequest(r)

	now := app.clock.Now()
	selected := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date, ok, err := dateQueryParams(r, "date"); ok && err == nil {
		selected = date
	}

	start := selected.AddDate(0, 0, -_calendarRadius)
	end := selected.AddDate(0, 0, _calendarRadius)

	sessions, err := database.NewSessionDAO(app.requestLogger(r), app.db).FindAll(ctx, user.ID,
		database.FindSessionFilter{
			From: start.Format(model.DateLayout),
			To:   end.Format(model.DateLayout),
		},
	)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	res := responseCalendar{
		Selected: selected.Format(model.DateLayout),
		Days:     groupByDay(start, 2*_calendarRadius+1, sessions),
	}

	if err := response.JSON(w, http.StatusOK, res); err != nil {
		app.serverError(w, r, err)
	}
}

// groupByDay returns n consecutive days from start, every one present even when empty.
func groupByDay(start time.Time, n int, sessions []model.Session) []calendarDay {
	days := make([]calendarDay, 0, n)
	index := make(map[string]int, n)

	for i := 0; i < n; i++ {
		date := start.AddDate(0, 0, i).Format(model.DateLayout)
		index[date] = i
		days = append(days, calendarDay{Date: date, Sessions: []model.Session{}})
	}

	for _, s := range sessions {
		if i, ok := index[s.Date]; ok {
			days[i].Sessions = append(days[i].Sessions, s)
		}
	}

	return days
}

type responseAnalytics struct {
	BySubject []model.SubjectBreakdown `json:"bySubject"`
	Totals    model.Stats              `json:"totals"`
	FocusRate int                      `json:"focusRate"`
	Daily     []model.PeriodBucket     `json:"daily"`
	Monthly   []model.PeriodBucket     `json:"monthly"`
}

type calendarDay struct {
	Date     string          `json:"date"`
	Sessions []model.Session `json:"sessions"`
}

type responseCalendar struct {
	Selected string        `json:"selected"`
	Days     []calendarDay `json:"days"`
}
