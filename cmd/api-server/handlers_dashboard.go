package main

import (
	"net/http"

	"github.com/protomem/study-planner/internal/database"
	"github.com/protomem/study-planner/internal/model"
	"github.com/protomem/study-planner/internal/planner"
	"github.com/protomem/study-planner/internal/response"
)

// Handle Dashboard
// @Summary Dashboard
// @Description Upcoming sessions, subjects, stats and tips. Also sends due reminders.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} main.responseDashboard
// @Failure 401 {object} any "Authentication required"
// @Failure 500 {object} any "Internal server error"
// @Router /dashboard [get]
func (app *application) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.requestLogger(r)
	user := userFromRequest(r)

	// A failed sweep must not hide the dashboard.
	report, err := app.sweeper.Sweep(ctx, user.ID)
	if err != nil {
		logger.Error("reminder sweep failed", "userId", user.ID, "error", err)
	} else if report.Due > 0 {
		logger.Info("reminders sent", "userId", user.ID, "due", report.Due, "delivered", report.Delivered, "marked", report.Marked)
	}

	today := app.clock.Now().Format(model.DateLayout)

	sessions, err := database.NewSessionDAO(logger, app.db).
		FindAll(ctx, user.ID, database.FindSessionFilter{From: today})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	subjects, err := database.NewSubjectDAO(logger, app.db).Find(ctx, user.ID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	stats, err := database.NewStatsDAO(logger, app.db).Totals(ctx, user.ID, today)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	res := responseDashboard{
		Sessions: sessions,
		Subjects: subjects,
		Stats:    stats,
		Tips:     planner.Tips(sessions),
	}

	if err := response.JSON(w, http.StatusOK, res); err != nil {
		app.serverError(w, r, err)
	}
}

type responseDashboard struct {
	Sessions []model.Session `json:"sessions"`
	Subjects []model.Subject `json:"subjects"`
	Stats    model.Stats     `json:"stats"`
	Tips     []string        `json:"tips"`
}
