package main

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/protomem/study-planner/internal/database"
	"github.com/protomem/study-planner/internal/model"
	"github.com/protomem/study-planner/internal/reminder"
	"github.com/protomem/study-planner/internal/request"
	"github.com/protomem/study-planner/internal/response"
	"github.com/protomem/study-planner/internal/validator"
)

// Handle Find Sessions
// @Summary Find Sessions
// @Description List the user's sessions ordered by date and time
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param from query string false "First date, YYYY-MM-DD"
// @Param to query string false "Last date, YYYY-MM-DD"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} main.responseSessions
// @Failure 401 {object} any "Authentication required"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Failure 500 {object} any "Internal server error"
// @Router /sessions [get]
func (app *application) handleFindSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromRequest(r)

	var (
		v      validator.Validator
		filter database.FindSessionFilter
	)

	if from := optionalStringQueryParams(r, "from"); from != nil {
		v.CheckField(validator.IsTime(*from, model.DateLayout), "from", "must be in YYYY-MM-DD format")
		filter.From = *from
	}
	if to := optionalStringQueryParams(r, "to"); to != nil {
		v.CheckField(validator.IsTime(*to, model.DateLayout), "to", "must be in YYYY-MM-DD format")
		filter.To = *to
	}

	limit := defaultIntQueryParams(r, "limit", 100)
	offset := defaultIntQueryParams(r, "offset", 0)
	v.CheckField(limit > 0, "limit", "must be positive")
	v.CheckField(offset >= 0, "offset", "must not be negative")

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	sessions, err := database.NewSessionDAO(app.requestLogger(r), app.db).
		Find(ctx, user.ID, filter, database.FindOptions{Limit: uint64(limit), Offset: uint64(offset)})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responseSessions{Sessions: sessions}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Create Session
// @Summary Create Session
// @Description Schedule a study session and send a best-effort notification about it
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body main.requestCreateSession true "Session data"
// @Success 201 {object} main.responseSession
// @Failure 400 {object} any "Bad request input"
// @Failure 401 {object} any "Authentication required"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Failure 500 {object} any "Internal server error"
// @Router /sessions [post]
func (app *application) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.requestLogger(r)
	user := userFromRequest(r)

	var input requestCreateSession
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}
	input.normalize()

	var v validator.Validator
	if validateRequestCreateSession(&v, input); v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	if input.SubjectID != nil {
		_, err := database.NewSubjectDAO(logger, app.db).Get(ctx, user.ID, *input.SubjectID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				v.AddFieldError("subjectId", "must reference one of your subjects")
				app.failedValidation(w, r, v)
				return
			}

			app.serverError(w, r, err)
			return
		}
	}

	dao := database.NewSessionDAO(logger, app.db)

	sessionID, err := dao.Insert(ctx, database.InsertSessionDTO{
		User:        user.ID,
		Subject:     input.SubjectID,
		Title:       input.Title,
		Date:        input.Date,
		Time:        input.Time,
		DurationMin: max(*input.DurationMin, model.MinDurationMin),
		Priority:    input.Priority,
		Notes:       input.Notes,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	session, err := dao.Get(ctx, user.ID, sessionID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	notifyCtx := context.WithoutCancel(ctx)
	app.background(func() {
		// Best effort: the result is logged by the notifier.
		_ = app.notifier.Send(notifyCtx, reminder.FormatCreated(session))
	})

	if err := response.JSON(w, http.StatusCreated, responseSession{Session: session}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Toggle Session
// @Summary Toggle Session
// @Description Flip the completed flag of a session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param sessionId path int true "Session ID"
// @Success 200 {object} main.responseSession
// @Failure 400 {object} any "Bad request input"
// @Failure 401 {object} any "Authentication required"
// @Failure 404 {object} any "Session not found"
// @Failure 500 {object} any "Internal server error"
// @Router /sessions/{sessionId}/toggle [post]
func (app *application) handleToggleSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromRequest(r)

	sessionID, err := sessionIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewSessionDAO(app.requestLogger(r), app.db)

	if err := dao.ToggleCompleted(ctx, user.ID, sessionID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	session, err := dao.Get(ctx, user.ID, sessionID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responseSession{Session: session}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Delete Session
// @Summary Delete Session
// @Description Delete a session
// @Tags sessions
// @Security BearerAuth
// @Param sessionId path int true "Session ID"
// @Success 204
// @Failure 400 {object} any "Bad request input"
// @Failure 401 {object} any "Authentication required"
// @Failure 404 {object} any "Session not found"
// @Failure 500 {object} any "Internal server error"
// @Router /sessions/{sessionId} [delete]
func (app *application) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	user := userFromRequest(r)

	sessionID, err := sessionIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	err = database.NewSessionDAO(app.requestLogger(r), app.db).Delete(r.Context(), user.ID, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type requestCreateSession struct {
	Title       string    `json:"title"`
	SubjectID   *model.ID `json:"subjectId"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	DurationMin *int      `json:"durationMin"`
	Priority    string    `json:"priority"`
	Notes       string    `json:"notes"`
}

func (req *requestCreateSession) normalize() {
	req.Title = strings.TrimSpace(req.Title)
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	req.Priority = strings.TrimSpace(req.Priority)
	req.Notes = strings.TrimSpace(req.Notes)

	if req.Priority == "" {
		req.Priority = model.DefaultPriority
	}
}

type responseSession struct {
	Session model.Session `json:"session"`
}

type responseSessions struct {
	Sessions []model.Session `json:"sessions"`
}
