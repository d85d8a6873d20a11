package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/protomem/study-planner/internal/database"
	"github.com/protomem/study-planner/internal/model"
	"github.com/protomem/study-planner/internal/response"
	"github.com/protomem/study-planner/internal/transfer"
)

const (
	_exportBaseName = "study_sessions"
	_maxImportBytes = 5 << 20
)

// Handle Export JSON
// @Summary Export JSON
// @Description Download all sessions as JSON
// @Tags transfer
// @Produce json
// @Security BearerAuth
// @Success 200 {array} transfer.Record
// @Failure 401 {object} any "Authentication required"
// @Failure 500 {object} any "Internal server error"
// @Router /export/json [get]
func (app *application) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	app.export(w, r, "application/json", "json", transfer.EncodeJSON)
}

// Handle Export CSV
// @Summary Export CSV
// @Description Download all sessions as CSV
// @Tags transfer
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} any "Authentication required"
// @Failure 500 {object} any "Internal server error"
// @Router /export/csv [get]
func (app *application) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	app.export(w, r, "text/csv; charset=utf-8", "csv", transfer.EncodeCSV)
}

func (app *application) export(
	w http.ResponseWriter, r *http.Request,
	contentType, ext string, encode func([]transfer.Record) ([]byte, error),
) {
	user := userFromRequest(r)

	sessions, err := database.NewSessionDAO(app.requestLogger(r), app.db).FindAll(r.Context(), user.ID, database.FindSessionFilter{})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	body, err := encode(transfer.FromSessions(sessions))
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.Attachment(w, contentType, _exportBaseName+"."+ext, body); err != nil {
		app.reportServerError(r, err)
	}
}

// Handle Import JSON
// @Summary Import JSON
// @Description Upload sessions exported as JSON; subjects are created by name when missing
// @Tags transfer
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "JSON file"
// @Success 200 {object} main.responseImport
// @Failure 400 {object} any "Bad request input"
// @Failure 401 {object} any "Authentication required"
// @Failure 500 {object} any "Internal server error"
// @Router /import/json [post]
func (app *application) handleImportJSON(w http.ResponseWriter, r *http.Request) {
	app.importFile(w, r, transfer.DecodeJSON)
}

// Handle Import CSV
// @Summary Import CSV
// @Description Upload sessions as CSV with a header line; subjects are created by name when missing
// @Tags transfer
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Success 200 {object} main.responseImport
// @Failure 400 {object} any "Bad request input"
// @Failure 401 {object} any "Authentication required"
// @Failure 500 {object} any "Internal server error"
// @Router /import/csv [post]
func (app *application) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	app.importFile(w, r, transfer.DecodeCSV)
}

func (app *application) importFile(w http.ResponseWriter, r *http.Request, decode func(io.Reader) (transfer.Batch, error)) {
	ctx := r.Context()
	logger := app.requestLogger(r)
	user := userFromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, _maxImportBytes)

	file, _, err := r.FormFile("file")
	if err != nil {
		app.badRequest(w, r, fmt.Errorf("file is required: %w", err))
		return
	}
	defer file.Close()

	batch, err := decode(file)
	if err != nil {
		if errors.Is(err, transfer.ErrEncoding) || errors.Is(err, transfer.ErrFormat) {
			app.badRequest(w, r, err)
			return
		}

		app.serverError(w, r, err)
		return
	}

	subjectDAO := database.NewSubjectDAO(logger, app.db)
	sessionDAO := database.NewSessionDAO(logger, app.db)

	subjects := make(map[string]model.ID)
	for _, name := range transfer.SubjectNames(batch.Records) {
		id, err := subjectDAO.Resolve(ctx, user.ID, name)
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		subjects[name] = id
	}

	imported := 0
	for _, rec := range batch.Records {
		dto := database.InsertSessionDTO{
			User:        user.ID,
			Title:       rec.Title,
			Date:        rec.Date,
			Time:        rec.Time,
			DurationMin: rec.DurationMin,
			Priority:    rec.Priority,
			Notes:       rec.Notes,
			Completed:   rec.Completed,
		}
		if id, ok := subjects[rec.SubjectName()]; ok {
			dto.Subject = &id
		}

		if _, err := sessionDAO.Insert(ctx, dto); err != nil {
			app.serverError(w, r, err)
			return
		}
		imported++
	}

	logger.Info("sessions imported", "userId", user.ID, "imported", imported, "skipped", batch.Skipped)

	if err := response.JSON(w, http.StatusOK, responseImport{Imported: imported, Skipped: batch.Skipped}); err != nil {
		app.serverError(w, r, err)
	}
}

type responseImport struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
