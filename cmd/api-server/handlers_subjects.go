package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/protomem/study-planner/internal/database"
	"github.com/protomem/study-planner/internal/model"
	"github.com/protomem/study-planner/internal/request"
	"github.com/protomem/study-planner/internal/response"
	"github.com/protomem/study-planner/internal/validator"
)

// Handle Find Subjects
// @Summary Find Subjects
// @Description List the user's subjects with their session counts
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} main.responseSubjects
// @Failure 401 {object} any "Authentication required"
// @Failure 500 {object} any "Internal server error"
// @Router /subjects [get]
func (app *application) handleFindSubjects(w http.ResponseWriter, r *http.Request) {
	user := userFromRequest(r)

	subjects, err := database.NewSubjectDAO(app.requestLogger(r), app.db).FindWithCounts(r.Context(), user.ID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responseSubjects{Subjects: subjects}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Create Subject
// @Summary Create Subject
// @Description Add a subject
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body main.requestCreateSubject true "Subject data"
// @Success 201 {object} main.responseSubject
// @Failure 400 {object} any "Bad request input"
// @Failure 401 {object} any "Authentication required"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Failure 500 {object} any "Internal server error"
// @Router /subjects [post]
func (app *application) handleCreateSubject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromRequest(r)

	var input requestCreateSubject
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}
	input.Name = strings.TrimSpace(input.Name)
	input.Color = strings.TrimSpace(input.Color)

	var v validator.Validator
	if validateRequestCreateSubject(&v, input); v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dao := database.NewSubjectDAO(app.requestLogger(r), app.db)

	subjectID, err := dao.Insert(ctx, database.InsertSubjectDTO{
		User:  user.ID,
		Name:  input.Name,
		Color: input.Color,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	subject, err := dao.Get(ctx, user.ID, subjectID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusCreated, responseSubject{Subject: subject}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Delete Subject
// @Summary Delete Subject
// @Description Delete a subject; its sessions are kept without a subject
// @Tags subjects
// @Security BearerAuth
// @Param subjectId path int true "Subject ID"
// @Success 204
// @Failure 400 {object} any "Bad request input"
// @Failure 401 {object} any "Authentication required"
// @Failure 404 {object} any "Subject not found"
// @Failure 500 {object} any "Internal server error"
// @Router /subjects/{subjectId} [delete]
func (app *application) handleDeleteSubject(w http.ResponseWriter, r *http.Request) {
	user := userFromRequest(r)

	subjectID, err := subjectIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	err = database.NewSubjectDAO(app.requestLogger(r), app.db).Delete(r.Context(), user.ID, subjectID)
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

type requestCreateSubject struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type responseSubject struct {
	Subject model.Subject `json:"subject"`
}

type responseSubjects struct {
	Subjects []model.Subject `json:"subjects"`
}
