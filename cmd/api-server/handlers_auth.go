package main

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/protomem/study-planner/internal/auth"
	"github.com/protomem/study-planner/internal/database"
	"github.com/protomem/study-planner/internal/model"
	"github.com/protomem/study-planner/internal/request"
	"github.com/protomem/study-planner/internal/response"
	"github.com/protomem/study-planner/internal/validator"
)

// Handle Register
// @Summary Register
// @Description Create an account and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body main.requestCredentials true "Email and password"
// @Success 201 {object} main.responseAuth
// @Failure 400 {object} any "Bad request input"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Failure 409 {object} any "User already exists"
// @Failure 500 {object} any "Internal server error"
// @Router /auth/register [post]
func (app *application) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.requestLogger(r)

	var input requestCredentials
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}
	input.normalize()

	var v validator.Validator
	if validateRequestCredentials(&v, input); v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	dao := database.NewUserDAO(logger, app.db)

	userID, err := dao.Insert(ctx, database.InsertUserDTO{
		Email:        input.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, model.ErrExists) {
			app.errorMessage(w, r, http.StatusConflict, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	user, err := dao.Get(ctx, userID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.respondWithToken(w, r, http.StatusCreated, user)
}

// Handle Login
// @Summary Login
// @Description Exchange credentials for an access token; also sets the planner_token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param input body main.requestCredentials true "Email and password"
// @Success 200 {object} main.responseAuth
// @Failure 400 {object} any "Bad request input"
// @Failure 401 {object} any "Invalid credentials"
// @Failure 500 {object} any "Internal server error"
// @Router /auth/login [post]
func (app *application) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.requestLogger(r)

	var input requestCredentials
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}
	input.normalize()

	if input.Email == "" || input.Password == "" {
		app.errorMessage(w, r, http.StatusUnauthorized, model.ErrInvalidAuth.Error(), nil)
		return
	}

	user, err := database.NewUserDAO(logger, app.db).GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusUnauthorized, model.ErrInvalidAuth.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	ok, err := auth.CheckPassword(user.PasswordHash, input.Password)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if !ok {
		app.errorMessage(w, r, http.StatusUnauthorized, model.ErrInvalidAuth.Error(), nil)
		return
	}

	app.respondWithToken(w, r, http.StatusOK, user)
}

// Handle Logout
// @Summary Logout
// @Description Clear the planner_token cookie
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (app *application) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     _tokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

// Handle Me
// @Summary Current User
// @Description Return the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} main.responseMe
// @Failure 401 {object} any "Authentication required"
// @Router /auth/me [get]
func (app *application) handleMe(w http.ResponseWriter, r *http.Request) {
	if err := response.JSON(w, http.StatusOK, responseMe{User: userFromRequest(r)}); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) respondWithToken(w http.ResponseWriter, r *http.Request, status int, user model.User) {
	token, err := app.tokens.Sign(user.ID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     _tokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(app.tokens.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if err := response.JSON(w, status, responseAuth{User: user, Token: token}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *requestCredentials) normalize() {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
}

type responseAuth struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

type responseMe struct {
	User model.User `json:"user"`
}
