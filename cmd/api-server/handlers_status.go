package main

import (
	"net/http"

	"github.com/protomem/study-planner/internal/response"
)

// Handle Status
// @Summary Server Status
// @Description Check if the server is up and running
// @Tags api
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /status [get]
func (app *application) handleStatus(w http.ResponseWriter, r *http.Request) {
	if err := response.JSON(w, http.StatusOK, response.JSONObject{"status": "OK"}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Health DB
// @Summary Database Health
// @Description Report the configured database backend and ping it
// @Tags api
// @Produce json
// @Success 200 {object} main.responseHealthDB
// @Failure 503 {object} any "Database unreachable"
// @Router /health/db [get]
func (app *application) handleHealthDB(w http.ResponseWriter, r *http.Request) {
	res := responseHealthDB{
		DB:             app.db.Driver,
		Host:           app.db.Host,
		HasDatabaseURL: app.config.db.dsn != "",
	}

	status := http.StatusOK
	if err := app.db.PingContext(r.Context()); err != nil {
		app.requestLogger(r).Warn("database ping failed", "error", err)

		status = http.StatusServiceUnavailable
		res.Error = "database unreachable"
	}

	if err := response.JSON(w, status, res); err != nil {
		app.serverError(w, r, err)
	}
}

type responseHealthDB struct {
	DB             string `json:"db"`
	Host           string `json:"host"`
	HasDatabaseURL bool   `json:"hasDatabaseUrl"`
	Error          string `json:"error,omitempty"`
}
