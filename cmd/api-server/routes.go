package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/protomem/study-planner/docs"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (app *application) configureSwagger() {
	docs.SwaggerInfo.Title = "Study Planner"
	docs.SwaggerInfo.Description = "Web API - Study Planner"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmtHTTPAddr("localhost", app.config.httpPort)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}
}

func (app *application) routes() http.Handler {
	mux := chi.NewRouter()

	mux.NotFound(app.notFound)
	mux.MethodNotAllowed(app.methodNotAllowed)

	mux.Use(app.traceID)
	mux.Use(app.logAccess)
	mux.Use(app.recoverPanic)

	mux.Use(app.CORS)

	mux.Get("/api/v1/status", app.handleStatus)
	mux.Get("/api/v1/health/db", app.handleHealthDB)

	mux.Post("/api/v1/auth/register", app.handleRegister)
	mux.Post("/api/v1/auth/login", app.handleLogin)
	mux.Post("/api/v1/auth/logout", app.handleLogout)

	mux.Group(func(mux chi.Router) {
		mux.Use(app.requireUser)

		mux.Get("/api/v1/auth/me", app.handleMe)

		mux.Get("/api/v1/dashboard", app.handleDashboard)

		mux.Get("/api/v1/sessions", app.handleFindSessions)
		mux.Post("/api/v1/sessions", app.handleCreateSession)
		mux.Post("/api/v1/sessions/{sessionId}/toggle", app.handleToggleSession)
		mux.Delete("/api/v1/sessions/{sessionId}", app.handleDeleteSession)

		mux.Get("/api/v1/subjects", app.handleFindSubjects)
		mux.Post("/api/v1/subjects", app.handleCreateSubject)
		mux.Delete("/api/v1/subjects/{subjectId}", app.handleDeleteSubject)

		mux.Get("/api/v1/analytics", app.handleAnalytics)
		mux.Get("/api/v1/calendar", app.handleCalendar)

		mux.Get("/api/v1/export/json", app.handleExportJSON)
		mux.Get("/api/v1/export/csv", app.handleExportCSV)
		mux.Post("/api/v1/import/json", app.handleImportJSON)
		mux.Post("/api/v1/import/csv", app.handleImportCSV)
	})

	mux.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(
			"http://"+fmtHTTPAddr("localhost", app.config.httpPort)+"/swagger/doc.json",
		), // The url pointing to API definition
	))

	app.logger.Debug("routes configured", "routes", chiRoutesToStrings(mux.Routes()))

	return mux
}

func chiRoutesToStrings(routes []chi.Route) []string {
	parsedRoutes := make([]string, 0, len(routes))
	for _, route := range routes {
		parsedRoutes = append(parsedRoutes, route.Pattern)
	}
	return parsedRoutes
}
