package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/precise-api/internal/api/middleware"
	"github.com/phrazzld/precise-api/internal/api/shared"
)

const (
	loginPath   = "/auth/login"
	healthPath  = "/health"
	metricsPath = "/metrics"

	msgURLNotFound   = "Url Not found"
	healthTimeout    = 2 * time.Second
	msgHealthy       = "OK"
	msgDBUnavailable = "Database unavailable"
)

type masterHandler interface {
	List(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
	CodeExists(http.ResponseWriter, *http.Request)
	NameExists(http.ResponseWriter, *http.Request)
}

// setupRouter builds the pipeline: the request log wraps everything, including
// gate rejections and unmatched routes; the gate wraps every route.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(app.sink))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Trace(app.logger))
	r.Use(middleware.Metrics(app.metrics))
	r.Use(app.gate.Authenticate)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithErrorEnvelope(w, r, http.StatusNotFound, msgURLNotFound)
	})

	if base := app.config.Server.BasePath; base != "" {
		r.Route(base, app.registerRoutes)
	} else {
		app.registerRoutes(r)
	}

	return r
}

func (app *application) registerRoutes(r chi.Router) {
	r.Post(loginPath, app.authHandler.Login)
	r.Get(healthPath, app.health)
	r.Method(http.MethodGet, metricsPath, app.metrics.Handler())

	mountMaster(r, "/master/countries", app.countryHandler)
	mountMaster(r, "/master/states", app.stateHandler)
	mountMaster(r, "/master/cities", app.cityHandler)
}

func mountMaster(r chi.Router, prefix string, h masterHandler) {
	r.Route(prefix, func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/exists/code", h.CodeExists)
		r.Get("/exists/name", h.NameExists)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

func (app *application) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := app.db.PingContext(ctx); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, msgDBUnavailable, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, msgHealthy, nil)
}
