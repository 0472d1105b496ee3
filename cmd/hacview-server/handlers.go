package main

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"hacview-backend/lib/metrics"
	"hacview-backend/services/studentdata"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed templates
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// every failure kind collapses into this one user-visible message;
// the kind itself only reaches logs and metrics
const coarseFailureMessage = "Invalid credentials or portal error."

type server struct {
	service studentdata.Service
}

func newRouter(service studentdata.Service) http.Handler {
	s := server{service: service}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHome)
	r.Post("/login", s.handleLogin)
	r.Handle("/metrics", metrics.Handler())

	return r
}

func (s server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, "login.html", map[string]string{})
}

type dashboardView struct {
	Username string
	Data     *studentdata.Data
}

func (s server) handleLogin(w http.ResponseWriter, r *http.Request) {
	metrics.LoginAttempts.Inc()
	start := time.Now()

	username := r.FormValue("username")
	password := r.FormValue("password")

	data, err := s.service.Login(r.Context(), username, password)
	if err != nil {
		kind := failureKind(err)
		metrics.LoginFailures.WithLabelValues(kind).Inc()
		slog.ErrorContext(
			r.Context(), "login pipeline failed",
			"kind", kind,
			"err", err,
		)

		w.WriteHeader(http.StatusBadRequest)
		s.render(w, "login.html", map[string]string{"Error": coarseFailureMessage})
		return
	}
	metrics.ScrapeDuration.Observe(time.Since(start).Seconds())

	s.render(w, "dashboard.html", dashboardView{
		Username: username,
		Data:     data,
	})
}

func (s server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := templates.ExecuteTemplate(w, name, data)
	if err != nil {
		slog.Error("failed to render template", "template", name, "err", err)
	}
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, studentdata.ErrAuthentication):
		return "authentication"
	case errors.Is(err, studentdata.ErrExtraction):
		return "extraction"
	default:
		return "transport"
	}
}
