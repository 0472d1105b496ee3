package main

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"hacview-backend/lib/hacapi"
	"hacview-backend/lib/metrics"
	"hacview-backend/services/studentdata"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed templates
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

const coarseFailureMessage = "Invalid credentials or API error."

type server struct {
	client *hacapi.Client
}

func newRouter(client *hacapi.Client) http.Handler {
	s := server{client: client}

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

// fetchAll mirrors the scraping pipeline against the remote API:
// three sequential calls, then the same local assembly and GPA math.
func (s server) fetchAll(ctx context.Context, creds hacapi.Credentials) (*studentdata.Data, error) {
	info, err := s.client.FetchInfo(ctx, creds)
	if err != nil {
		return nil, err
	}
	courses, err := s.client.FetchCurrentClasses(ctx, creds)
	if err != nil {
		return nil, err
	}
	schedule, err := s.client.FetchSchedule(ctx, creds)
	if err != nil {
		return nil, err
	}

	classes, result := studentdata.AssembleClasses(ctx, courses)
	return &studentdata.Data{
		StudentInfo: info,
		Classes:     classes,
		Gpa:         result,
		Schedule:    schedule,
	}, nil
}

type dashboardView struct {
	Username string
	Data     *studentdata.Data
}

func (s server) handleLogin(w http.ResponseWriter, r *http.Request) {
	metrics.LoginAttempts.Inc()

	creds := hacapi.Credentials{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}

	data, err := s.fetchAll(r.Context(), creds)
	if err != nil {
		// the remote API hides the failure kind, so every error
		// is coarse here
		metrics.LoginFailures.WithLabelValues("api").Inc()
		slog.ErrorContext(r.Context(), "api fetch failed", "err", err)

		w.WriteHeader(http.StatusBadRequest)
		s.render(w, "login.html", map[string]string{"Error": coarseFailureMessage})
		return
	}

	s.render(w, "dashboard.html", dashboardView{
		Username: creds.Username,
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
