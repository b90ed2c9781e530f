// Package web serves the server-rendered employee directory page.
package web

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"slices"

	"github.com/UnknownOlympus/athena/internal/card"
	"github.com/UnknownOlympus/athena/internal/directory"
	"github.com/UnknownOlympus/athena/internal/lib/logger/sl"
)

//go:embed templates/directory.html
var templatesFS embed.FS

const (
	paramSearch     = "q"
	paramDepartment = "department"
	paramExpanded   = "expanded"
)

// Directory is the state the page renders.
type Directory interface {
	Load(ctx context.Context) directory.State
	Refresh(ctx context.Context) directory.State
	View(criteria directory.Criteria) directory.View
}

type Handler struct {
	log  *slog.Logger
	dir  Directory
	tmpl *template.Template
}

func NewHandler(log *slog.Logger, dir Directory) *Handler {
	return &Handler{
		log:  log.With(slog.String("division", "web")),
		dir:  dir,
		tmpl: template.Must(template.ParseFS(templatesFS, "templates/directory.html")),
	}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("POST /refresh", h.handleRefresh)
	return mux
}

type cardView struct {
	card.Card
	Style     template.CSS
	ToggleURL string
}

type page struct {
	directory.View
	AllDepartments string
	Loading        bool
	Cards          []cardView
}

func (h *Handler) handleIndex(writer http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()
	criteria := directory.Criteria{
		Search:     query.Get(paramSearch),
		Department: query.Get(paramDepartment),
	}
	expanded := query[paramExpanded]

	view := h.dir.View(criteria)
	if view.Phase == directory.PhaseIdle || view.Phase == directory.PhaseFailed {
		// Opening the page with nothing loaded starts a new load.
		state := h.dir.Load(req.Context())
		h.log.DebugContext(req.Context(), "Directory loaded on visit", slog.String("phase", state.Phase.String()))
		view = h.dir.View(criteria)
	}

	data := page{
		View:           view,
		AllDepartments: directory.AllDepartments,
		Loading:        view.Phase == directory.PhaseIdle || view.Phase == directory.PhaseLoading,
		Cards:          make([]cardView, 0, len(view.Results)),
	}
	for _, employee := range view.Results {
		c := card.New(employee, slices.Contains(expanded, employee.ID))
		colors := c.Colors()
		data.Cards = append(data.Cards, cardView{
			Card:      c,
			Style:     template.CSS("background-color:" + colors.Background + ";color:" + colors.Text), //nolint:gosec // fixed palette
			ToggleURL: toggleURL(criteria, expanded, employee.ID),
		})
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(writer, data); err != nil {
		h.log.ErrorContext(req.Context(), "Failed to render directory page", sl.Err(err))
	}
}

func (h *Handler) handleRefresh(writer http.ResponseWriter, req *http.Request) {
	state := h.dir.Refresh(req.Context())
	h.log.DebugContext(req.Context(), "Directory refreshed", slog.String("phase", state.Phase.String()))

	criteria := directory.Criteria{
		Search:     req.FormValue(paramSearch),
		Department: req.FormValue(paramDepartment),
	}
	http.Redirect(writer, req, pageURL(criteria, nil), http.StatusSeeOther)
}

// toggleURL links to the same page with id added to or removed from the
// expanded set.
func toggleURL(criteria directory.Criteria, expanded []string, id string) string {
	next := make([]string, 0, len(expanded)+1)
	found := false
	for _, e := range expanded {
		if e == id {
			found = true
			continue
		}
		next = append(next, e)
	}
	if !found {
		next = append(next, id)
	}

	return pageURL(criteria, next)
}

func pageURL(criteria directory.Criteria, expanded []string) string {
	values := url.Values{}
	if criteria.Search != "" {
		values.Set(paramSearch, criteria.Search)
	}
	if criteria.Department != "" {
		values.Set(paramDepartment, criteria.Department)
	}
	for _, id := range expanded {
		values.Add(paramExpanded, id)
	}

	if len(values) == 0 {
		return "/"
	}
	return "/?" + values.Encode()
}
