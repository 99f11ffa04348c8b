// Package dashboard serves the count dashboard over HTTP: the HTML page, its JSON
// counterpart, exports and operational endpoints.
package dashboard

import (
	"bytes"
	"fmt"
	"net/http"

	"fjacquet/count-dashboard/internal/chart"
	"fjacquet/count-dashboard/internal/export"
	"fjacquet/count-dashboard/internal/loader"
	"fjacquet/count-dashboard/internal/logging"
	"fjacquet/count-dashboard/internal/metrics"
	"fjacquet/count-dashboard/internal/report"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Source runs one load cycle against the configured files.
type Source interface {
	Load() *loader.Result
	ReferencePath() string
}

// Handler serves the dashboard. Every request reloads the data from disk.
type Handler struct {
	source    Source
	generator *report.Generator
	exporter  *export.Exporter
	page      *Page
	metrics   *metrics.Metrics
	logger    logging.Logger
	title     string
}

// NewHandler creates a Handler. m may be nil, in which case /metrics is not served.
func NewHandler(source Source, generator *report.Generator, exporter *export.Exporter,
	page *Page, m *metrics.Metrics, logger logging.Logger, title string) *Handler {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Handler{
		source:    source,
		generator: generator,
		exporter:  exporter,
		page:      page,
		metrics:   m,
		logger:    logger,
		title:     title,
	}
}

// Routes returns the router with every dashboard route mounted.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(h.logger, h.metrics))
	r.Use(middleware.Recoverer)

	r.Get("/", h.handlePage)
	r.Get("/healthz", h.handleHealth)
	r.Get("/export.csv", h.handleExport(export.FormatCSV, "contagem.csv"))
	r.Get("/export.xlsx", h.handleExport(export.FormatXLSX, "contagem.xlsx"))
	r.Get("/export.json", h.handleExport(export.FormatJSON, "contagem.json"))
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/report", h.handleReport)
		r.Get("/products", h.handleProducts)
	})
	return r
}

func filterFromRequest(r *http.Request) report.Filter {
	q := r.URL.Query()
	return report.NewFilter(q["month"], q["product"])
}

func (h *Handler) rendered(surface string) {
	if h.metrics != nil {
		h.metrics.Rendered(surface)
	}
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	res := h.source.Load()

	var rep *report.Report
	if res.Usable() {
		rep = h.generator.Generate(res.Monthly, filterFromRequest(r))
	}
	view, err := NewView(h.title, res, h.source.ReferencePath(), rep)
	if err != nil {
		h.logger.WithError(err).Error("Failed to build dashboard view")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := h.page.Render(&buf, view); err != nil {
		h.logger.WithError(err).Error("Failed to render dashboard")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if view.Fatal != "" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_, _ = w.Write(buf.Bytes())
	h.rendered("html")
}

// reportResponse is the JSON body of /api/report.
type reportResponse struct {
	Report *report.Report `json:"report,omitempty"`
	Charts []chart.Named  `json:"charts,omitempty"`
	Errors []string       `json:"errors"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	res := h.source.Load()
	messages := ErrorMessages(res, h.source.ReferencePath())

	if !res.Usable() {
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, reportResponse{Errors: messages, Error: FatalMessage})
		return
	}

	rep := h.generator.Generate(res.Monthly, filterFromRequest(r))
	render.JSON(w, r, reportResponse{
		Report: rep,
		Charts: chart.Figures(rep),
		Errors: messages,
	})
	h.rendered("json")
}

type productsResponse struct {
	Columns  []string            `json:"columns"`
	Count    int                 `json:"count"`
	Products []map[string]string `json:"products"`
}

func (h *Handler) handleProducts(w http.ResponseWriter, r *http.Request) {
	res := h.source.Load()
	if res.Products == nil {
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, reportResponse{
			Errors: ErrorMessages(res, h.source.ReferencePath()),
			Error:  FatalMessage,
		})
		return
	}
	render.JSON(w, r, productsResponse{
		Columns:  res.Products.Columns,
		Count:    res.Products.Len(),
		Products: res.Products.Records(),
	})
}

func (h *Handler) handleExport(format, filename string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := h.source.Load()
		if !res.Usable() {
			http.Error(w, FatalMessage, http.StatusServiceUnavailable)
			return
		}

		rep := h.generator.Generate(res.Monthly, filterFromRequest(r))
		var buf bytes.Buffer
		if err := h.exporter.Write(&buf, format, rep); err != nil {
			h.logger.WithError(err).Error("Failed to export report", logging.F(logging.FieldKind, format))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", export.ContentType(format))
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		_, _ = w.Write(buf.Bytes())
		h.rendered(format)
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}
