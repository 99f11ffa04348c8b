package dashboard

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"fjacquet/count-dashboard/internal/chart"
	"fjacquet/count-dashboard/internal/currencyutils"
	"fjacquet/count-dashboard/internal/loader"
	"fjacquet/count-dashboard/internal/models"
	"fjacquet/count-dashboard/internal/report"
)

//go:embed templates/*.html
var templateFS embed.FS

// PlotlyScriptURL is the plotly.js bundle loaded when no other is configured.
const PlotlyScriptURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// View is the data the dashboard page is rendered from.
type View struct {
	Title  string
	Errors []string
	// Fatal is set when no report could be built.
	Fatal  string
	Report *report.Report
	Charts map[string]ChartView
	// Static renders the page for a file: filter controls are shown read-only.
	Static bool
	// PlotlyURL overrides the page's plotly.js bundle.
	PlotlyURL string
}

// ChartView is one chart ready for embedding.
type ChartView struct {
	ID   string
	JSON template.JS
}

// NewView assembles the view for a load result and, when the data is usable, its
// report. rep is ignored when res is not usable.
func NewView(title string, res *loader.Result, referencePath string, rep *report.Report) (View, error) {
	v := View{
		Title:  title,
		Errors: ErrorMessages(res, referencePath),
	}
	if !res.Usable() || rep == nil {
		v.Fatal = FatalMessage
		return v, nil
	}

	v.Report = rep
	v.Charts = make(map[string]ChartView)
	for _, named := range chart.Figures(rep) {
		data, err := named.Figure.JSON()
		if err != nil {
			return View{}, fmt.Errorf("failed to encode chart %s: %w", named.ID, err)
		}
		v.Charts[named.ID] = ChartView{ID: named.ID, JSON: template.JS(data)} // #nosec G203 -- json.Marshal escapes HTML
	}
	return v, nil
}

// Page renders the dashboard HTML.
type Page struct {
	tmpl      *template.Template
	plotlyURL string
}

// NewPage parses the embedded dashboard template. Pages load plotly.js from
// plotlyURL, or from PlotlyScriptURL when it is empty.
func NewPage(plotlyURL string) (*Page, error) {
	if plotlyURL == "" {
		plotlyURL = PlotlyScriptURL
	}
	tmpl, err := template.New("dashboard.html").Funcs(template.FuncMap{
		"number": currencyutils.FormatNumber,
		"month":  func(m models.Month) string { return m.String() },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}
	return &Page{tmpl: tmpl, plotlyURL: plotlyURL}, nil
}

// Render writes the page for v to w.
func (p *Page) Render(w io.Writer, v View) error {
	if v.PlotlyURL == "" {
		v.PlotlyURL = p.plotlyURL
	}
	if err := p.tmpl.ExecuteTemplate(w, "dashboard.html", v); err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}
	return nil
}
