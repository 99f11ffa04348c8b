// Package chart builds plotly.js figure documents for the dashboard charts.
//
// Figures are plain data: the page hands them to Plotly.newPlot, and the JSON API
// returns them unchanged.
package chart

import (
	"encoding/json"
	"math"
	"strconv"
)

// Palette is the default qualitative plotly color sequence. Colors are assigned to
// traces in order and cycle.
var Palette = []string{
	"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
	"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// Value is a numeric plot value. NaN and ±Inf are encoded as null, which plotly
// renders as a gap.
type Value float64

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

// Figure is a plotly figure: traces plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a single bar trace.
type Trace struct {
	Type          string   `json:"type"`
	Name          string   `json:"name,omitempty"`
	X             []string `json:"x"`
	Y             []Value  `json:"y"`
	Orientation   string   `json:"orientation"`
	Marker        Marker   `json:"marker"`
	LegendGroup   string   `json:"legendgroup,omitempty"`
	ShowLegend    bool     `json:"showlegend"`
	HoverTemplate string   `json:"hovertemplate"`
}

// Marker sets the trace color.
type Marker struct {
	Color string `json:"color"`
}

// Layout is the subset of the plotly layout the dashboard uses.
type Layout struct {
	Title   Text   `json:"title"`
	BarMode string `json:"barmode"`
	XAxis   Axis   `json:"xaxis"`
	YAxis   Axis   `json:"yaxis"`
	Legend  Legend `json:"legend"`
}

// Text wraps a title string.
type Text struct {
	Text string `json:"text"`
}

// Axis configures one axis. CategoryArray pins the order of a category axis.
type Axis struct {
	Title         Text     `json:"title"`
	CategoryOrder string   `json:"categoryorder,omitempty"`
	CategoryArray []string `json:"categoryarray,omitempty"`
}

// Legend configures the legend title.
type Legend struct {
	Title Text `json:"title"`
}

// Point is one bar. Color groups bars into traces; it is ignored when the chart has no
// color dimension.
type Point struct {
	X     string
	Y     float64
	Color string
}

// BarSpec describes a bar chart.
type BarSpec struct {
	Title  string
	XLabel string
	YLabel string
	// ColorLabel names the color dimension. Empty means a single uncolored trace.
	ColorLabel string
	// Categories pins the x axis order. Empty leaves the order of appearance.
	Categories []string
}

// Bar builds a bar chart with one trace per distinct Color, in order of first
// appearance. Stacked traces use the relative bar mode, so negative bars stack below
// the axis.
func Bar(spec BarSpec, points []Point) Figure {
	fig := Figure{
		Data: []Trace{},
		Layout: Layout{
			Title:   Text{Text: spec.Title},
			BarMode: "relative",
			XAxis:   Axis{Title: Text{Text: spec.XLabel}},
			YAxis:   Axis{Title: Text{Text: spec.YLabel}},
			Legend:  Legend{Title: Text{Text: spec.ColorLabel}},
		},
	}
	if len(spec.Categories) > 0 {
		fig.Layout.XAxis.CategoryOrder = "array"
		fig.Layout.XAxis.CategoryArray = spec.Categories
	}

	if spec.ColorLabel == "" {
		t := newTrace("", Palette[0], hoverTemplate(spec, false))
		for _, p := range points {
			t.X = append(t.X, p.X)
			t.Y = append(t.Y, Value(p.Y))
		}
		fig.Data = append(fig.Data, t)
		return fig
	}

	index := make(map[string]int)
	for _, p := range points {
		i, ok := index[p.Color]
		if !ok {
			i = len(fig.Data)
			index[p.Color] = i
			t := newTrace(p.Color, Palette[i%len(Palette)], hoverTemplate(spec, true))
			t.LegendGroup = p.Color
			t.ShowLegend = true
			fig.Data = append(fig.Data, t)
		}
		fig.Data[i].X = append(fig.Data[i].X, p.X)
		fig.Data[i].Y = append(fig.Data[i].Y, Value(p.Y))
	}
	return fig
}

func newTrace(name, color, hover string) Trace {
	return Trace{
		Type:          "bar",
		Name:          name,
		X:             []string{},
		Y:             []Value{},
		Orientation:   "v",
		Marker:        Marker{Color: color},
		HoverTemplate: hover,
	}
}

func hoverTemplate(spec BarSpec, colored bool) string {
	tpl := spec.XLabel + "=%{x}<br>" + spec.YLabel + "=%{y}"
	if colored {
		tpl = spec.ColorLabel + "=%{fullData.name}<br>" + tpl
	}
	return tpl + "<extra></extra>"
}

// JSON encodes the figure.
func (f Figure) JSON() ([]byte, error) {
	return json.Marshal(f)
}
