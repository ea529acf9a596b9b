// Package chartrender turns a chart definition and its dataset into a
// renderable chart.
package chartrender

import (
	"strings"

	"github.com/dalemusser/ticketboard/internal/domain/charts"
	gocharts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"
)

// Renderer builds a chart bound to cfg.Target from values.
type Renderer interface {
	Render(cfg charts.Config, values []float64) (Chart, error)
}

// Chart is a rendered dashboard chart.
type Chart struct {
	Name    string
	Target  string
	Kind    charts.Kind
	Snippet render.ChartSnippet
	Config  ChartJSConfig
}

// ChartJSConfig mirrors the Chart.js constructor argument
// { type, data: { labels, datasets: [{ data, backgroundColor }] }, options: { title } }.
type ChartJSConfig struct {
	Type    string         `json:"type"`
	Data    ChartJSData    `json:"data"`
	Options ChartJSOptions `json:"options"`
}

type ChartJSData struct {
	Labels   []string         `json:"labels"`
	Datasets []ChartJSDataset `json:"datasets"`
}

type ChartJSDataset struct {
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor"`
}

type ChartJSOptions struct {
	Title ChartJSTitle `json:"title"`
}

type ChartJSTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

// ChartJS builds the Chart.js-shaped config for cfg. The dataset is values
// as given.
func ChartJS(cfg charts.Config, values []float64) ChartJSConfig {
	return ChartJSConfig{
		Type: string(cfg.Kind),
		Data: ChartJSData{
			Labels: cfg.Labels,
			Datasets: []ChartJSDataset{{
				Data:            values,
				BackgroundColor: cfg.Colors,
			}},
		},
		Options: ChartJSOptions{
			Title: ChartJSTitle{Display: true, Text: cfg.Title},
		},
	}
}

// Default sizes for the ECharts container.
const (
	DefaultWidth  = "480px"
	DefaultHeight = "320px"
)

// ECharts renders pie and doughnut charts with go-echarts.
type ECharts struct {
	AssetsHost string
	Width      string
	Height     string
}

// ChartID converts an element id into one go-echarts can use, since the
// library also embeds it in JavaScript identifiers.
func ChartID(target string) string {
	return strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(target)
}

// Render implements Renderer.
func (e ECharts) Render(cfg charts.Config, values []float64) (Chart, error) {
	if err := cfg.CheckValues(values); err != nil {
		return Chart{}, err
	}

	width, height := e.Width, e.Height
	if width == "" {
		width = DefaultWidth
	}
	if height == "" {
		height = DefaultHeight
	}

	data := make([]opts.PieData, 0, len(values))
	for i, v := range values {
		data = append(data, opts.PieData{Name: cfg.Labels[i], Value: v})
	}

	radius := any("75%")
	if cfg.Kind == charts.KindDoughnut {
		radius = []string{"40%", "75%"}
	}

	pie := gocharts.NewPie()
	pie.SetGlobalOptions(
		gocharts.WithInitializationOpts(opts.Initialization{
			ChartID:    ChartID(cfg.Target),
			AssetsHost: e.AssetsHost,
			Width:      width,
			Height:     height,
		}),
		gocharts.WithTitleOpts(opts.Title{Title: cfg.Title, Left: "center"}),
		gocharts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Type: "scroll", Top: "bottom"}),
		gocharts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		gocharts.WithColorsOpts(opts.Colors(cfg.Colors)),
	)
	pie.AddSeries(cfg.Title, data).SetSeriesOptions(
		gocharts.WithLabelOpts(opts.Label{Show: opts.Bool(false), Formatter: "{b}: {c}"}),
		gocharts.WithPieChartOpts(opts.PieChart{Radius: radius}),
	)

	return Chart{
		Name:    cfg.Name,
		Target:  cfg.Target,
		Kind:    cfg.Kind,
		Snippet: pie.RenderSnippet(),
		Config:  ChartJS(cfg, values),
	}, nil
}
