package chartrender_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/dalemusser/ticketboard/internal/app/system/chartrender"
	"github.com/dalemusser/ticketboard/internal/domain/charts"
)

func TestChartJS_Shape(t *testing.T) {
	cfg := charts.Priority()
	values := []float64{4, 3, 2, 1}

	got := chartrender.ChartJS(cfg, values)

	if got.Type != "pie" {
		t.Errorf("type: got %q, want pie", got.Type)
	}
	if !got.Options.Title.Display || got.Options.Title.Text != "Tickets by Priority" {
		t.Errorf("title: got %+v", got.Options.Title)
	}
	if len(got.Data.Datasets) != 1 {
		t.Fatalf("expected one dataset, got %d", len(got.Data.Datasets))
	}
	ds := got.Data.Datasets[0]
	if &ds.Data[0] != &values[0] {
		t.Error("dataset should reference the values slice unmodified")
	}
	if len(ds.BackgroundColor) != len(got.Data.Labels) {
		t.Errorf("%d colors for %d labels", len(ds.BackgroundColor), len(got.Data.Labels))
	}
}

func TestChartJS_JSONKeys(t *testing.T) {
	raw, err := json.Marshal(chartrender.ChartJS(charts.Status(), []float64{7, 2}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	for _, want := range []string{
		`"type":"pie"`,
		`"labels":["Open","Closed"]`,
		`"data":[7,2]`,
		`"backgroundColor":["rgba(54, 162, 235, 0.8)","rgba(255, 99, 132, 0.8)"]`,
		`"title":{"display":true,"text":"Tickets by Status"}`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("JSON %s missing %s", body, want)
		}
	}
}

func TestChartID(t *testing.T) {
	if got := chartrender.ChartID("priority-pie-chart"); got != "priority_pie_chart" {
		t.Errorf("got %q, want priority_pie_chart", got)
	}
}

func TestECharts_Render(t *testing.T) {
	r := chartrender.ECharts{}
	for _, cfg := range charts.Dashboard() {
		values := cfg.Static
		if cfg.Remote() {
			values = make([]float64, len(cfg.Labels))
			for i := range values {
				values[i] = float64(i + 1)
			}
		}

		chart, err := r.Render(cfg, values)
		if err != nil {
			t.Fatalf("%s: Render() error %v", cfg.Name, err)
		}
		if chart.Target != cfg.Target {
			t.Errorf("%s target: got %q", cfg.Name, chart.Target)
		}
		if chart.Kind != cfg.Kind {
			t.Errorf("%s kind: got %q", cfg.Name, chart.Kind)
		}
		id := chartrender.ChartID(cfg.Target)
		if !strings.Contains(chart.Snippet.Element, id) {
			t.Errorf("%s element does not reference %q: %s", cfg.Name, id, chart.Snippet.Element)
		}
		all := chart.Snippet.Element + chart.Snippet.Script + chart.Snippet.Option
		if !strings.Contains(all, cfg.Title) {
			t.Errorf("%s snippet missing title %q", cfg.Name, cfg.Title)
		}
	}
}

func TestECharts_RenderRejectsMismatch(t *testing.T) {
	_, err := chartrender.ECharts{}.Render(charts.Type(), []float64{1, 2})
	if !errors.Is(err, charts.ErrValueCount) {
		t.Errorf("got %v, want ErrValueCount", err)
	}
}
