package charts_test

import (
	"errors"
	"testing"

	"github.com/dalemusser/ticketboard/internal/domain/charts"
)

func TestDashboard_Order(t *testing.T) {
	got := charts.Dashboard()
	want := []string{charts.NamePriority, charts.NameType, charts.NameStatus, charts.NameUser}
	if len(got) != len(want) {
		t.Fatalf("expected %d charts, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("chart %d: got %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestDashboard_LabelColorPairs(t *testing.T) {
	want := map[string]int{
		charts.NamePriority: 4,
		charts.NameType:     5,
		charts.NameStatus:   2,
		charts.NameUser:     3,
	}
	for _, c := range charts.Dashboard() {
		if len(c.Labels) != want[c.Name] {
			t.Errorf("%s labels: got %d, want %d", c.Name, len(c.Labels), want[c.Name])
		}
		if len(c.Colors) != len(c.Labels) {
			t.Errorf("%s: %d colors for %d labels", c.Name, len(c.Colors), len(c.Labels))
		}
	}
}

func TestDashboard_KindMapping(t *testing.T) {
	want := map[string]charts.Kind{
		charts.NamePriority: charts.KindPie,
		charts.NameType:     charts.KindDoughnut,
		charts.NameStatus:   charts.KindPie,
		charts.NameUser:     charts.KindDoughnut,
	}
	for _, c := range charts.Dashboard() {
		if c.Kind != want[c.Name] {
			t.Errorf("%s kind: got %q, want %q", c.Name, c.Kind, want[c.Name])
		}
	}
}

func TestDashboard_TargetsAndEndpoints(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		endpoint string
	}{
		{charts.NamePriority, "priority-pie-chart", "/ticket_data/"},
		{charts.NameType, "donut-chart", "/type_data/"},
		{charts.NameStatus, "status-pie-chart", "/status_data/"},
		{charts.NameUser, "user-donut-chart", ""},
	}
	for _, tt := range tests {
		c, ok := charts.Lookup(tt.name)
		if !ok {
			t.Fatalf("Lookup(%q) not found", tt.name)
		}
		if c.Target != tt.target {
			t.Errorf("%s target: got %q, want %q", tt.name, c.Target, tt.target)
		}
		if c.Endpoint != tt.endpoint {
			t.Errorf("%s endpoint: got %q, want %q", tt.name, c.Endpoint, tt.endpoint)
		}
	}
}

func TestDashboard_AllValid(t *testing.T) {
	for _, c := range charts.Dashboard() {
		if err := c.Validate(); err != nil {
			t.Errorf("%s: Validate() = %v", c.Name, err)
		}
	}
}

func TestUser_StaticValues(t *testing.T) {
	u := charts.User()
	if u.Remote() {
		t.Fatal("user chart should not be remote")
	}
	want := []float64{12, 19, 3}
	if len(u.Static) != len(want) {
		t.Fatalf("static values: got %v, want %v", u.Static, want)
	}
	for i := range want {
		if u.Static[i] != want[i] {
			t.Errorf("static[%d]: got %v, want %v", i, u.Static[i], want[i])
		}
	}
}

func TestDashboard_ReturnsFreshCopies(t *testing.T) {
	first := charts.Dashboard()
	first[0].Labels[0] = "changed"

	second := charts.Dashboard()
	if second[0].Labels[0] != "High" {
		t.Errorf("Dashboard() shares label slices between calls: got %q", second[0].Labels[0])
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, ok := charts.Lookup("nope"); ok {
		t.Error("expected unknown chart to be missing")
	}
}

func TestCheckValues(t *testing.T) {
	c := charts.Status()

	if err := c.CheckValues([]float64{3, 4}); err != nil {
		t.Errorf("matching length: unexpected error %v", err)
	}
	if err := c.CheckValues([]float64{3}); !errors.Is(err, charts.ErrValueCount) {
		t.Errorf("short dataset: got %v, want ErrValueCount", err)
	}
	if err := c.CheckValues([]float64{3, 4, 5}); !errors.Is(err, charts.ErrValueCount) {
		t.Errorf("long dataset: got %v, want ErrValueCount", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*charts.Config)
	}{
		{"missing name", func(c *charts.Config) { c.Name = "" }},
		{"unknown kind", func(c *charts.Config) { c.Kind = "bar" }},
		{"missing target", func(c *charts.Config) { c.Target = "" }},
		{"no labels", func(c *charts.Config) { c.Labels = nil; c.Colors = nil }},
		{"color mismatch", func(c *charts.Config) { c.Colors = c.Colors[:1] }},
		{"static mismatch", func(c *charts.Config) { c.Static = []float64{1} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := charts.User()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, charts.ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}
