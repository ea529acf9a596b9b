// Package charts holds the fixed chart definitions shown on the ticket dashboard.
//
// Each Config pairs a set of category labels with a color palette of the same
// length, a chart kind, a title, and the page element the chart is bound to.
// Remote charts name the ticketing endpoint their values come from; the rest
// carry their values inline.
package charts

import (
	"errors"
	"fmt"
)

// Kind is the visual form used to render a categorical dataset.
type Kind string

const (
	KindPie      Kind = "pie"
	KindDoughnut Kind = "doughnut"
)

// Valid reports whether k is a known chart kind.
func (k Kind) Valid() bool {
	return k == KindPie || k == KindDoughnut
}

// Chart names.
const (
	NamePriority = "priority"
	NameType     = "type"
	NameStatus   = "status"
	NameUser     = "user"
)

// Ticketing endpoints consumed by the dashboard.
const (
	EndpointPriority = "/ticket_data/"
	EndpointType     = "/type_data/"
	EndpointStatus   = "/status_data/"
)

var (
	// ErrValueCount is returned when a dataset's length differs from its label count.
	ErrValueCount = errors.New("value count does not match label count")
	// ErrInvalidConfig is returned by Validate for malformed definitions.
	ErrInvalidConfig = errors.New("invalid chart config")
)

// Config describes one dashboard chart.
type Config struct {
	Name     string
	Kind     Kind
	Title    string
	Target   string // page element id
	Endpoint string // empty for charts with inline values
	Labels   []string
	Colors   []string  // parallel to Labels
	Static   []float64 // inline values, used when Endpoint is empty
}

// Remote reports whether the chart's values are fetched.
func (c Config) Remote() bool {
	return c.Endpoint != ""
}

// Validate checks the definition itself, not any fetched data.
func (c Config) Validate() error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidConfig)
	case !c.Kind.Valid():
		return fmt.Errorf("%w: %s: unknown kind %q", ErrInvalidConfig, c.Name, c.Kind)
	case c.Target == "":
		return fmt.Errorf("%w: %s: missing target", ErrInvalidConfig, c.Name)
	case len(c.Labels) == 0:
		return fmt.Errorf("%w: %s: no labels", ErrInvalidConfig, c.Name)
	case len(c.Labels) != len(c.Colors):
		return fmt.Errorf("%w: %s: %d labels, %d colors", ErrInvalidConfig, c.Name, len(c.Labels), len(c.Colors))
	}
	if !c.Remote() {
		if err := c.CheckValues(c.Static); err != nil {
			return fmt.Errorf("%w: %s: static values: %v", ErrInvalidConfig, c.Name, err)
		}
	}
	return nil
}

// CheckValues rejects datasets that would not line up with the labels.
// Values are never padded or truncated.
func (c Config) CheckValues(values []float64) error {
	if len(values) != len(c.Labels) {
		return fmt.Errorf("%s: got %d values for %d labels: %w", c.Name, len(values), len(c.Labels), ErrValueCount)
	}
	return nil
}

const (
	red    = "rgba(255, 99, 132, 0.8)"
	blue   = "rgba(54, 162, 235, 0.8)"
	yellow = "rgba(255, 206, 86, 0.8)"
	teal   = "rgba(75, 192, 192, 0.8)"
	violet = "rgba(102, 0, 255, 0.8)"
)

// Priority is the tickets-by-priority pie chart.
func Priority() Config {
	return Config{
		Name:     NamePriority,
		Kind:     KindPie,
		Title:    "Tickets by Priority",
		Target:   "priority-pie-chart",
		Endpoint: EndpointPriority,
		Labels:   []string{"High", "Medium", "Low", "None"},
		Colors:   []string{red, blue, yellow, teal},
	}
}

// Type is the tickets-by-type doughnut chart.
func Type() Config {
	return Config{
		Name:     NameType,
		Kind:     KindDoughnut,
		Title:    "Tickets by Type",
		Target:   "donut-chart",
		Endpoint: EndpointType,
		Labels:   []string{"Misc", "Bug", "Help Needed", "Concern", "Question"},
		Colors:   []string{red, blue, yellow, teal, violet},
	}
}

// Status is the open/closed pie chart.
func Status() Config {
	return Config{
		Name:     NameStatus,
		Kind:     KindPie,
		Title:    "Tickets by Status",
		Target:   "status-pie-chart",
		Endpoint: EndpointStatus,
		Labels:   []string{"Open", "Closed"},
		Colors:   []string{blue, red},
	}
}

// User is the tickets-by-user doughnut chart. It has no endpoint.
func User() Config {
	return Config{
		Name:   NameUser,
		Kind:   KindDoughnut,
		Title:  "Tickets by User",
		Target: "user-donut-chart",
		Labels: []string{"High", "Medium", "Low"},
		Colors: []string{red, blue, yellow},
		Static: []float64{12, 19, 3},
	}
}

// Dashboard returns the four dashboard charts in page order.
// Every call builds fresh slices, so callers may modify the result.
func Dashboard() []Config {
	return []Config{Priority(), Type(), Status(), User()}
}

// Lookup returns the dashboard chart with the given name.
func Lookup(name string) (Config, bool) {
	for _, c := range Dashboard() {
		if c.Name == name {
			return c, true
		}
	}
	return Config{}, false
}
