// Package chartboard loads the ticket dashboard: it fetches each remote
// chart's dataset, renders every chart, and reports per-chart outcomes.
//
// Chart setups are independent. Remote charts are fetched concurrently and
// finish in any order; a failure (or panic) in one never affects another.
package chartboard

import (
	"context"
	"fmt"

	"github.com/dalemusser/ticketboard/internal/app/store/fetchlog"
	"github.com/dalemusser/ticketboard/internal/app/system/chartfetch"
	"github.com/dalemusser/ticketboard/internal/app/system/chartrender"
	"github.com/dalemusser/ticketboard/internal/app/system/timeouts"
	"github.com/dalemusser/ticketboard/internal/domain/charts"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"
)

// Stages at which a chart setup can fail.
const (
	StageFetch    = "fetch"
	StageValidate = "validate"
	StageRender   = "render"
)

// Fetcher retrieves one chart dataset.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string) chartfetch.Result
}

// Recorder persists fetch outcomes. *fetchlog.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, e fetchlog.Entry) error
}

// Outcome is the result of setting up one chart.
type Outcome struct {
	Config charts.Config
	Values []float64
	Chart  chartrender.Chart
	Stage  string // set only on failure
	Err    error
}

// OK reports whether the chart was rendered.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Snapshot is one dashboard load.
type Snapshot struct {
	LoadID string
	Charts []Outcome // in config order
}

// Failed returns the outcomes that did not render.
func (s Snapshot) Failed() []Outcome {
	var out []Outcome
	for _, o := range s.Charts {
		if !o.OK() {
			out = append(out, o)
		}
	}
	return out
}

// Lookup returns the outcome for the named chart.
func (s Snapshot) Lookup(name string) (Outcome, bool) {
	for _, o := range s.Charts {
		if o.Config.Name == name {
			return o, true
		}
	}
	return Outcome{}, false
}

// Board wires chart definitions to a fetcher and renderer.
type Board struct {
	configs  []charts.Config
	fetcher  Fetcher
	renderer chartrender.Renderer
	recorder Recorder
	log      *zap.Logger
}

// Option configures a Board.
type Option func(*Board)

// WithConfigs replaces the default dashboard charts.
func WithConfigs(cfgs []charts.Config) Option {
	return func(b *Board) { b.configs = cfgs }
}

// WithRecorder records every fetch outcome.
func WithRecorder(r Recorder) Option {
	return func(b *Board) { b.recorder = r }
}

// New constructs a Board over charts.Dashboard().
func New(fetcher Fetcher, renderer chartrender.Renderer, logger *zap.Logger, options ...Option) *Board {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Board{
		configs:  charts.Dashboard(),
		fetcher:  fetcher,
		renderer: renderer,
		log:      logger,
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

// Configs returns the charts this board renders.
func (b *Board) Configs() []charts.Config {
	return b.configs
}

// Load sets up every chart once. Charts without an endpoint render
// immediately; remote charts each fetch on their own goroutine.
func (b *Board) Load(ctx context.Context) Snapshot {
	snap := Snapshot{
		LoadID: uuid.NewString(),
		Charts: make([]Outcome, len(b.configs)),
	}

	var wg conc.WaitGroup
	for i, cfg := range b.configs {
		if !cfg.Remote() {
			snap.Charts[i] = b.safeInit(ctx, snap.LoadID, cfg)
			continue
		}
		wg.Go(func() {
			snap.Charts[i] = b.safeInit(ctx, snap.LoadID, cfg)
		})
	}
	wg.Wait()

	failed := len(snap.Failed())
	b.log.Debug("dashboard loaded",
		zap.String("load_id", snap.LoadID),
		zap.Int("charts", len(snap.Charts)),
		zap.Int("failed", failed))
	return snap
}

// Init sets up a single chart: fetch (when remote), check, render.
func (b *Board) Init(ctx context.Context, cfg charts.Config) Outcome {
	return b.safeInit(ctx, uuid.NewString(), cfg)
}

func (b *Board) safeInit(ctx context.Context, loadID string, cfg charts.Config) (out Outcome) {
	stage := StageFetch
	rec := panics.Try(func() {
		out = b.init(ctx, loadID, cfg, &stage)
	})
	if rec != nil {
		b.log.Error("chart setup panicked",
			zap.String("chart", cfg.Name),
			zap.String("load_id", loadID),
			zap.String("stage", stage),
			zap.Any("panic", rec.Value))
		out = Outcome{Config: cfg, Stage: stage, Err: fmt.Errorf("%s: %w", cfg.Name, rec.AsError())}
	}
	return out
}

// init runs one chart setup. stage tracks the step in progress so a panic
// is reported against it.
func (b *Board) init(ctx context.Context, loadID string, cfg charts.Config, stage *string) Outcome {
	out := Outcome{Config: cfg}

	values := cfg.Static
	if cfg.Remote() {
		*stage = StageFetch
		res := b.fetch(ctx, loadID, cfg)
		if !res.OK() {
			out.Stage, out.Err = StageFetch, fmt.Errorf("%s: %w", cfg.Name, res.Err)
			return out
		}
		values = res.Values
	}
	out.Values = values

	*stage = StageValidate
	if err := cfg.CheckValues(values); err != nil {
		b.log.Warn("chart dataset rejected",
			zap.String("chart", cfg.Name),
			zap.String("load_id", loadID),
			zap.Error(err))
		out.Stage, out.Err = StageValidate, err
		return out
	}

	*stage = StageRender
	chart, err := b.renderer.Render(cfg, values)
	if err != nil {
		b.log.Error("chart render failed",
			zap.String("chart", cfg.Name),
			zap.String("load_id", loadID),
			zap.Error(err))
		out.Stage, out.Err = StageRender, fmt.Errorf("%s: %w", cfg.Name, err)
		return out
	}
	out.Chart = chart
	return out
}

// fetch retrieves one dataset and records the outcome. A panicking fetcher
// yields a failed Result, which is recorded like any other failure.
func (b *Board) fetch(ctx context.Context, loadID string, cfg charts.Config) chartfetch.Result {
	fctx, cancel := timeouts.WithTimeout(ctx, timeouts.Fetch(), b.log, "fetch "+cfg.Endpoint)
	var res chartfetch.Result
	if rec := panics.Try(func() { res = b.fetcher.Fetch(fctx, cfg.Endpoint) }); rec != nil {
		b.log.Error("chart fetch panicked",
			zap.String("chart", cfg.Name),
			zap.String("endpoint", cfg.Endpoint),
			zap.String("load_id", loadID),
			zap.Any("panic", rec.Value))
		res = chartfetch.Result{Endpoint: cfg.Endpoint, Err: rec.AsError()}
	}
	cancel()

	if b.recorder != nil {
		b.record(ctx, loadID, cfg, res)
	}
	return res
}

func (b *Board) record(ctx context.Context, loadID string, cfg charts.Config, res chartfetch.Result) {
	e := fetchlog.Entry{
		LoadID:      loadID,
		Chart:       cfg.Name,
		Endpoint:    cfg.Endpoint,
		OK:          res.OK(),
		Status:      res.Status,
		ElapsedMS:   res.Elapsed.Milliseconds(),
		ValuesCount: len(res.Values),
	}
	if res.Err != nil {
		e.Error = res.Err.Error()
	}

	// Detached from ctx so entries are still written after the page deadline.
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeouts.Store())
	defer cancel()
	if err := b.recorder.Record(rctx, e); err != nil {
		b.log.Warn("fetch log write failed",
			zap.String("chart", cfg.Name),
			zap.String("load_id", loadID),
			zap.Error(err))
	}
}
