// internal/app/features/dashboard/api.go
package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/dalemusser/ticketboard/internal/app/store/fetchlog"
	"github.com/dalemusser/ticketboard/internal/app/system/chartrender"
	"github.com/dalemusser/ticketboard/internal/app/system/timeouts"
	"go.uber.org/zap"
)

const (
	maxFetchLogLimit = 500
	failureWindow    = 24 * time.Hour
)

type chartJSON struct {
	Name   string                     `json:"name"`
	Kind   string                     `json:"kind"`
	Target string                     `json:"target"`
	Title  string                     `json:"title"`
	OK     bool                       `json:"ok"`
	Stage  string                     `json:"stage,omitempty"`
	Error  string                     `json:"error,omitempty"`
	Values []float64                  `json:"values"`
	Config *chartrender.ChartJSConfig `json:"config,omitempty"`
}

type chartsResponse struct {
	LoadID string      `json:"load_id"`
	Charts []chartJSON `json:"charts"`
}

type fetchLogResponse struct {
	Entries     []fetchlog.Entry `json:"entries"`
	Failures24h int64            `json:"failures_24h"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ServeCharts loads every chart and returns its Chart.js config and outcome.
// GET /dashboard/charts.json
func (h *Handler) ServeCharts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Page(), h.Log, "dashboard charts")
	defer cancel()

	snap := h.Board.Load(ctx)

	resp := chartsResponse{LoadID: snap.LoadID, Charts: make([]chartJSON, 0, len(snap.Charts))}
	for _, o := range snap.Charts {
		c := chartJSON{
			Name:   o.Config.Name,
			Kind:   string(o.Config.Kind),
			Target: o.Config.Target,
			Title:  o.Config.Title,
			OK:     o.OK(),
			Values: o.Values,
		}
		if o.OK() {
			cfg := o.Chart.Config
			c.Config = &cfg
		} else {
			c.Stage = o.Stage
			c.Error = o.Err.Error()
		}
		resp.Charts = append(resp.Charts, c)
	}

	h.Log.Debug("dashboard charts served",
		zap.String("load_id", snap.LoadID),
		zap.Int("failed", len(snap.Failed())))

	writeJSON(w, http.StatusOK, resp)
}

// ServeFetchLog lists recent chart data fetches along with the number of
// failed fetches in the last 24 hours. With ?load=<id> it lists the fetches
// of one dashboard load and ignores the other filters.
// GET /dashboard/fetches?chart=type&failed=1&limit=20
// GET /dashboard/fetches?load=<load_id>
func (h *Handler) ServeFetchLog(w http.ResponseWriter, r *http.Request) {
	if h.FetchLog == nil {
		writeJSON(w, http.StatusOK, fetchLogResponse{Entries: []fetchlog.Entry{}})
		return
	}

	q := r.URL.Query()
	f := fetchlog.Filter{
		Chart:        q.Get("chart"),
		FailuresOnly: q.Get("failed") == "1" || q.Get("failed") == "true",
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		if n > maxFetchLogLimit {
			n = maxFetchLogLimit
		}
		f.Limit = n
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Store(), h.Log, "fetch log read")
	defer cancel()

	var (
		entries []fetchlog.Entry
		err     error
	)
	if loadID := q.Get("load"); loadID != "" {
		entries, err = h.FetchLog.ByLoad(ctx, loadID)
	} else {
		entries, err = h.FetchLog.Recent(ctx, f)
	}
	if err != nil {
		h.Log.Error("fetch log read failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "fetch log unavailable"})
		return
	}

	failures, err := h.FetchLog.CountFailures(ctx, time.Now().Add(-failureWindow))
	if err != nil {
		h.Log.Error("fetch log count failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "fetch log unavailable"})
		return
	}

	if entries == nil {
		entries = []fetchlog.Entry{}
	}
	writeJSON(w, http.StatusOK, fetchLogResponse{Entries: entries, Failures24h: failures})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
