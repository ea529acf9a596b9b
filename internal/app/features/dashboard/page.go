// internal/app/features/dashboard/page.go
package dashboard

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/dalemusser/ticketboard/internal/app/system/chartboard"
	"github.com/dalemusser/ticketboard/internal/app/system/htmlsanitize"
	"github.com/dalemusser/ticketboard/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type chartPanel struct {
	Name   string
	Title  string
	Target string
	Kind   string
	OK     bool

	// Set when OK.
	Element template.HTML
	Script  template.HTML

	// Set when not OK.
	Notice template.HTML
}

type pageData struct {
	Title       string
	LoadID      string
	EChartsJS   string
	Panels      []chartPanel
	FailedCount int
}

func buildPage(snap chartboard.Snapshot, assetsHost string) pageData {
	data := pageData{
		Title:       "Ticket Dashboard",
		LoadID:      snap.LoadID,
		EChartsJS:   strings.TrimRight(assetsHost, "/") + "/echarts.min.js",
	}

	for _, o := range snap.Charts {
		p := chartPanel{
			Name:   o.Config.Name,
			Title:  o.Config.Title,
			Target: o.Config.Target,
			Kind:   string(o.Config.Kind),
			OK:     o.OK(),
		}
		if o.OK() {
			// go-echarts output is generated from our own config, not user input.
			p.Element = template.HTML(o.Chart.Snippet.Element)
			p.Script = template.HTML(o.Chart.Snippet.Script)
		} else {
			p.Notice = htmlsanitize.Notice(o.Err.Error())
			data.FailedCount++
		}
		data.Panels = append(data.Panels, p)
	}
	return data
}

// ServeDashboard loads every chart and renders the dashboard page.
// GET / and GET /dashboard
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Page(), h.Log, "dashboard load")
	defer cancel()

	snap := h.Board.Load(ctx)
	data := buildPage(snap, h.AssetsHost)

	h.Log.Debug("dashboard served",
		zap.String("load_id", snap.LoadID),
		zap.Int("failed", data.FailedCount))

	templates.Render(w, r, "ticket_dashboard", data)
}
