// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	dashboardfeature "github.com/dalemusser/ticketboard/internal/app/features/dashboard"
	healthfeature "github.com/dalemusser/ticketboard/internal/app/features/health"
	"github.com/dalemusser/ticketboard/internal/app/store/fetchlog"
	"github.com/dalemusser/ticketboard/internal/app/system/chartboard"
	"github.com/dalemusser/ticketboard/internal/app/system/chartfetch"
	"github.com/dalemusser/ticketboard/internal/app/system/chartrender"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for the dashboard.
//
// It boots the template engine, builds the chart board (fetcher, renderer,
// optional fetch log) and mounts the health and dashboard features.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	fetcher := chartfetch.New(appCfg.TicketsBaseURL, nil, logger.Named("chartfetch"))
	renderer := chartrender.ECharts{
		AssetsHost: appCfg.EChartsAssetsHost,
		Width:      appCfg.ChartWidth,
		Height:     appCfg.ChartHeight,
	}

	var opts []chartboard.Option
	var fetchLog dashboardfeature.FetchLogReader
	if appCfg.FetchLogEnabled {
		store := fetchlog.New(deps.MongoDatabase)
		opts = append(opts, chartboard.WithRecorder(store))
		fetchLog = store
	}
	board := chartboard.New(fetcher, renderer, logger.Named("chartboard"), opts...)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Dashboard page, chart JSON and fetch log
	dashboardHandler := dashboardfeature.NewHandler(board, fetchLog, appCfg.EChartsAssetsHost, logger)
	r.Mount("/", dashboardfeature.Routes(dashboardHandler))

	logger.Info("dashboard ready",
		zap.String("tickets_base_url", appCfg.TicketsBaseURL),
		zap.Int("charts", len(board.Configs())),
		zap.Bool("fetch_log", appCfg.FetchLogEnabled))

	return r, nil
}
