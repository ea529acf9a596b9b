// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/ticketboard/internal/app/features/dashboard"
	"github.com/dalemusser/ticketboard/internal/app/system/chartrender"
	"github.com/dalemusser/ticketboard/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the ticket dashboard.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, tickets_base_url, etc.
//   - Environment variables: TICKETBOARD_MONGO_URI, TICKETBOARD_TICKETS_BASE_URL, etc.
//   - Command-line flags: --mongo_uri, --tickets_base_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "ticketboard", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 20, Desc: "MongoDB max connection pool size (default: 20)"},
	{Name: "mongo_min_pool_size", Default: 2, Desc: "MongoDB min connection pool size (default: 2)"},

	{Name: "tickets_base_url", Default: "http://localhost:8000", Desc: "Base URL of the ticketing server that serves /ticket_data/, /type_data/ and /status_data/"},

	{Name: "fetch_timeout", Default: "5s", Desc: "Timeout for one chart data request (e.g., 5s, 1500ms)"},
	{Name: "page_timeout", Default: "10s", Desc: "Timeout for a full dashboard load"},

	{Name: "echarts_assets_host", Default: dashboard.DefaultAssetsHost, Desc: "URL prefix serving echarts.min.js"},
	{Name: "chart_width", Default: chartrender.DefaultWidth, Desc: "CSS width of each chart"},
	{Name: "chart_height", Default: chartrender.DefaultHeight, Desc: "CSS height of each chart"},

	{Name: "fetch_log_enabled", Default: true, Desc: "Record every chart data fetch in MongoDB"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, TICKETBOARD_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "TICKETBOARD", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		TicketsBaseURL: appValues.String("tickets_base_url"),

		FetchTimeout: appValues.Duration("fetch_timeout", timeouts.DefaultFetch),
		PageTimeout:  appValues.Duration("page_timeout", timeouts.DefaultPage),

		EChartsAssetsHost: appValues.String("echarts_assets_host"),
		ChartWidth:        appValues.String("chart_width"),
		ChartHeight:       appValues.String("chart_height"),

		FetchLogEnabled: appValues.Bool("fetch_log_enabled"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The Mongo URI and tickets URL are checked here so misconfiguration fails
// at startup instead of surfacing as a dashboard full of failed charts.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if err := validateTicketsURL(appCfg.TicketsBaseURL); err != nil {
		logger.Error("invalid tickets_base_url", zap.Error(err))
		return err
	}
	if err := validateTimeouts(appCfg.FetchTimeout, appCfg.PageTimeout); err != nil {
		return err
	}
	if appCfg.FetchTimeout > appCfg.PageTimeout {
		logger.Warn("fetch_timeout exceeds page_timeout; slow fetches will be cut off by the page deadline",
			zap.Duration("fetch_timeout", appCfg.FetchTimeout),
			zap.Duration("page_timeout", appCfg.PageTimeout))
	}
	return nil
}

func validateTicketsURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("tickets_base_url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid tickets_base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("tickets_base_url must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("tickets_base_url must include a host")
	}
	return nil
}

func validateTimeouts(fetch, page time.Duration) error {
	if fetch <= 0 {
		return fmt.Errorf("fetch_timeout must be positive, got %s", fetch)
	}
	if page <= 0 {
		return fmt.Errorf("page_timeout must be positive, got %s", page)
	}
	return nil
}
