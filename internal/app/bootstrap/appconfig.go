// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for the ticket dashboard.
//
// WAFFLE's CoreConfig covers HTTP ports, TLS, log level and the like; this
// struct covers what the dashboard itself needs: where the ticketing server
// lives, how long to wait for it, where fetch outcomes are recorded, and how
// charts are drawn.
type AppConfig struct {
	// MongoDB connection configuration (fetch log)
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connections in pool
	MongoMinPoolSize uint64 // Min connections kept warm

	// Ticketing server serving /ticket_data/, /type_data/ and /status_data/
	TicketsBaseURL string // e.g., "http://localhost:8000"

	// Timeouts
	FetchTimeout time.Duration // one chart data request
	PageTimeout  time.Duration // one full dashboard load

	// Chart rendering
	EChartsAssetsHost string // where echarts.min.js is served from
	ChartWidth        string // CSS width of each chart (e.g., "480px")
	ChartHeight       string // CSS height of each chart (e.g., "320px")

	// FetchLogEnabled records every chart data fetch in MongoDB.
	FetchLogEnabled bool
}
