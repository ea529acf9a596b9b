// internal/app/features/dashboard/routes.go
package dashboard

import "github.com/go-chi/chi/v5"

// Routes wires the dashboard feature. It is mounted at "/", so the page is
// served both at the site root and at /dashboard.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeDashboard)
	r.Get("/dashboard", h.ServeDashboard)
	r.Get("/dashboard/charts.json", h.ServeCharts)
	r.Get("/dashboard/fetches", h.ServeFetchLog)

	return r
}
