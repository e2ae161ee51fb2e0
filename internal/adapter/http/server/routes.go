package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Temutjin2k/wtl-cabs/docs"
)

const swaggerInstance = "site"

func (a *API) setupRoutes() {
	a.mux.HandleFunc("GET /health", a.routes.health.HealthCheck)

	setupSwaggerRoutes(a.mux)
	setupMetricsRoute(a.mux)
	setupSiteRoutes(a.mux, a.routes)
	setupAPIRoutes(a.mux, a.routes)
}

// setupSiteRoutes setups the HTML pages
func setupSiteRoutes(mux *http.ServeMux, routes *handlers) {
	mux.HandleFunc("GET /", routes.landing.Home)              // Redirect to the default city, 404 page for everything unknown
	mux.HandleFunc("GET /cities/{slug}", routes.landing.City) // City landing page
	mux.HandleFunc("GET /search", routes.search.Page)         // Cab search results
	mux.HandleFunc("POST /reserve", routes.reserve.Submit)    // Reserve Now, redirects to the invoice page
	mux.HandleFunc("GET /ws/search", routes.search.HandleWS)  // Live quote over websocket
}

// setupAPIRoutes setups the JSON api
func setupAPIRoutes(mux *http.ServeMux, routes *handlers) {
	mux.HandleFunc("POST /api/v1/quotes", routes.search.Quote)
	mux.HandleFunc("POST /api/v1/reservations", routes.reserve.Create)
	mux.HandleFunc("POST /api/v1/reservations/verify", routes.reserve.Verify)
}

// setupSwaggerRoutes configures Swagger UI endpoint
func setupSwaggerRoutes(mux *http.ServeMux) {
	swaggerURL := httpSwagger.InstanceName(swaggerInstance)
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler(swaggerURL))
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func setupMetricsRoute(mux *http.ServeMux) {
	mux.Handle("GET /metrics", promhttp.Handler())
}
