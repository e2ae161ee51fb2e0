package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Temutjin2k/wtl-cabs/config"
	"github.com/Temutjin2k/wtl-cabs/internal/adapter/http/handler"
	"github.com/Temutjin2k/wtl-cabs/internal/adapter/http/middleware"
	"github.com/Temutjin2k/wtl-cabs/pkg/logger"
	wrap "github.com/Temutjin2k/wtl-cabs/pkg/logger/wrapper"
	"github.com/Temutjin2k/wtl-cabs/pkg/telemetry"
	ws "github.com/Temutjin2k/wtl-cabs/pkg/wsHub"
)

type API struct {
	mux    *http.ServeMux
	server *http.Server
	routes *handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	health  *handler.Health
	landing *handler.Landing
	search  *handler.Search
	reserve *handler.Reserve
}

// Services groups what the HTTP layer depends on.
type Services struct {
	Landing     handler.LandingService
	Search      handler.SearchService
	Tokens      handler.QuoteTokens
	Reservation handler.ReservationService
	View        handler.Renderer
	Hub         *ws.ConnectionHub
}

func New(cfg config.Config, svc Services, logger logger.Logger) (*API, error) {
	switch {
	case svc.Landing == nil:
		return nil, errors.New("landing service is required")
	case svc.Search == nil:
		return nil, errors.New("search service is required")
	case svc.Tokens == nil:
		return nil, errors.New("quote tokens are required")
	case svc.Reservation == nil:
		return nil, errors.New("reservation service is required")
	case svc.View == nil:
		return nil, errors.New("renderer is required")
	case svc.Hub == nil:
		return nil, errors.New("connection hub is required")
	}

	routes := &handlers{
		health:  handler.NewHealth(cfg.Service.Name, cfg.Service.Version, svc.Hub, logger),
		landing: handler.NewLanding(svc.Landing, svc.View, logger),
		search: handler.NewSearch(svc.Search, svc.Tokens, svc.View, svc.Hub, handler.WSConfig{
			WriteTimeout: cfg.WebSocket.WriteTimeout,
			PingInterval: cfg.WebSocket.PingInterval,
		}, logger),
		reserve: handler.NewReserve(svc.Reservation, svc.Tokens, svc.View, logger),
	}

	api := &API{
		mux:    http.NewServeMux(),
		routes: routes,
		m:      middleware.NewMiddleware(logger),
		addr:   cfg.Server.Addr(),
		cfg:    cfg,
		log:    logger,
	}

	api.setupRoutes()

	api.server = &http.Server{
		Addr:         api.addr,
		Handler:      api.withMiddleware(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return api, nil
}

// Handler returns the fully wrapped handler the server runs.
func (a *API) Handler() http.Handler {
	return a.server.Handler
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// withMiddleware applies middlewares to the mux
func (a *API) withMiddleware() http.Handler {
	h := a.m.Recover(a.m.RequestID(a.m.Logging(a.m.Metrics(a.cfg.Service.Name)(a.mux))))
	if a.cfg.Telemetry.Enabled {
		h = telemetry.Handler(h, a.cfg.Service.Name)
	}
	return h
}
