package microservices

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Temutjin2k/wtl-cabs/config"
	"github.com/Temutjin2k/wtl-cabs/internal/adapter/http/server"
	"github.com/Temutjin2k/wtl-cabs/internal/adapter/http/view"
	"github.com/Temutjin2k/wtl-cabs/internal/adapter/pricingapi"
	rabbitAdapter "github.com/Temutjin2k/wtl-cabs/internal/adapter/rabbit"
	"github.com/Temutjin2k/wtl-cabs/internal/service/fare"
	"github.com/Temutjin2k/wtl-cabs/internal/service/landing"
	"github.com/Temutjin2k/wtl-cabs/internal/service/reservation"
	"github.com/Temutjin2k/wtl-cabs/internal/service/search"
	"github.com/Temutjin2k/wtl-cabs/pkg/logger"
	wrap "github.com/Temutjin2k/wtl-cabs/pkg/logger/wrapper"
	"github.com/Temutjin2k/wtl-cabs/pkg/rabbit"
	"github.com/Temutjin2k/wtl-cabs/pkg/telemetry"
	ws "github.com/Temutjin2k/wtl-cabs/pkg/wsHub"
)

type SiteService struct {
	httpServer *server.API
	hub        *ws.ConnectionHub
	rabbit     *rabbit.RabbitMQ
	shutdown   telemetry.ShutdownFunc

	cfg config.Config
	log logger.Logger
}

func NewSite(ctx context.Context, cfg config.Config, log logger.Logger) (*SiteService, error) {
	ctx = wrap.WithAction(ctx, "site_init")

	shutdown, err := telemetry.InitTracer(cfg.Service.Name, cfg.Service.Version, cfg.Telemetry.Enabled)
	if err != nil {
		log.Error(ctx, "failed to setup tracing", err)
		return nil, err
	}

	s := &SiteService{
		shutdown: shutdown,
		cfg:      cfg,
		log:      log,
	}

	var transport http.RoundTripper
	if cfg.Telemetry.Enabled {
		transport = telemetry.Transport(nil)
	}
	pricing := pricingapi.New(cfg.PricingAPI.URL, cfg.PricingAPI.Timeout, transport, log)

	calc := fare.New()
	searchService := search.New(pricing, calc, log)
	tokens := reservation.NewTokenService(cfg.Booking.TokenSecret, cfg.Booking.QuoteTTL, cfg.Booking.HandoffTTL)

	var publisher reservation.Publisher
	if cfg.RabbitMQ.Enabled {
		client, err := rabbit.New(ctx, cfg.RabbitMQ.GetDSN(), log)
		if err != nil {
			log.Error(ctx, "failed to connect to rabbitmq", err)
			s.close(ctx)
			return nil, err
		}
		s.rabbit = client

		if err := client.DeclareTopicExchange(cfg.RabbitMQ.Exchange); err != nil {
			log.Error(ctx, "failed to declare reservation exchange", err)
			s.close(ctx)
			return nil, err
		}
		publisher = rabbitAdapter.NewReservationProducer(client, cfg.RabbitMQ.Exchange, log)
	}

	reservationService := reservation.New(calc, tokens, cfg.Booking.InvoiceURL, publisher, log)
	landingService := landing.New(cfg.Landing.DefaultCity, cfg.Landing.CounterDuration, log)

	renderer, err := view.New(log)
	if err != nil {
		log.Error(ctx, "failed to parse templates", err)
		s.close(ctx)
		return nil, err
	}

	s.hub = ws.NewConnHub(cfg.Service.Name, log)

	s.httpServer, err = server.New(cfg, server.Services{
		Landing:     landingService,
		Search:      searchService,
		Tokens:      tokens,
		Reservation: reservationService,
		View:        renderer,
		Hub:         s.hub,
	}, log)
	if err != nil {
		log.Error(ctx, "failed to setup http server", err)
		s.close(ctx)
		return nil, err
	}

	return s, nil
}

func (s *SiteService) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	s.httpServer.Run(ctx, errCh)
	defer func() {
		s.close(ctx)
		s.log.Info(ctx, "site service closed")
	}()

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	s.log.Info(ctx, "site service started", "address", s.cfg.Server.Addr())

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		s.log.Info(ctx, "shutting down application", "signal", sig.String())
		return nil
	}
}

func (s *SiteService) close(ctx context.Context) {
	ctx = wrap.WithAction(ctx, "site_close")

	if s.httpServer != nil {
		if err := s.httpServer.Stop(ctx); err != nil {
			s.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
		}
	}

	if s.hub != nil {
		s.hub.Close()
	}

	if s.rabbit != nil {
		if err := s.rabbit.Close(ctx); err != nil {
			s.log.Warn(ctx, "Failed to close rabbitmq connection", "error", err.Error())
		}
	}

	if s.shutdown != nil {
		if err := s.shutdown(ctx); err != nil {
			s.log.Warn(ctx, "Failed to flush traces", "error", err.Error())
		}
	}
}
