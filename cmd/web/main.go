package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"hotel_finder/internal/adapters/hotelapi"
	server "hotel_finder/internal/adapters/http_server"
	"hotel_finder/internal/adapters/memstore"
	"hotel_finder/internal/adapters/observability"
	redisad "hotel_finder/internal/adapters/redis"
	"hotel_finder/internal/app"
	"hotel_finder/internal/domain"
	"hotel_finder/internal/shared"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	if cfg.APIBaseURL == "" {
		log.Warn().Str("origin", cfg.SelfOrigin).Msg("HOTEL_API_BASE_URL is empty; backend calls go to this server's own origin")
	}

	// deps
	api, err := hotelapi.New(cfg.BackendBaseURL(), cfg.BackendRPS, cfg.BackendTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid backend base URL")
	}
	store, closeStore := sessionStore(ctx, cfg)
	a := app.New(api, store, cfg.SessionTTL)

	// http
	reg := observability.InitRegistry()
	srv := server.New(cfg.RequestTimeout)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{App: a, SecureCookie: cfg.SecureCookie})

	servers := []*http.Server{{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}}
	if cfg.MetricsAddr != "" {
		servers = append(servers, observability.NewMetricsServer(cfg.MetricsAddr, reg))
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range servers {
		s := s
		g.Go(func() error {
			log.Info().Str("addr", s.Addr).Msg("listening")
			if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, s := range servers {
			if err := s.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Str("addr", s.Addr).Msg("shutdown failed")
			}
		}
		return nil
	})

	err = g.Wait()
	if cerr := closeStore(); cerr != nil {
		log.Error().Err(cerr).Msg("close session store failed")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("stopped")
}

// sessionStore picks redis unless SESSION_STORE=memory; an unreachable redis is fatal.
// The returned func releases the store on shutdown.
func sessionStore(ctx context.Context, cfg shared.Config) (domain.Cache, func() error) {
	if cfg.SessionStore == "memory" {
		log.Warn().Msg("sessions kept in memory; they are lost on restart")
		return memstore.New(), func() error { return nil }
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := cache.Ping(pingCtx); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed")
	}
	log.Info().Msg("redis connection ok")
	return cache, cache.Close
}
