// README: Entry point; loads config, wires services, starts HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gameday/internal/config"
	"gameday/internal/demo"
	httptransport "gameday/internal/http"
	"gameday/internal/infra"
	"gameday/internal/modules/dispatch"
	"gameday/internal/modules/menu"
	"gameday/internal/modules/order"
	"gameday/internal/modules/runner"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "gameday-api").Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = infra.NewRedis(cfg.Redis.Addr)
	}

	menuStore := menu.NewStore()
	orderStore := order.NewStore()
	runnerStore := runner.NewStore()

	orderSvc := order.NewService(orderStore, menu.NewPricing())
	runnerSvc := runner.NewService(runnerStore)
	dispatchSvc := dispatch.NewService(orderStore, runnerStore)

	if cfg.Demo.Seed {
		demo.Seed(menuStore, runnerStore, orderSvc, log.Logger)
	}

	handler := httptransport.NewRouter(httptransport.ServerDeps{
		Orders:    orderSvc,
		Runners:   runnerSvc,
		Dispatch:  dispatchSvc,
		Menu:      menuStore,
		Log:       log.Logger,
		RateLimit: cfg.RateLimit,
		Redis:     redisClient,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("addr", cfg.HTTP.Addr).Msg("listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server")
	}
	log.Info().Msg("stopped")
}
