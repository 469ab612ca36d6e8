package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	badgehandler "badgeforge/internal/badge/handler"
	"badgeforge/internal/badge/render"
	badgeservice "badgeforge/internal/badge/service"
	"badgeforge/internal/contact"
	contacthandler "badgeforge/internal/contact/handler"
	"badgeforge/internal/mailer"
	"badgeforge/internal/platform/config"
	"badgeforge/internal/platform/httpserver"
	"badgeforge/internal/platform/logger"
	"badgeforge/internal/platform/metrics"
	"badgeforge/internal/platform/middleware"
	httptransport "badgeforge/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Env)

	m := metrics.New()

	dispatcher, err := mailer.New(cfg.SMTP, log)
	if err != nil {
		log.Error("invalid smtp config", "error", err.Error())
		os.Exit(1)
	}

	badgeSvc := badgeservice.New(log, render.New(log), dispatcher, m)

	router := httptransport.NewRouter(
		log,
		m,
		middleware.NewOriginPolicy(cfg),
		badgehandler.New(badgeSvc, log),
		contacthandler.New(contact.NewLogSink(log), log, m),
	)

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("badgeforge listening", "addr", cfg.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err.Error())
		os.Exit(1)
	}
}
