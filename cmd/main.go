package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/streadway/amqp"
	"golang.org/x/sync/errgroup"

	amqpadapter "dfp-sync/internal/adapter/amqp"
	httpadapter "dfp-sync/internal/adapter/http"
	"dfp-sync/internal/app"
	"dfp-sync/internal/config"
)

// main is the entry point of the line item sync service. It loads
// configuration, wires the ad server client and the optional sync ledger,
// then serves the HTTP API and, when enabled, consumes campaign changes
// from AMQP. On SIGINT or SIGTERM it shuts down gracefully.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.New(os.Stdout)

	if err = run(cfg, logger); err != nil {
		logger.Error("service stopped", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("service gracefully stopped")
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	handler := httpadapter.NewHandler(a.UseCase, logger)
	handler.Router().Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.AMQP.Enabled {
		conn, err := amqp.Dial(cfg.AMQP.URL)
		if err != nil {
			cancel()
			_ = g.Wait()
			return fmt.Errorf("connect to broker: %w", err)
		}
		defer conn.Close()

		ch, err := conn.Channel()
		if err != nil {
			cancel()
			_ = g.Wait()
			return fmt.Errorf("open channel: %w", err)
		}
		defer ch.Close()

		deliveries, err := amqpadapter.Subscribe(ch, cfg.AMQP)
		if err != nil {
			cancel()
			_ = g.Wait()
			return err
		}

		consumer := amqpadapter.NewConsumer(a.UseCase, logger)
		g.Go(func() error {
			logger.Info("consuming campaign changes", slog.String("queue", cfg.AMQP.Queue))
			err := consumer.Run(gctx, deliveries)
			switch {
			case errors.Is(err, context.Canceled):
				return nil
			case err == nil:
				return errors.New("broker closed the delivery channel")
			default:
				return err
			}
		})
	}

	return g.Wait()
}
