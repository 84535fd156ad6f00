package main

import (
	"context"
	"converter/internal/api"
	"converter/internal/api/handler/v1handler"
	"converter/internal/config"
	"converter/internal/converter"
	"converter/internal/worker"
	"converter/pkg/logger"
	"converter/pkg/notifier"
	"converter/pkg/storage/postgres"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorkers(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) func(ctx context.Context) {
	sender, err := notifier.New(notifier.Options{
		Provider:      cfg.Notifier.Provider,
		MailgunAPIKey: cfg.Notifier.Mailgun.APIKey,
		MailgunDomain: cfg.Notifier.Mailgun.Domain,
		MailgunRegion: cfg.Notifier.Mailgun.Region,
		ResendAPIKey:  cfg.Notifier.Resend.APIKey,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create email sender", zap.Error(err))
	}

	featureRequests := worker.NewFeatureRequestWorker(strg, sender, worker.FeatureRequestOptions{
		From:             cfg.Notifier.From,
		Recipient:        cfg.Notifier.Recipient,
		RateLimitBackoff: cfg.Worker.RateLimitBackoff,
	})

	logger.Info(ctx, "starting workers...", zap.String("emailProvider", sender.Name()))
	riverClient, err := worker.Start(ctx, strg.Pool, worker.Options{MaxWorkers: cfg.Worker.MaxWorkers}, featureRequests)
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			options, err := converter.NewOptions(cfg)
			if err != nil {
				logger.Fatal(ctx, "could not create converter options", zap.Error(err))
			}
			svc := converter.New(strg, clockwork.NewRealClock(), options)

			withoutWorkers, _ := cmd.Flags().GetBool("without-workers")
			stopWorkers := func(context.Context) {}
			if !withoutWorkers {
				stopWorkers = setupWorkers(ctx, cfg, strg)
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps:   v1handler.Deps{Converter: svc},
				Health: strg,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
		},
	}

	cmd.Flags().Bool("without-workers", false, "Only serve the API; feature request emails stay queued")

	return cmd
}
