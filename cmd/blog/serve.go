package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	echoadapter "github.com/awslabs/aws-lambda-go-api-proxy/echo"
	"github.com/deppfellow/go-blog/internal/database"
	"github.com/deppfellow/go-blog/internal/handler"
	"github.com/deppfellow/go-blog/internal/repository"
	"github.com/deppfellow/go-blog/internal/router"
	"github.com/deppfellow/go-blog/internal/server"
	"github.com/deppfellow/go-blog/internal/service"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

// onLambda reports whether the process was started by the Lambda runtime.
func onLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loggerService, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			ctx := cmd.Context()

			if cfg.Database.AutoMigrate {
				if err := database.Migrate(ctx, log, cfg); err != nil {
					log.Error().Err(err).Msg("failed to migrate database")
					return err
				}
			}

			srv, err := server.New(cfg, log, loggerService)
			if err != nil {
				log.Error().Err(err).Msg("failed to initialize server")
				return err
			}

			repos := repository.NewRepositories(srv.DB.Pool)
			services := service.NewServices(srv, repos)
			handlers := handler.NewHandlers(srv, services)
			r := router.NewRouter(srv, handlers)

			if onLambda() {
				// The runtime freezes the process between invocations, so
				// no workers run here; tasks are only enqueued.
				log.Info().Msg("starting lambda handler")
				lambda.Start(echoadapter.NewV2(r).ProxyWithContext)
				return nil
			}

			if err := srv.StartJobs(); err != nil {
				log.Error().Err(err).Msg("failed to start background jobs")
				return err
			}

			srv.SetupHTTPServer(r)

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			serveErr := make(chan error, 1)
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
				close(serveErr)
			}()

			select {
			case err := <-serveErr:
				if err != nil {
					log.Error().Err(err).Msg("server stopped unexpectedly")
					_ = srv.Close()
					return err
				}
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("server forced to shutdown")
				return err
			}

			log.Info().Msg("server exited properly")
			return nil
		},
	}
}
