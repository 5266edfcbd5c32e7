package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/internal/httpapi"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP search server",
	Long:  `Serves path searches as a JSON API over HTTP, with Prometheus metrics on /metrics.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		addr, _ := cmd.Flags().GetString("addr")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		srv := &http.Server{
			Addr: addr,
			Handler: httpapi.NewHandler(
				httpapi.WithLogger(log),
				httpapi.WithMaxSteps(maxSteps),
				httpapi.WithTimeout(timeout),
			),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			log.Warn("server listening", zap.String("addr", srv.Addr))
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(shutdown)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}

			return err

		case sig := <-shutdown:
			log.Warn("shutting down", zap.Stringer("signal", sig))

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("graceful shutdown did not complete", zap.Duration("timeout", shutdownTimeout), zap.Error(err))
				return srv.Close()
			}
			log.Warn("server stopped")

			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().Int("max-steps", httpapi.DefaultMaxSteps, "Step budget cap for each search")
	serveCmd.Flags().Duration("timeout", httpapi.DefaultTimeout, "Wall time limit for each search")
}
