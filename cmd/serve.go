package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"landing_page_server/config"
	"landing_page_server/internal/api"
	"landing_page_server/internal/logging"
	"landing_page_server/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Serves the browser form and the JSON generation API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bootLogger := logging.New(logging.ParseLevel(os.Getenv("LOG_LEVEL")))
		// .env must be loaded before viper reads the environment.
		config.LoadEnvFile(bootLogger)

		dir, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(dir, bootLogger)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.ServerAddress = addr
		}
		logger := logging.New(logging.ParseLevel(cfg.LogLevel))

		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		} else {
			gin.SetMode(gin.DebugMode)
			logger.Info("running in gin debug mode")
		}

		var recorder *metrics.Recorder
		if cfg.MetricsEnabled {
			recorder = metrics.NewRecorder(nil)
		}

		handler := api.NewAPIHandler(logger, recorder, cfg.MaxPromptLength)
		router := api.NewRouter(handler, logger, recorder)

		server := &http.Server{
			Addr:         cfg.ServerAddress,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting API server", "addr", cfg.ServerAddress)
			serverErrors <- server.ListenAndServe()
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case sig := <-quit:
			logger.Info("shutting down server", "signal", sig.String())
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown did not complete", "error", err)
			return server.Close()
		}
		logger.Info("API server gracefully stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address, overrides SERVER_ADDRESS")
}
