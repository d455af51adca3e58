package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/franciscosanchezn/best-before-api/internal/controllers"
	"github.com/franciscosanchezn/best-before-api/internal/database"
	"github.com/franciscosanchezn/best-before-api/internal/middleware"
	"github.com/franciscosanchezn/best-before-api/internal/routes"
	"github.com/franciscosanchezn/best-before-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	conf, err := bootstrap()
	if err != nil {
		return err
	}
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := setupDatabase(conf)
	if err != nil {
		return err
	}
	defer database.Close(db)

	pool, err := database.NewExecutorPool(db, conf.Database())
	if err != nil {
		return err
	}

	logger := log.StandardLogger()
	foodService := services.NewFoodService(pool, logger)
	foodController := controllers.NewFoodController(foodService, logger, conf.DefaultListLimit)

	stopCleanup := make(chan struct{})
	defer close(stopCleanup)

	var rateLimiter *middleware.RateLimiter
	if conf.RateLimitRPS > 0 {
		rateLimiter = middleware.NewRateLimiter(conf.RateLimitRPS, conf.RateLimitBurst)
		rateLimiter.StartCleanup(time.Minute, stopCleanup)
	}

	router := routes.SetupRouter(routes.Dependencies{
		Foods:       foodController,
		Health:      func(ctx context.Context) error { return database.Ping(ctx, db) },
		Metrics:     middleware.NewMetrics(),
		RateLimiter: rateLimiter,
		Logger:      logger,
	})

	server := &http.Server{
		Addr:              conf.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", conf.Address())
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-shutdown:
		log.WithField("signal", sig.String()).Info("Received shutdown signal")

		ctx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.WithError(err).Error("Error during shutdown")
			return err
		}
		log.Info("Server stopped gracefully")
	}
	return nil
}
