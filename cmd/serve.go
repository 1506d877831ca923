package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "gigworks.com/gigworks/internal/configs"
	httpapi "gigworks.com/gigworks/internal/http"
	"gigworks.com/gigworks/internal/notify"
	repository "gigworks.com/gigworks/internal/repositories"
	"gigworks.com/gigworks/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the gig marketplace HTTP API and the notification dispatcher",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		db := config.New(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		gigRepo := repository.NewGigRepository(db)
		paymentRepo := repository.NewPaymentRepository(db)

		deliverer := notify.NewRedisDeliverer(redisClient, cfg.NotifyQueueKey)
		dispatcher := notify.NewDispatcher(deliverer, cfg.NotifyWorkers, cfg.NotifyQueueSize)

		recorder := services.NewPaymentRecorder(paymentRepo)
		gigService := services.NewGigService(gigRepo)
		lifecycle := services.NewLifecycleService(gigRepo, recorder, dispatcher)

		e := echo.New()
		handler := httpapi.NewHandler(gigService, lifecycle, recorder)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)
		dispatcher.Shutdown(ctx)

		log.Println("HTTP server and notification dispatcher shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
