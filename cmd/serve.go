package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logistics-requests/database"
	"logistics-requests/events"
	"logistics-requests/httpServices/telegram"
	"logistics-requests/logger"
	"logistics-requests/routes"
	"logistics-requests/services/notification"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Close()

	db, err := database.InitDB(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("Failed to close database", err)
		}
	}()

	auditLog := logger.NewAsyncLogger(db)
	go auditLog.ProcessLog()
	defer auditLog.Close()

	bot, err := telegram.NewClient(cfg.TelegramBotToken, cfg.TelegramChatID)
	if err != nil {
		logger.Error("Telegram bot unavailable, notifications disabled", err)
	}
	if !bot.Enabled() {
		logger.Warning("Telegram notifications are disabled")
	}

	producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer func() {
		if err := producer.Close(); err != nil {
			logger.Error("Failed to close kafka producer", err)
		}
	}()
	if !producer.Enabled() {
		logger.Info("KAFKA_BROKERS not set, lifecycle events are not published")
	}

	dispatcher := notification.NewDispatcher(bot, producer)

	handlers, err := routes.NewHandlers(db, cfg, dispatcher, auditLog)
	if err != nil {
		return err
	}
	app := routes.NewApp(cfg)
	routes.SetupRoutes(app, handlers)

	listenErr := make(chan error, 1)
	go func() {
		logger.Success("Server is running on " + cfg.Addr() +
			"\n\t\t\t\t\t\t******************************************************************************************\n")
		listenErr <- app.Listen(cfg.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-listenErr:
		if err != nil {
			return err
		}
		return nil
	case sig := <-quit:
		logger.Info("Received " + sig.String() + ", shutting down")
	}

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error("Server forced to shutdown", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := dispatcher.Wait(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Pending notifications were dropped", err)
	}
	logger.Success("Server stopped gracefully")
	return nil
}
