package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"shopdemo/internal"
	"shopdemo/internal/util"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
}

func main() {
	cfg := internal.LoadConfig()
	logger := newLogger(cfg.Env)
	defer logger.Sync()

	ctx := context.Background()
	app := util.Must(internal.NewApi(ctx, cfg, logger))

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	logger.Info("storefront started", zap.String("port", cfg.Port))

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGTERM, syscall.SIGINT)
	<-signalCh

	logger.Info("received shutdown signal, exiting")
	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	if env == "production" {
		return util.Must(zap.NewProduction())
	}
	return util.Must(zap.NewDevelopment())
}
