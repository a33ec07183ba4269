package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/hotelconcierge/config"
	"github.com/Domenick1991/hotelconcierge/internal/kafka"
	"github.com/Domenick1991/hotelconcierge/internal/logger"
	"github.com/Domenick1991/hotelconcierge/internal/notify"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cfg.Kafka.ValidateConsumer(); err != nil {
		zl.Fatal("invalid kafka config", zap.Error(err))
	}

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingTopic)
	defer consumer.Close()

	desk := notify.NewFrontDesk(zl)

	zl.Info("worker consuming", zap.String("topic", cfg.Kafka.BookingTopic), zap.String("group_id", cfg.Kafka.GroupID))
	if err := consumer.Consume(ctx, kafka.BookingEventHandler(desk.Notify)); err != nil {
		zl.Error("consumer stopped", zap.Error(err))
		return
	}
	zl.Info("worker shutting down")
}
