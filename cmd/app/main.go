package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/hotelconcierge/config"
	"github.com/Domenick1991/hotelconcierge/internal/bootstrap"
	"github.com/Domenick1991/hotelconcierge/internal/cache"
	"github.com/Domenick1991/hotelconcierge/internal/kafka"
	"github.com/Domenick1991/hotelconcierge/internal/logger"
	"github.com/Domenick1991/hotelconcierge/internal/repository"
	"github.com/Domenick1991/hotelconcierge/internal/service/booking"
	"github.com/Domenick1991/hotelconcierge/internal/service/concierge"
	"github.com/Domenick1991/hotelconcierge/internal/service/rooms"
	"github.com/jackc/pgx/v5/pgxpool"
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

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		zl.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	roomRepo := repository.NewRoomRepository(pool)
	if cfg.Inventory.SeedOnStart {
		inventory, err := repository.LoadRoomsFile(cfg.Inventory.SourceCSV)
		if err != nil {
			zl.Fatal("load inventory", zap.String("source", cfg.Inventory.SourceCSV), zap.Error(err))
		}
		if err := roomRepo.Seed(ctx, inventory); err != nil {
			zl.Fatal("seed inventory", zap.Error(err))
		}
		zl.Info("inventory seeded", zap.Int("rooms", len(inventory)))
	}

	sessions := cache.NewRedisSessionStore(cfg.Redis, time.Duration(cfg.Session.TTLMinutes)*time.Minute)
	defer sessions.Close()

	var opts []booking.BookingServiceOption
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.BookingTopic != "" {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		if err := producer.CheckConnection(ctx, cfg.Kafka.BookingTopic); err != nil {
			zl.Warn("kafka not reachable, booking events may be lost", zap.Error(err))
		}
		opts = append(opts, booking.WithEvents(producer, cfg.Kafka.BookingTopic))
	}

	bookingService := booking.NewBookingService(roomRepo, opts...)
	desk := concierge.NewConcierge(roomRepo, bookingService)
	chatService := concierge.NewChatService(desk, sessions)
	roomService := rooms.NewRoomService(roomRepo)

	if err := bootstrap.Run(ctx, cfg, chatService, roomService); err != nil {
		zl.Fatal("server error", zap.Error(err))
	}
}
