package notify

import (
	"context"

	"github.com/Domenick1991/hotelconcierge/internal/kafka"
	"go.uber.org/zap"
)

// FrontDesk tells hotel staff about booking activity.
type FrontDesk struct {
	log *zap.Logger
}

func NewFrontDesk(log *zap.Logger) *FrontDesk {
	if log == nil {
		log = zap.L()
	}
	return &FrontDesk{log: log.Named("front_desk")}
}

func (f *FrontDesk) Notify(ctx context.Context, event kafka.BookingEvent) error {
	f.log.Info("booking activity",
		zap.String("type", event.Type),
		zap.String("session_id", event.SessionID),
		zap.Int64("room_id", event.RoomID),
		zap.String("room_type", event.RoomType),
		zap.Float64("price", event.Price),
		zap.Time("at", event.At),
	)
	return nil
}
