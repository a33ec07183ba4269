package booking

import (
	"context"
	"time"

	"github.com/Domenick1991/hotelconcierge/internal/catalog"
	"github.com/Domenick1991/hotelconcierge/internal/domain"
	"github.com/Domenick1991/hotelconcierge/internal/kafka"
	"github.com/Domenick1991/hotelconcierge/internal/repository"
	"github.com/Domenick1991/hotelconcierge/internal/service/reply"
	"go.uber.org/zap"
)

// BookingUseCase drives the per-session reservation state machine:
// Idle (no pending booking) and PendingConfirmation (pending booking set).
// Each call takes the session value and returns the updated one.
type BookingUseCase interface {
	RequestBooking(ctx context.Context, session domain.Session, roomType domain.RoomType) (domain.Session, domain.Response)
	ConfirmBooking(ctx context.Context, session domain.Session) (domain.Session, domain.Response)
	CancelBooking(ctx context.Context, session domain.Session) (domain.Session, domain.Response)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	rooms        repository.RoomRepository
	producer     Producer
	bookingTopic string
	now          func() time.Time
}

type BookingServiceOption func(*BookingService)

// WithEvents publishes booking transitions to topic.
func WithEvents(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = topic
	}
}

func NewBookingService(rooms repository.RoomRepository, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		rooms: rooms,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// RequestBooking quotes the lowest-id available room of roomType. A successful
// quote replaces any pending one; a failed lookup leaves the session untouched.
func (s *BookingService) RequestBooking(ctx context.Context, session domain.Session, roomType domain.RoomType) (domain.Session, domain.Response) {
	if roomType == "" {
		return session, reply.AskRoomType()
	}

	rows, err := s.rooms.Query(ctx, catalog.Lookup(catalog.CheckSpecificRoomType), catalog.Params{catalog.ParamRoomType: roomType})
	if err != nil {
		zap.L().Warn("booking lookup failed", zap.String("session_id", session.ID), zap.String("room_type", string(roomType)), zap.Error(err))
		return session, reply.Error(err)
	}
	if len(rows) == 0 {
		return session, reply.NoRoomsOfType(roomType)
	}

	pending := domain.PendingBooking{RoomID: rows[0].ID, RoomType: roomType, Price: rows[0].Price}
	session.Pending = &pending
	s.publish(ctx, kafka.EventBookingRequested, session.ID, pending)
	return session, reply.Quote(pending)
}

// ConfirmBooking marks the pending room Booked at the quoted price. The price is
// not re-read at commit time. Without a pending booking it does nothing.
func (s *BookingService) ConfirmBooking(ctx context.Context, session domain.Session) (domain.Session, domain.Response) {
	if session.Pending == nil {
		return session, reply.Help()
	}
	pending := *session.Pending

	affected, err := s.rooms.UpdateAvailability(ctx, pending.RoomID, domain.AvailabilityBooked)
	if err != nil {
		zap.L().Warn("booking commit failed", zap.String("session_id", session.ID), zap.Int64("room_id", pending.RoomID), zap.Error(err))
		return session, reply.Error(err)
	}
	if affected == 0 {
		zap.L().Info("booking commit matched no room", zap.String("session_id", session.ID), zap.Int64("room_id", pending.RoomID))
	}

	session.Pending = nil
	s.publish(ctx, kafka.EventBookingConfirmed, session.ID, pending)
	return session, reply.Confirmed(pending)
}

// CancelBooking drops the pending booking, if any, without touching the inventory.
func (s *BookingService) CancelBooking(ctx context.Context, session domain.Session) (domain.Session, domain.Response) {
	if session.Pending != nil {
		s.publish(ctx, kafka.EventBookingCancelled, session.ID, *session.Pending)
	}
	session.Pending = nil
	return session, reply.Cancelled()
}

func (s *BookingService) publish(ctx context.Context, eventType, sessionID string, pending domain.PendingBooking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:      eventType,
		SessionID: sessionID,
		RoomID:    pending.RoomID,
		RoomType:  string(pending.RoomType),
		Price:     pending.Price,
		At:        s.now(),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, sessionID, event); err != nil {
		zap.L().Warn("publish booking event", zap.String("type", eventType), zap.String("session_id", sessionID), zap.Error(err))
	}
}

var _ BookingUseCase = (*BookingService)(nil)
