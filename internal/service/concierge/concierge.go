// Package concierge answers one guest utterance per call.
package concierge

import (
	"context"
	"fmt"

	"github.com/Domenick1991/hotelconcierge/internal/catalog"
	"github.com/Domenick1991/hotelconcierge/internal/domain"
	"github.com/Domenick1991/hotelconcierge/internal/repository"
	"github.com/Domenick1991/hotelconcierge/internal/service/booking"
	"github.com/Domenick1991/hotelconcierge/internal/service/intent"
	"github.com/Domenick1991/hotelconcierge/internal/service/reply"
	"go.uber.org/zap"
)

type handler func(ctx context.Context, session domain.Session, in intent.Intent) (domain.Session, domain.Response)

type Concierge struct {
	classifier *intent.Classifier
	bookings   booking.BookingUseCase
	rooms      repository.RoomRepository
	handlers   map[intent.Kind]handler
}

func NewConcierge(rooms repository.RoomRepository, bookings booking.BookingUseCase) *Concierge {
	c := &Concierge{
		classifier: intent.NewClassifier(),
		bookings:   bookings,
		rooms:      rooms,
	}
	c.handlers = map[intent.Kind]handler{
		intent.KindBookRequest:       c.book,
		intent.KindConfirmBooking:    c.confirm,
		intent.KindCancelBooking:     c.cancel,
		intent.KindAvailabilityQuery: c.availability,
		intent.KindPriceQuery:        c.prices,
		intent.KindFeatureQuery:      c.features,
		intent.KindDetailQuery:       c.details,
	}
	return c
}

// ProcessUtterance classifies text, runs the matching query or booking
// transition and returns the updated session with the structured answer.
// Faults never escape: they come back as an error response and the input
// session unchanged.
func (c *Concierge) ProcessUtterance(ctx context.Context, session domain.Session, text string) (out domain.Session, resp domain.Response) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("utterance handling panicked", zap.String("session_id", session.ID), zap.Any("panic", r))
			out, resp = session, reply.Error(fmt.Errorf("%v", r))
		}
	}()

	in := c.classifier.Classify(text, session.HasPending())
	h, ok := c.handlers[in.Kind]
	if !ok {
		return session, reply.Help()
	}
	return h(ctx, session, in)
}

func (c *Concierge) book(ctx context.Context, session domain.Session, in intent.Intent) (domain.Session, domain.Response) {
	return c.bookings.RequestBooking(ctx, session, in.RoomType)
}

func (c *Concierge) confirm(ctx context.Context, session domain.Session, _ intent.Intent) (domain.Session, domain.Response) {
	return c.bookings.ConfirmBooking(ctx, session)
}

func (c *Concierge) cancel(ctx context.Context, session domain.Session, _ intent.Intent) (domain.Session, domain.Response) {
	return c.bookings.CancelBooking(ctx, session)
}

func (c *Concierge) availability(ctx context.Context, session domain.Session, in intent.Intent) (domain.Session, domain.Response) {
	if in.RoomType != "" {
		rows, err := c.query(ctx, session, catalog.CheckSpecificRoomType, catalog.Params{catalog.ParamRoomType: in.RoomType})
		if err != nil {
			return session, reply.Error(err)
		}
		return session, reply.TypeAvailability(in.RoomType, rows)
	}
	rows, err := c.query(ctx, session, catalog.CheckAllAvailability, nil)
	if err != nil {
		return session, reply.Error(err)
	}
	return session, reply.Availability(rows)
}

func (c *Concierge) prices(ctx context.Context, session domain.Session, in intent.Intent) (domain.Session, domain.Response) {
	if in.Cheapest {
		rows, err := c.query(ctx, session, catalog.CheapestAvailable, nil)
		if err != nil {
			return session, reply.Error(err)
		}
		return session, reply.Cheapest(rows)
	}
	rows, err := c.query(ctx, session, catalog.RoomFeatures, nil)
	if err != nil {
		return session, reply.Error(err)
	}
	return session, reply.Prices(rows)
}

func (c *Concierge) features(ctx context.Context, session domain.Session, _ intent.Intent) (domain.Session, domain.Response) {
	rows, err := c.query(ctx, session, catalog.RoomFeatures, nil)
	if err != nil {
		return session, reply.Error(err)
	}
	return session, reply.Features(rows)
}

func (c *Concierge) details(ctx context.Context, session domain.Session, _ intent.Intent) (domain.Session, domain.Response) {
	rows, err := c.query(ctx, session, catalog.AllRoomInfo, nil)
	if err != nil {
		return session, reply.Error(err)
	}
	return session, reply.Details(rows)
}

func (c *Concierge) query(ctx context.Context, session domain.Session, name string, params catalog.Params) ([]domain.Row, error) {
	rows, err := c.rooms.Query(ctx, catalog.Lookup(name), params)
	if err != nil {
		zap.L().Warn("room query failed", zap.String("session_id", session.ID), zap.String("template", name), zap.Error(err))
		return nil, err
	}
	return rows, nil
}
