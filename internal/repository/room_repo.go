package repository

import (
	"context"

	"github.com/Domenick1991/hotelconcierge/internal/catalog"
	"github.com/Domenick1991/hotelconcierge/internal/domain"
)

// RoomRepository is the inventory store. Reads never mutate; each availability
// update is applied atomically. An update that matches no room reports zero
// affected rows and no error.
type RoomRepository interface {
	Query(ctx context.Context, tmpl catalog.Template, params catalog.Params) ([]domain.Row, error)
	UpdateAvailability(ctx context.Context, roomID int64, status domain.Availability) (int64, error)
}
