package rooms

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/hotelconcierge/internal/domain"
	"github.com/Domenick1991/hotelconcierge/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *RoomService {
	t.Helper()
	repo, err := repository.NewMemoryRoomRepository([]domain.Room{
		{ID: 1, Type: domain.RoomTypeSingle, Price: 100, Availability: domain.AvailabilityAvailable},
		{ID: 2, Type: domain.RoomTypeDouble, Price: 180, Availability: domain.AvailabilityAvailable},
		{ID: 3, Type: domain.RoomTypeSuite, Price: 300, Availability: domain.AvailabilityAvailable},
	})
	require.NoError(t, err)
	return NewRoomService(repo)
}

func TestRoomService_PriceRange(t *testing.T) {
	s := newService(t)

	rows, err := s.PriceRange(context.Background(), 150, 300)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.RoomTypeDouble, rows[0].Type)
	assert.Equal(t, domain.RoomTypeSuite, rows[1].Type)
}

func TestRoomService_PriceRange_Inverted(t *testing.T) {
	s := newService(t)

	rows, err := s.PriceRange(context.Background(), 300, 100)

	var queryErr *domain.QueryError
	assert.True(t, errors.As(err, &queryErr))
	assert.Nil(t, rows)
}

func TestRoomService_EmptyResultIsNotNil(t *testing.T) {
	s := newService(t)

	rows, err := s.PriceRange(context.Background(), 1000, 2000)

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestRoomService_Reads(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	all, err := s.Availability(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	suites, err := s.AvailabilityByType(ctx, domain.RoomTypeSuite)
	require.NoError(t, err)
	require.Len(t, suites, 1)
	assert.Equal(t, int64(3), suites[0].ID)

	cheapest, err := s.Cheapest(ctx)
	require.NoError(t, err)
	require.Len(t, cheapest, 1)
	assert.Equal(t, 100.0, cheapest[0].Price)

	features, err := s.Features(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Two queen beds, workspace", features[1].Features)

	info, err := s.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, info[1].MaxOccupancy)
}
