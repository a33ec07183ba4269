package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/hotelconcierge/internal/catalog"
	"github.com/Domenick1991/hotelconcierge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRooms() []domain.Room {
	return []domain.Room{
		{ID: 4, Type: domain.RoomTypeDouble, Price: 150, Availability: domain.AvailabilityAvailable},
		{ID: 1, Type: domain.RoomTypeSingle, Price: 100, Availability: domain.AvailabilityAvailable},
		{ID: 2, Type: domain.RoomTypeSingle, Price: 100, Availability: domain.AvailabilityAvailable},
		{ID: 3, Type: domain.RoomTypeSingle, Price: 90, Availability: domain.AvailabilityBooked},
		{ID: 5, Type: domain.RoomTypeSuite, Price: 300, Availability: domain.AvailabilityAvailable},
		{ID: 6, Type: domain.RoomTypeDouble, Price: 150, Availability: domain.AvailabilityAvailable},
	}
}

func newTestRepo(t *testing.T) *MemoryRoomRepository {
	t.Helper()
	repo, err := NewMemoryRoomRepository(testRooms())
	require.NoError(t, err)
	return repo
}

func TestNewMemoryRoomRepository_DuplicateID(t *testing.T) {
	rooms := append(testRooms(), domain.Room{ID: 1, Type: domain.RoomTypeSuite, Price: 1, Availability: domain.AvailabilityAvailable})

	repo, err := NewMemoryRoomRepository(rooms)

	var loadErr *domain.LoadError
	assert.True(t, errors.As(err, &loadErr))
	assert.Nil(t, repo)
}

func TestMemoryRoomRepository_CheckAllAvailability(t *testing.T) {
	repo := newTestRepo(t)

	rows, err := repo.Query(context.Background(), catalog.Lookup(catalog.CheckAllAvailability), nil)

	require.NoError(t, err)
	assert.Equal(t, []domain.Row{
		{Type: domain.RoomTypeSingle, Price: 100, Count: 2},
		{Type: domain.RoomTypeDouble, Price: 150, Count: 2},
		{Type: domain.RoomTypeSuite, Price: 300, Count: 1},
	}, rows)
}

func TestMemoryRoomRepository_CheckAllAvailability_Idempotent(t *testing.T) {
	repo := newTestRepo(t)
	tmpl := catalog.Lookup(catalog.CheckAllAvailability)

	first, err := repo.Query(context.Background(), tmpl, nil)
	require.NoError(t, err)
	second, err := repo.Query(context.Background(), tmpl, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMemoryRoomRepository_CheckSpecificRoomType(t *testing.T) {
	repo := newTestRepo(t)

	rows, err := repo.Query(context.Background(), catalog.Lookup(catalog.CheckSpecificRoomType),
		catalog.Params{catalog.ParamRoomType: domain.RoomTypeSingle})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].ID)
	assert.Equal(t, int64(2), rows[1].ID)
	assert.Equal(t, 100.0, rows[0].Price)
}

func TestMemoryRoomRepository_PriceRange(t *testing.T) {
	repo := newTestRepo(t)

	rows, err := repo.Query(context.Background(), catalog.Lookup(catalog.PriceRange),
		catalog.Params{catalog.ParamMinPrice: 100.0, catalog.ParamMaxPrice: 150})

	require.NoError(t, err)
	assert.Equal(t, []domain.Row{
		{Type: domain.RoomTypeSingle, Price: 100, Count: 2},
		{Type: domain.RoomTypeDouble, Price: 150, Count: 2},
	}, rows)
}

func TestMemoryRoomRepository_Cheapest(t *testing.T) {
	repo := newTestRepo(t)

	rows, err := repo.Query(context.Background(), catalog.Lookup(catalog.CheapestAvailable), nil)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].ID)
	assert.Equal(t, domain.RoomTypeSingle, rows[0].Type)
}

func TestMemoryRoomRepository_Cheapest_NoneAvailable(t *testing.T) {
	repo, err := NewMemoryRoomRepository([]domain.Room{
		{ID: 1, Type: domain.RoomTypeSuite, Price: 300, Availability: domain.AvailabilityBooked},
	})
	require.NoError(t, err)

	rows, err := repo.Query(context.Background(), catalog.Lookup(catalog.CheapestAvailable), nil)

	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMemoryRoomRepository_AllRoomInfo(t *testing.T) {
	repo := newTestRepo(t)

	rows, err := repo.Query(context.Background(), catalog.Lookup(catalog.AllRoomInfo), nil)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "King bed, living area, mini bar, workspace", rows[2].Features)
	assert.Equal(t, 4, rows[2].MaxOccupancy)
	assert.Equal(t, 1, rows[0].MaxOccupancy)
}

func TestMemoryRoomRepository_Query_Errors(t *testing.T) {
	repo := newTestRepo(t)

	testCases := []struct {
		name   string
		tmpl   string
		params catalog.Params
	}{
		{name: "Missing room type", tmpl: catalog.CheckSpecificRoomType, params: catalog.Params{}},
		{name: "Unknown room type", tmpl: catalog.CheckSpecificRoomType, params: catalog.Params{catalog.ParamRoomType: "Penthouse"}},
		{name: "Missing max price", tmpl: catalog.PriceRange, params: catalog.Params{catalog.ParamMinPrice: 1.0}},
		{name: "Non numeric price", tmpl: catalog.PriceRange, params: catalog.Params{catalog.ParamMinPrice: "cheap", catalog.ParamMaxPrice: 2.0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := repo.Query(context.Background(), catalog.Lookup(tc.tmpl), tc.params)
			var queryErr *domain.QueryError
			assert.True(t, errors.As(err, &queryErr))
			assert.Nil(t, rows)
		})
	}
}

func TestMemoryRoomRepository_UnknownTemplate(t *testing.T) {
	repo := newTestRepo(t)

	rows, err := repo.Query(context.Background(), catalog.Lookup("vip_lounge"), nil)

	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMemoryRoomRepository_UpdateAvailability(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	affected, err := repo.UpdateAvailability(ctx, 5, domain.AvailabilityBooked)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	rows, err := repo.Query(ctx, catalog.Lookup(catalog.CheckSpecificRoomType),
		catalog.Params{catalog.ParamRoomType: domain.RoomTypeSuite})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMemoryRoomRepository_UpdateAvailability_UnknownRoom(t *testing.T) {
	repo := newTestRepo(t)
	before := repo.Rooms()

	affected, err := repo.UpdateAvailability(context.Background(), 99, domain.AvailabilityBooked)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	assert.Equal(t, before, repo.Rooms())
}

func TestMemoryRoomRepository_UpdateAvailability_InvalidStatus(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.UpdateAvailability(context.Background(), 1, domain.Availability("Dirty"))

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
