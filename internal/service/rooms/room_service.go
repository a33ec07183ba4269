package rooms

import (
	"context"
	"fmt"

	"github.com/Domenick1991/hotelconcierge/internal/catalog"
	"github.com/Domenick1991/hotelconcierge/internal/domain"
	"github.com/Domenick1991/hotelconcierge/internal/repository"
)

// RoomUseCase exposes the catalog templates as plain reads.
type RoomUseCase interface {
	Availability(ctx context.Context) ([]domain.Row, error)
	AvailabilityByType(ctx context.Context, roomType domain.RoomType) ([]domain.Row, error)
	PriceRange(ctx context.Context, minPrice, maxPrice float64) ([]domain.Row, error)
	Cheapest(ctx context.Context) ([]domain.Row, error)
	Features(ctx context.Context) ([]domain.Row, error)
	Info(ctx context.Context) ([]domain.Row, error)
}

type RoomService struct {
	repo repository.RoomRepository
}

func NewRoomService(repo repository.RoomRepository) *RoomService {
	return &RoomService{repo: repo}
}

func (s *RoomService) Availability(ctx context.Context) ([]domain.Row, error) {
	return s.run(ctx, catalog.CheckAllAvailability, nil)
}

func (s *RoomService) AvailabilityByType(ctx context.Context, roomType domain.RoomType) ([]domain.Row, error) {
	return s.run(ctx, catalog.CheckSpecificRoomType, catalog.Params{catalog.ParamRoomType: roomType})
}

func (s *RoomService) PriceRange(ctx context.Context, minPrice, maxPrice float64) ([]domain.Row, error) {
	if minPrice > maxPrice {
		return nil, &domain.QueryError{Template: catalog.PriceRange, Param: catalog.ParamMinPrice, Reason: fmt.Sprintf("must not exceed %s", catalog.ParamMaxPrice)}
	}
	return s.run(ctx, catalog.PriceRange, catalog.Params{catalog.ParamMinPrice: minPrice, catalog.ParamMaxPrice: maxPrice})
}

func (s *RoomService) Cheapest(ctx context.Context) ([]domain.Row, error) {
	return s.run(ctx, catalog.CheapestAvailable, nil)
}

func (s *RoomService) Features(ctx context.Context) ([]domain.Row, error) {
	return s.run(ctx, catalog.RoomFeatures, nil)
}

func (s *RoomService) Info(ctx context.Context) ([]domain.Row, error) {
	return s.run(ctx, catalog.AllRoomInfo, nil)
}

func (s *RoomService) run(ctx context.Context, name string, params catalog.Params) ([]domain.Row, error) {
	rows, err := s.repo.Query(ctx, catalog.Lookup(name), params)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.Row{}
	}
	return rows, nil
}

var _ RoomUseCase = (*RoomService)(nil)
