package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Domenick1991/hotelconcierge/internal/catalog"
	"github.com/Domenick1991/hotelconcierge/internal/domain"
)

type MemoryRoomRepository struct {
	mu    sync.RWMutex
	rooms []domain.Room
	byID  map[int64]int
}

func NewMemoryRoomRepository(rooms []domain.Room) (*MemoryRoomRepository, error) {
	sorted := make([]domain.Room, len(rooms))
	copy(sorted, rooms)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[int64]int, len(sorted))
	for i, r := range sorted {
		if _, dup := byID[r.ID]; dup {
			return nil, &domain.LoadError{Column: "id", Err: fmt.Errorf("duplicate room id %d", r.ID)}
		}
		byID[r.ID] = i
	}
	return &MemoryRoomRepository{rooms: sorted, byID: byID}, nil
}

func (r *MemoryRoomRepository) Query(ctx context.Context, tmpl catalog.Template, params catalog.Params) ([]domain.Row, error) {
	if tmpl.IsEmpty() {
		return nil, nil
	}
	args, err := catalog.Bind(tmpl, params)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		if room.Availability != domain.AvailabilityAvailable {
			continue
		}
		if tmpl.ByType && room.Type != args.RoomType {
			continue
		}
		if tmpl.ByPrice && (room.Price < args.MinPrice || room.Price > args.MaxPrice) {
			continue
		}
		matched = append(matched, room)
	}

	var rows []domain.Row
	if tmpl.Grouped {
		rows = group(matched)
	} else {
		if tmpl.Limit > 0 {
			sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
		}
		rows = make([]domain.Row, 0, len(matched))
		for _, room := range matched {
			rows = append(rows, domain.Row{ID: room.ID, Type: room.Type, Price: room.Price})
		}
	}
	if tmpl.Limit > 0 && len(rows) > tmpl.Limit {
		rows = rows[:tmpl.Limit]
	}
	return catalog.Annotate(tmpl, rows), nil
}

func (r *MemoryRoomRepository) UpdateAvailability(ctx context.Context, roomID int64, status domain.Availability) (int64, error) {
	if _, err := domain.ParseAvailability(string(status)); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.byID[roomID]
	if !ok {
		return 0, nil
	}
	r.rooms[i].Availability = status
	return 1, nil
}

// Rooms returns a snapshot of the inventory in id order.
func (r *MemoryRoomRepository) Rooms() []domain.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Room, len(r.rooms))
	copy(out, r.rooms)
	return out
}

type groupKey struct {
	roomType domain.RoomType
	price    float64
}

func group(rooms []domain.Room) []domain.Row {
	counts := make(map[groupKey]int)
	for _, room := range rooms {
		counts[groupKey{room.Type, room.Price}]++
	}
	rows := make([]domain.Row, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, domain.Row{Type: k.roomType, Price: k.price, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Price != rows[j].Price {
			return rows[i].Price < rows[j].Price
		}
		return rows[i].Type < rows[j].Type
	})
	return rows
}

var _ RoomRepository = (*MemoryRoomRepository)(nil)
