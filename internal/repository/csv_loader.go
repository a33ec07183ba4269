package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/Domenick1991/hotelconcierge/internal/domain"
)

var requiredColumns = []string{"id", "type", "price", "availability"}

// LoadRoomsFile reads a room CSV from disk. Every failure is a *domain.LoadError.
func LoadRoomsFile(path string) ([]domain.Room, error) {
	if path == "" {
		return nil, &domain.LoadError{Err: errors.New("data source path is required")}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.LoadError{Err: err}
	}
	defer f.Close()
	return LoadRooms(f)
}

// LoadRooms parses a CSV with at least the id, type, price and availability
// columns. Extra columns are ignored.
func LoadRooms(r io.Reader) ([]domain.Room, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &domain.LoadError{Err: fmt.Errorf("read header: %w", err)}
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		index[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.LoadError{Err: fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))}
	}

	var rooms []domain.Room
	seen := make(map[int64]bool)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &domain.LoadError{Line: line, Err: err}
		}

		room, col, err := parseRoom(record, index)
		if err != nil {
			return nil, &domain.LoadError{Line: line, Column: col, Err: err}
		}
		if seen[room.ID] {
			return nil, &domain.LoadError{Line: line, Column: "id", Err: fmt.Errorf("duplicate room id %d", room.ID)}
		}
		seen[room.ID] = true
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func parseRoom(record []string, index map[string]int) (domain.Room, string, error) {
	field := func(col string) string { return strings.TrimSpace(record[index[col]]) }

	id, err := strconv.ParseInt(field("id"), 10, 64)
	if err != nil {
		return domain.Room{}, "id", err
	}
	roomType, err := domain.ParseRoomType(field("type"))
	if err != nil {
		return domain.Room{}, "type", err
	}
	price, err := strconv.ParseFloat(field("price"), 64)
	if err != nil {
		return domain.Room{}, "price", err
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return domain.Room{}, "price", errors.New("price must be a finite number")
	}
	if price < 0 {
		return domain.Room{}, "price", errors.New("price must not be negative")
	}
	availability, err := domain.ParseAvailability(field("availability"))
	if err != nil {
		return domain.Room{}, "availability", err
	}
	return domain.Room{ID: id, Type: roomType, Price: price, Availability: availability}, "", nil
}
