package domain

import "strings"

type RoomType string

const (
	RoomTypeSingle RoomType = "Single"
	RoomTypeDouble RoomType = "Double"
	RoomTypeSuite  RoomType = "Suite"
)

// RoomTypes is the fixed lookup order used wherever a type is searched for in text.
var RoomTypes = []RoomType{RoomTypeSingle, RoomTypeDouble, RoomTypeSuite}

func ParseRoomType(s string) (RoomType, error) {
	for _, t := range RoomTypes {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", ErrInvalidRoomType
}

type Availability string

const (
	AvailabilityAvailable Availability = "Available"
	AvailabilityBooked    Availability = "Booked"
)

func ParseAvailability(s string) (Availability, error) {
	switch Availability(strings.TrimSpace(s)) {
	case AvailabilityAvailable:
		return AvailabilityAvailable, nil
	case AvailabilityBooked:
		return AvailabilityBooked, nil
	}
	return "", ErrInvalidStatus
}

type Room struct {
	ID           int64
	Type         RoomType
	Price        float64
	Availability Availability
}

// Row is one result line of a catalog query. Which fields are set depends on the template.
type Row struct {
	ID           int64    `json:"id,omitempty"`
	Type         RoomType `json:"type"`
	Price        float64  `json:"price"`
	Count        int      `json:"count,omitempty"`
	Features     string   `json:"features,omitempty"`
	MaxOccupancy int      `json:"max_occupancy,omitempty"`
}
