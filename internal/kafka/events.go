package kafka

import "time"

const (
	EventBookingRequested = "booking_requested"
	EventBookingConfirmed = "booking_confirmed"
	EventBookingCancelled = "booking_cancelled"
)

type BookingEvent struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	RoomID    int64     `json:"room_id"`
	RoomType  string    `json:"room_type"`
	Price     float64   `json:"price"`
	At        time.Time `json:"at"`
}
