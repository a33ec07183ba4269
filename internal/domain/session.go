package domain

// PendingBooking is a quote offered to a session and not yet committed.
type PendingBooking struct {
	RoomID   int64    `json:"room_id"`
	RoomType RoomType `json:"room_type"`
	Price    float64  `json:"price"`
}

// Session carries the state of one conversation between turns.
type Session struct {
	ID      string          `json:"id"`
	Pending *PendingBooking `json:"pending,omitempty"`
}

func (s Session) HasPending() bool {
	return s.Pending != nil
}
