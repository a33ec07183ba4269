package domain

type Action string

const (
	ActionBookingRequest Action = "booking_request"
	ActionConfirmed      Action = "confirmed"
	ActionCancel         Action = "cancel"
	ActionInfo           Action = "info"
	ActionError          Action = "error"
)

// Response is the structured answer for one turn, before any rephrasing.
type Response struct {
	Action  Action `json:"action"`
	Message string `json:"message"`
}
