// Package reply turns query results and booking outcomes into structured responses.
// Every function is pure.
package reply

import (
	"fmt"
	"strings"

	"github.com/Domenick1991/hotelconcierge/internal/domain"
)

const helpMessage = "How can I help you today? You can ask about:\n" +
	"- Room availability\n" +
	"- Room prices and features\n" +
	"- Book a room\n" +
	"- Room details and information"

func info(msg string) domain.Response {
	return domain.Response{Action: domain.ActionInfo, Message: msg}
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func Help() domain.Response {
	return info(helpMessage)
}

func Error(err error) domain.Response {
	return domain.Response{
		Action:  domain.ActionError,
		Message: fmt.Sprintf("I apologize, but I encountered an error: %v", err),
	}
}

func Quote(p domain.PendingBooking) domain.Response {
	msg := fmt.Sprintf("I found a %s room available for %s per night. Would you like to confirm this booking? (yes/no)",
		p.RoomType, money(p.Price))
	return domain.Response{Action: domain.ActionBookingRequest, Message: msg}
}

func NoRoomsOfType(t domain.RoomType) domain.Response {
	return domain.Response{
		Action:  domain.ActionError,
		Message: fmt.Sprintf("I apologize, but there are no %s rooms available at the moment.", t),
	}
}

func AskRoomType() domain.Response {
	return domain.Response{
		Action:  domain.ActionError,
		Message: "What type of room would you like to book? (Single, Double, or Suite)",
	}
}

func Confirmed(p domain.PendingBooking) domain.Response {
	msg := fmt.Sprintf("Great! I've booked your %s room. The total cost is %s per night. Thank you for choosing our hotel!",
		p.RoomType, money(p.Price))
	return domain.Response{Action: domain.ActionConfirmed, Message: msg}
}

func Cancelled() domain.Response {
	return domain.Response{
		Action:  domain.ActionCancel,
		Message: "Booking cancelled. Is there anything else I can help you with?",
	}
}

// TypeAvailability reports the rows of check_specific_room_type.
func TypeAvailability(t domain.RoomType, rows []domain.Row) domain.Response {
	if len(rows) == 0 {
		return info(fmt.Sprintf("Sorry, there are no available %s rooms at the moment.", t))
	}
	return info(fmt.Sprintf("Yes, we have %d %s room(s) available at %s per night.", len(rows), t, money(rows[0].Price)))
}

// Availability reports the rows of check_all_availability.
func Availability(rows []domain.Row) domain.Response {
	if len(rows) == 0 {
		return info("Sorry, there are no available rooms at the moment.")
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s: %d room(s) at %s", r.Type, r.Count, money(r.Price)))
	}
	return info("Available rooms:\n" + strings.Join(lines, "\n"))
}

// Cheapest reports the row of cheapest_available, or help when nothing is free.
func Cheapest(rows []domain.Row) domain.Response {
	if len(rows) == 0 {
		return Help()
	}
	return info(fmt.Sprintf("Our most economical option is a %s room at %s per night.", rows[0].Type, money(rows[0].Price)))
}

// Prices reports room_features rows as a price list.
func Prices(rows []domain.Row) domain.Response {
	return featureList("Room prices and features:", rows)
}

// Features reports room_features rows.
func Features(rows []domain.Row) domain.Response {
	return featureList("Room features:", rows)
}

func featureList(title string, rows []domain.Row) domain.Response {
	if len(rows) == 0 {
		return Help()
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s (%s): %s", r.Type, money(r.Price), r.Features))
	}
	return info(title + "\n" + strings.Join(lines, "\n"))
}

// Details reports all_room_info rows.
func Details(rows []domain.Row) domain.Response {
	if len(rows) == 0 {
		return Help()
	}
	blocks := make([]string, 0, len(rows))
	for _, r := range rows {
		blocks = append(blocks, fmt.Sprintf("%s - %s/night\n  Available: %d room(s)\n  Features: %s\n  Max Occupancy: %d people",
			r.Type, money(r.Price), r.Count, r.Features, r.MaxOccupancy))
	}
	return info("Room Details:\n" + strings.Join(blocks, "\n"))
}
