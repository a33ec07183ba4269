package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Domenick1991/hotelconcierge/internal/domain"
	"github.com/Domenick1991/hotelconcierge/internal/repository"
	"github.com/Domenick1991/hotelconcierge/internal/service/booking"
	"github.com/Domenick1991/hotelconcierge/internal/service/concierge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	repo, err := repository.NewMemoryRoomRepository([]domain.Room{
		{ID: 2, Type: domain.RoomTypeSuite, Price: 300, Availability: domain.AvailabilityAvailable},
	})
	require.NoError(t, err)
	desk := concierge.NewConcierge(repo, booking.NewBookingService(repo))

	var out bytes.Buffer
	run(context.Background(), desk, strings.NewReader("book a suite\n\nyes\nbye\nnever read\n"), &out)

	transcript := out.String()
	assert.True(t, strings.HasPrefix(transcript, "AI: "+greeting))
	assert.Contains(t, transcript, "I found a Suite room available for $300.00 per night.")
	assert.Contains(t, transcript, "AI: How can I help you today? You can ask about:")
	assert.Contains(t, transcript, "Great! I've booked your Suite room.")
	assert.Contains(t, transcript, farewell)
	assert.NotContains(t, transcript, "never read")
	assert.Equal(t, domain.AvailabilityBooked, repo.Rooms()[0].Availability)
}
