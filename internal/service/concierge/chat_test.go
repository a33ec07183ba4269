package concierge

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/hotelconcierge/internal/cache"
	"github.com/Domenick1991/hotelconcierge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Load(ctx context.Context, id string) (domain.Session, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockSessionStore) Save(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestChatService_Chat_KeepsPendingAcrossTurns(t *testing.T) {
	c, repo := newScenario(t)
	store := cache.NewMemorySessionStore()
	service := NewChatService(c, store)
	ctx := context.Background()

	session, resp, err := service.Chat(ctx, "guest-1", "book a suite")
	require.NoError(t, err)
	assert.Equal(t, domain.ActionBookingRequest, resp.Action)
	assert.Equal(t, "guest-1", session.ID)

	other, resp, err := service.Chat(ctx, "guest-2", "yes")
	require.NoError(t, err)
	assert.Equal(t, domain.ActionInfo, resp.Action)
	assert.False(t, other.HasPending())

	_, resp, err = service.Chat(ctx, "guest-1", "yes")
	require.NoError(t, err)
	assert.Equal(t, domain.ActionConfirmed, resp.Action)
	assert.Equal(t, domain.AvailabilityBooked, repo.Rooms()[1].Availability)

	stored, err := store.Load(ctx, "guest-1")
	require.NoError(t, err)
	assert.False(t, stored.HasPending())
}

func TestChatService_Chat_NewSessionID(t *testing.T) {
	c, _ := newScenario(t)
	service := NewChatService(c, cache.NewMemorySessionStore())
	service.newID = func() string { return "generated" }

	session, _, err := service.Chat(context.Background(), "", "hello")

	require.NoError(t, err)
	assert.Equal(t, "generated", session.ID)
}

func TestChatService_Chat_StoreErrors(t *testing.T) {
	c, _ := newScenario(t)
	ctx := context.Background()

	t.Run("Load", func(t *testing.T) {
		store := &MockSessionStore{}
		store.On("Load", ctx, "guest").Return(domain.Session{}, errors.New("redis timeout")).Once()

		_, _, err := NewChatService(c, store).Chat(ctx, "guest", "hi")

		assert.ErrorContains(t, err, "load session")
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Save", func(t *testing.T) {
		store := &MockSessionStore{}
		store.On("Load", ctx, "guest").Return(domain.Session{ID: "guest"}, nil).Once()
		store.On("Save", ctx, domain.Session{ID: "guest"}).Return(errors.New("redis timeout")).Once()

		_, _, err := NewChatService(c, store).Chat(ctx, "guest", "hi")

		assert.ErrorContains(t, err, "save session")
		store.AssertExpectations(t)
	})
}

func TestChatService_EndSession(t *testing.T) {
	c, _ := newScenario(t)
	store := &MockSessionStore{}
	ctx := context.Background()
	store.On("Delete", ctx, "guest").Return(nil).Once()

	assert.NoError(t, NewChatService(c, store).EndSession(ctx, "guest"))
	store.AssertExpectations(t)
}
