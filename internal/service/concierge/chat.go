package concierge

import (
	"context"
	"fmt"

	"github.com/Domenick1991/hotelconcierge/internal/domain"
	"github.com/google/uuid"
)

type SessionStore interface {
	Load(ctx context.Context, id string) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Delete(ctx context.Context, id string) error
}

type ChatUseCase interface {
	Chat(ctx context.Context, sessionID, text string) (domain.Session, domain.Response, error)
	EndSession(ctx context.Context, sessionID string) error
}

// ChatService threads stored sessions through the concierge, one turn at a time.
type ChatService struct {
	concierge *Concierge
	sessions  SessionStore
	newID     func() string
}

func NewChatService(concierge *Concierge, sessions SessionStore) *ChatService {
	return &ChatService{concierge: concierge, sessions: sessions, newID: uuid.NewString}
}

// Chat runs one turn. An empty sessionID starts a new session. Only session
// store failures are returned as errors.
func (s *ChatService) Chat(ctx context.Context, sessionID, text string) (domain.Session, domain.Response, error) {
	if sessionID == "" {
		sessionID = s.newID()
	}
	session, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return domain.Session{}, domain.Response{}, fmt.Errorf("load session: %w", err)
	}
	session.ID = sessionID

	session, resp := s.concierge.ProcessUtterance(ctx, session, text)
	if err := s.sessions.Save(ctx, session); err != nil {
		return domain.Session{}, domain.Response{}, fmt.Errorf("save session: %w", err)
	}
	return session, resp, nil
}

func (s *ChatService) EndSession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

var _ ChatUseCase = (*ChatService)(nil)
