package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
	"github.com/srgjo27/ticketing_client/internal/core/ports"
)

type SessionService struct {
	provider ports.SessionProvider
}

func NewSessionService(provider ports.SessionProvider) *SessionService {
	return &SessionService{provider: provider}
}

func (s *SessionService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	if email == "" || password == "" {
		return domain.Session{}, errors.New("email and password are required")
	}

	if err := s.provider.Login(ctx, email, password); err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	return s.Current(ctx)
}

// Current resolves the signed-in user into an explicit Session value.
func (s *SessionService) Current(ctx context.Context) (domain.Session, error) {
	user, err := s.provider.CurrentUser(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("current user: %w", err)
	}

	if user == nil {
		return domain.Session{}, domain.ErrUnauthenticated
	}

	session := domain.NewSession(*user)
	if err := session.Validate(); err != nil {
		return domain.Session{}, err
	}

	return session, nil
}
