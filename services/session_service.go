package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"hotel-portal/client"
	"hotel-portal/models"
)

// SessionService is the one place that owns the shared auth state: the
// backend bearer token and the user it belongs to, stored under an opaque
// portal session id. Nothing else mutates sessions.
type SessionService struct {
	api      AuthAPI
	sessions SessionRepo
}

func NewSessionService(api AuthAPI, sessions SessionRepo) *SessionService {
	return &SessionService{api: api, sessions: sessions}
}

func (s *SessionService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	token, user, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, token, user)
}

func (s *SessionService) Register(ctx context.Context, name, email, password string) (*models.Session, error) {
	token, user, err := s.api.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, token, user)
}

func (s *SessionService) create(ctx context.Context, token string, user models.User) (*models.Session, error) {
	sess := &models.Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      user,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	logrus.WithField("user", user.ID).Info("session created")
	return sess, nil
}

// Resolve turns a portal session id into the stored session; unknown ids are
// not an error worth logging, guests browse without one.
func (s *SessionService) Resolve(ctx context.Context, id string) (*models.Session, error) {
	return s.sessions.Get(ctx, id)
}

func (s *SessionService) Logout(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

// Refresh re-fetches the user from the auth backend and rewrites the stored
// session. A backend 401 means the token died server-side: the session is
// dropped and the caller gets session_expired.
func (s *SessionService) Refresh(ctx context.Context, sess *models.Session) (*models.Session, error) {
	user, err := s.api.Me(ctx, sess.Token)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			_ = s.sessions.Delete(ctx, sess.ID)
		}
		return nil, err
	}
	sess.User = user
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}
