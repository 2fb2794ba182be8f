package service

import (
	"context"
	"errors"
	"time"

	"github.com/coimpres/coimpres-backend/internal/app/model"
	"github.com/coimpres/coimpres-backend/internal/app/repository"
	"github.com/coimpres/coimpres-backend/internal/session"
	"github.com/coimpres/coimpres-backend/pkg/logger"
	"github.com/coimpres/coimpres-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionInvalid     = errors.New("session is invalid or expired")
)

// AuthService issues and resolves admin sessions. Login returns the
// signed cookie value; the raw session ID never leaves the server.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, cookieValue string) error
	ResolveSession(ctx context.Context, cookieValue string) (*model.User, error)
}

type authService struct {
	userRepo      repository.UserRepository
	sessions      session.Store
	sessionSecret string
	sessionTTL    time.Duration
}

func NewAuthService(userRepo repository.UserRepository, sessions session.Store, sessionSecret string, sessionTTL time.Duration) AuthService {
	return &authService{
		userRepo:      userRepo,
		sessions:      sessions,
		sessionSecret: sessionSecret,
		sessionTTL:    sessionTTL,
	}
}

// Login verifies the credentials and creates a server-side session.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !util.VerifyPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	// Valid credentials without admin capability get the same generic
	// rejection, so the login form never confirms which accounts exist.
	if !user.CanAccessAdmin() {
		return "", ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, user.ID, s.sessionTTL)
	if err != nil {
		return "", err
	}

	token, err := util.SignSessionID(sess.ID, s.sessionSecret, s.sessionTTL)
	if err != nil {
		return "", err
	}

	logger.Info("Admin login", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return token, nil
}

// Logout discards the server-side session. Invalid cookie values are a
// no-op so logout is always safe to call.
func (s *authService) Logout(ctx context.Context, cookieValue string) error {
	sessionID, err := util.VerifySessionToken(cookieValue, s.sessionSecret)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// ResolveSession maps a cookie value back to its user, or
// ErrSessionInvalid when the token is bad, the session expired, or the
// user no longer exists.
func (s *authService) ResolveSession(ctx context.Context, cookieValue string) (*model.User, error) {
	sessionID, err := util.VerifySessionToken(cookieValue, s.sessionSecret)
	if err != nil {
		return nil, ErrSessionInvalid
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}

	user, err := s.userRepo.FindByID(sess.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}
	return user, nil
}
