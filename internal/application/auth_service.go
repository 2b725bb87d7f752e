package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/feedback-platform/internal/domain/entity"
	repo "github.com/oksasatya/feedback-platform/internal/domain/repository"
	"github.com/oksasatya/feedback-platform/pkg/apperrors"
	"github.com/oksasatya/feedback-platform/pkg/helpers"
)

type AuthService struct {
	tx     txRunner
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(store repo.Store, jwt *helpers.JWTManager, timeout time.Duration, logger *logrus.Logger) *AuthService {
	return &AuthService{
		tx:     txRunner{Store: store, Timeout: timeout, Logger: logger},
		JWT:    jwt,
		Logger: logger,
	}
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
}

// NormalizeEmail lower-cases and trims an email for lookup and storage
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Authenticate validates email/password and returns the user without issuing tokens.
// Unknown emails and wrong passwords fail with the same error.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	var u *entity.User
	err := s.tx.read(ctx, "authenticate", func(r repo.Repos) error {
		found, err := r.Users.GetByEmail(ctx, NormalizeEmail(email))
		if errors.Is(err, repo.ErrNotFound) {
			return nil
		}
		u = found
		return err
	})
	if err != nil {
		return nil, err
	}
	hash := ""
	if u != nil {
		hash = u.PasswordHash
	}
	if !helpers.CompareHashAndPassword(hash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	token, exp, err := s.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return nil, apperrors.NewInternalError("token generation failed", err)
	}
	return &LoginResult{AccessToken: token, ExpiresAt: exp, User: u}, nil
}

// CurrentUser validates a bearer token and loads its user fresh from the
// store. Nothing is cached between requests.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	claims, err := s.JWT.ParseAccessToken(token)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Debug("access token rejected")
		}
		return nil, ErrInvalidToken
	}
	var u *entity.User
	err = s.tx.read(ctx, "load current user", func(r repo.Repos) error {
		found, err := r.Users.GetByID(ctx, claims.UserID)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		u = found
		return err
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}
