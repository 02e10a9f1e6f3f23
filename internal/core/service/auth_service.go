package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fittrack/fitness-api/internal/core/domain"
	"github.com/fittrack/fitness-api/internal/core/ports"
)

// LoginThrottle limits repeated failed logins per email (Redis-backed).
type LoginThrottle interface {
	TooMany(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration and cookie-session login.
type AuthService struct {
	repo      ports.UserRepository
	throttle  LoginThrottle // optional; nil disables throttling
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, throttle LoginThrottle, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &AuthService{repo: repo, throttle: throttle, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if !errors.Is(err, domain.ErrUserExists) {
			s.log.Error().Err(err).Msg("register: create user failed")
		}
		return nil, mapStoreError(err)
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and mints a signed session token. A missing
// account and a wrong password both surface as ErrInvalidCredentials so the
// response never confirms whether an email is registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidInput
	}

	if err := s.checkThrottle(ctx, email); err != nil {
		return "", nil, err
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		s.log.Error().Err(err).Msg("login: lookup failed")
		return "", nil, mapStoreError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("login: throttle reset failed")
		}
	}

	s.log.Info().Str("user_id", user.ID).Msg("login succeeded")
	return token, user, nil
}

// checkThrottle fails open: if the throttle backend is unreachable, logins
// proceed and the error is only logged.
func (s *AuthService) checkThrottle(ctx context.Context, email string) error {
	if s.throttle == nil {
		return nil
	}
	tooMany, err := s.throttle.TooMany(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Msg("login: throttle check failed, allowing attempt")
		return nil
	}
	if tooMany {
		return domain.ErrTooManyAttempts
	}
	return nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login: recording failed attempt failed")
	}
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
