package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fittrack/fitness-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users   map[string]*domain.User // keyed by email
	nextID  int
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	created := cloneUser(user)
	created.ID = "user_" + strconv.Itoa(r.nextID)
	r.nextID++
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

type stubThrottle struct {
	tooMany  bool
	checkErr error
	failures int
	resets   int
}

func (t *stubThrottle) TooMany(context.Context, string) (bool, error) {
	return t.tooMany, t.checkErr
}

func (t *stubThrottle) RecordFailure(context.Context, string) error {
	t.failures++
	return nil
}

func (t *stubThrottle) Reset(context.Context, string) error {
	t.resets++
	return nil
}

func newAuthService(repo *stubUserRepo, throttle LoginThrottle) *AuthService {
	return NewAuthService(repo, throttle, "secret", time.Hour, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	stored := repo.users["alice@example.com"]
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	cases := [][3]string{
		{"", "a@example.com", "pass"},
		{"Alice", "", "pass"},
		{"Alice", "a@example.com", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Register(context.Background(), tc[0], tc[1], tc[2]); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %v, got %v", tc, err)
		}
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	if _, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Bobby", "bob@example.com", "other"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one stored user, got %d", len(repo.users))
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{}
	svc := newAuthService(repo, throttle)

	registered, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.ID != registered.ID {
		t.Fatalf("login id %q does not match registered id %q", user.ID, registered.ID)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected throttle reset after success, got %d", throttle.resets)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != registered.ID {
		t.Fatalf("expected sub %q, got %v", registered.ID, claims["sub"])
	}
	if claims["email"] != "carol@example.com" {
		t.Fatalf("unexpected email claim: %v", claims["email"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim")
	}
}

// A wrong password and an unknown email must be the same failure: the
// response never reveals whether an account exists.
func TestAuthService_Login_NoUserEnumeration(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{}
	svc := newAuthService(repo, throttle)

	_, _ = svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass")

	_, _, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, _, noUser := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(noUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noUser)
	}
	if throttle.failures != 2 {
		t.Fatalf("expected both failures recorded, got %d", throttle.failures)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	if _, _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@example.com", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubThrottle{tooMany: true})

	_, _ = svc.Register(context.Background(), "Eve", "eve@example.com", "pass")

	if _, _, err := svc.Login(context.Background(), "eve@example.com", "pass"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

// A throttle backend failure must not block logins.
func TestAuthService_Login_ThrottleFailsOpen(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubThrottle{checkErr: errors.New("redis down")})

	_, _ = svc.Register(context.Background(), "Frank", "frank@example.com", "pass")

	if _, _, err := svc.Login(context.Background(), "frank@example.com", "pass"); err != nil {
		t.Fatalf("expected fail-open login, got %v", err)
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("connection reset")
	svc := newAuthService(repo, nil)

	_, _, err := svc.Login(context.Background(), "a@example.com", "pass")
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
