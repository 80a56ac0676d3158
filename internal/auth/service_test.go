package auth

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/homazon/homazon-backend/pkg/config"
	"github.com/homazon/homazon-backend/pkg/db/models"
	pkgerrors "github.com/homazon/homazon-backend/pkg/errors"
)

type stubAuthRepo struct {
	byEmail map[string]*models.User
	dupe    bool
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{byEmail: map[string]*models.User{}}
}

func (s *stubAuthRepo) CreateUser(ctx context.Context, user *models.User) error {
	if _, exists := s.byEmail[user.Email]; exists || s.dupe {
		return gorm.ErrDuplicatedKey
	}
	s.byEmail[user.Email] = user
	return nil
}

func (s *stubAuthRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func testConfigs() (config.JWTConfig, config.PasswordConfig) {
	jwtCfg := config.JWTConfig{Secret: "test-secret", Issuer: "homazon-test", ExpirationMinutes: 60}
	pwCfg := config.PasswordConfig{ArgonMemoryKB: 8, ArgonTime: 1, ArgonParallelism: 1, ArgonSaltLen: 8, ArgonKeyLen: 16}
	return jwtCfg, pwCfg
}

func newAuthTestService(t *testing.T, repo *stubAuthRepo) Service {
	t.Helper()
	jwtCfg, pwCfg := testConfigs()
	svc, err := NewService(repo, jwtCfg, pwCfg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()

	repo := newStubAuthRepo()
	svc := newAuthTestService(t, repo)
	ctx := context.Background()

	result, err := svc.Register(ctx, RegisterInput{
		Email:    "Shopper@Example.com",
		Username: "shopper",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.Token == "" || result.SessionID == "" {
		t.Fatalf("expected token and session id, got %+v", result)
	}
	if result.User.Email != "shopper@example.com" {
		t.Fatalf("expected normalized email, got %q", result.User.Email)
	}

	login, err := svc.Login(ctx, LoginInput{Email: "shopper@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.User.ID != result.User.ID {
		t.Fatal("expected same account on login")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	t.Parallel()

	repo := newStubAuthRepo()
	svc := newAuthTestService(t, repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		Email: "a@example.com", Username: "a", Password: "hunter2hunter2",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Login(ctx, LoginInput{Email: "a@example.com", Password: "wrong-password"})
	if !pkgerrors.Is(err, pkgerrors.CodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	_, err = svc.Login(ctx, LoginInput{Email: "missing@example.com", Password: "whatever"})
	if !pkgerrors.Is(err, pkgerrors.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for unknown email, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	svc := newAuthTestService(t, newStubAuthRepo())
	ctx := context.Background()

	cases := []RegisterInput{
		{Email: "not-an-email", Username: "x", Password: "hunter2hunter2"},
		{Email: "a@example.com", Username: "", Password: "hunter2hunter2"},
		{Email: "a@example.com", Username: "x", Password: "short"},
	}
	for _, input := range cases {
		if _, err := svc.Register(ctx, input); !pkgerrors.Is(err, pkgerrors.CodeValidation) {
			t.Fatalf("expected validation error for %+v, got %v", input, err)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newStubAuthRepo()
	svc := newAuthTestService(t, repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		Email: "a@example.com", Username: "a", Password: "hunter2hunter2",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Register(ctx, RegisterInput{
		Email: "a@example.com", Username: "b", Password: "hunter2hunter2",
	})
	if !pkgerrors.Is(err, pkgerrors.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}
