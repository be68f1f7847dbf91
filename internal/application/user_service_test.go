package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gpolanco/finvesta/internal/domain/domainerrors"
	"github.com/gpolanco/finvesta/pkg/helpers"
)

func newUserFixture() (*UserService, *fakeCategoryRepo) {
	categoryRepo := newFakeCategoryRepo()
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	// Redis and RabbitMQ are nil: sessions and email enqueueing are skipped.
	svc := NewUserService(newFakeUserRepo(), NewCategoryService(categoryRepo, nil), jwt, nil, nil, nil)
	return svc, categoryRepo
}

func TestUserServiceRegister(t *testing.T) {
	svc, categoryRepo := newUserFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "s3cret-pass", Name: "Ana"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID == "" {
		t.Fatal("expected assigned id")
	}
	if u.Password == "s3cret-pass" {
		t.Fatal("password stored in plain text")
	}

	// Registration provisions the default category set.
	seeded, err := categoryRepo.FindByUserID(ctx, u.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seeded) != len(defaultCategorySeed) {
		t.Fatalf("seeded %d categories, want %d", len(seeded), len(defaultCategorySeed))
	}
}

func TestUserServiceRegisterRejectsTakenEmail(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	in := RegisterInput{Email: "ana@example.com", Password: "s3cret-pass", Name: "Ana"}
	if _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Register(ctx, in); !errors.Is(err, domainerrors.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestUserServiceAuthenticate(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "s3cret-pass", Name: "Ana"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Authenticate(ctx, "ana@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("valid credentials rejected: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "ana@example.com", "wrong"); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody@example.com", "s3cret-pass"); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestUserServiceLoginAndRefresh(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "s3cret-pass", Name: "Ana"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	login, pair, err := svc.Login(ctx, "ana@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if login.UserID != u.ID {
		t.Fatalf("login user = %q, want %q", login.UserID, u.ID)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}
	if !pair.RefreshTokenExpiry.After(pair.AccessTokenExpiry) {
		t.Fatal("refresh token should outlive the access token")
	}

	rotated, userID, err := svc.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if userID != u.ID {
		t.Fatalf("refresh user = %q, want %q", userID, u.ID)
	}
	if rotated.AccessToken == "" {
		t.Fatal("expected a new access token")
	}

	if _, _, err := svc.Refresh(ctx, "not-a-token"); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	// An access token is not accepted as a refresh token.
	if _, _, err := svc.Refresh(ctx, pair.AccessToken); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestUserServiceProfile(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "s3cret-pass", Name: "Ana"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetProfile(ctx, u.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != "ana@example.com" {
		t.Fatalf("email = %q", got.Email)
	}

	updated, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileInput{Name: "Ana María"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Ana María" {
		t.Fatalf("name = %q", updated.Name)
	}

	if _, err := svc.GetProfile(ctx, "missing"); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}
