package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/msomdec/taskdeck/internal/domain"
	"github.com/msomdec/taskdeck/internal/repository/sqlite"
	"github.com/msomdec/taskdeck/internal/service"
)

const testJWTSecret = "test-secret-key-for-unit-tests-0123456789"

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestAuthService(t *testing.T, db *sqlite.DB, ttl time.Duration) *service.AuthService {
	t.Helper()
	// Cost 4 keeps the tests fast.
	hasher := service.NewPasswordHasher(4)
	return service.NewAuthService(db.Users(), hasher, testJWTSecret, ttl)
}

func TestAuthService_SignUpThenSignIn(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuthService(t, db, time.Hour)
	ctx := context.Background()

	user, err := auth.SignUp(ctx, "a@x.com", "secret123", "Ada", "Lovelace")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected user ID to be set")
	}

	token, err := auth.SignIn(ctx, "a@x.com", "secret123")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	claims, err := auth.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected subject %d, got %d", user.ID, claims.UserID)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("expected email a@x.com, got %s", claims.Email)
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuthService(t, db, time.Hour)
	ctx := context.Background()

	if _, err := auth.SignUp(ctx, "dup@x.com", "secret123", "", ""); err != nil {
		t.Fatalf("first SignUp: %v", err)
	}

	_, err := auth.SignUp(ctx, "dup@x.com", "other456pw", "", "")
	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if len(conflict.Fields) != 1 || conflict.Fields[0] != "email" {
		t.Fatalf("expected conflict to name email, got %v", conflict.Fields)
	}
}

func TestAuthService_SignUp_InvalidInput(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuthService(t, db, time.Hour)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "secret123"},
		{"empty password", "a@x.com", ""},
		{"short password", "a@x.com", "short"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.SignUp(ctx, tc.email, tc.password, "", "")
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_SignIn_FailuresAreUniform(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuthService(t, db, time.Hour)
	ctx := context.Background()

	if _, err := auth.SignUp(ctx, "real@x.com", "secret123", "", ""); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	// Unknown account and wrong password must be the same error so callers
	// cannot probe which emails are registered.
	_, errUnknown := auth.SignIn(ctx, "ghost@x.com", "secret123")
	_, errWrongPw := auth.SignIn(ctx, "real@x.com", "wrongpass1")

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPw)
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("expected identical errors, got %q vs %q", errUnknown, errWrongPw)
	}
}

func TestAuthService_VerifyToken_Garbage(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuthService(t, db, time.Hour)

	for _, token := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		if _, err := auth.VerifyToken(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestAuthService_VerifyToken_WrongSecret(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuthService(t, db, time.Hour)
	ctx := context.Background()

	if _, err := auth.SignUp(ctx, "a@x.com", "secret123", "", ""); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	token, err := auth.SignIn(ctx, "a@x.com", "secret123")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	other := service.NewAuthService(db.Users(), service.NewPasswordHasher(4),
		"a-completely-different-signing-secret-42", time.Hour)
	if _, err := other.VerifyToken(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestAuthService_VerifyToken_Expired(t *testing.T) {
	db := newTestDB(t)
	// Negative TTL issues tokens that are already expired.
	auth := newTestAuthService(t, db, -time.Minute)
	ctx := context.Background()

	if _, err := auth.SignUp(ctx, "a@x.com", "secret123", "", ""); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	token, err := auth.SignIn(ctx, "a@x.com", "secret123")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	if _, err := auth.VerifyToken(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestAuthService_GetUser(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuthService(t, db, time.Hour)
	ctx := context.Background()

	user, err := auth.SignUp(ctx, "profile@x.com", "secret123", "Pro", "File")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	got, err := auth.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Email != "profile@x.com" || got.FirstName != "Pro" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := auth.GetUser(ctx, 9999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
