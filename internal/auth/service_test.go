// File path: internal/auth/service_test.go
package auth

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/sanara-labs/helpdesk/internal/sqlite"
)

type fakeStore struct {
	roster map[string]bool
	users  map[string]string
}

func newFakeStore(roster ...string) *fakeStore {
	f := &fakeStore{roster: make(map[string]bool), users: make(map[string]string)}
	for _, id := range roster {
		f.roster[id] = true
	}
	return f
}

func (f *fakeStore) EmployeeExists(ctx context.Context, empID string) (bool, error) {
	return f.roster[empID], nil
}

func (f *fakeStore) UserExists(ctx context.Context, userID string) (bool, error) {
	_, ok := f.users[userID]
	return ok, nil
}

func (f *fakeStore) CreateUser(ctx context.Context, userID, passwordHash string) error {
	f.users[userID] = passwordHash
	return nil
}

func (f *fakeStore) UserByID(ctx context.Context, userID string) (sqlite.User, bool, error) {
	hash, ok := f.users[userID]
	if !ok {
		return sqlite.User{}, false, nil
	}
	return sqlite.User{UserID: userID, PasswordHash: hash}, true, nil
}

func TestVerifyIdentity(t *testing.T) {
	svc := NewService(newFakeStore("EMP001"))
	ok, err := svc.VerifyIdentity(context.Background(), "EMP001")
	if err != nil || !ok {
		t.Fatalf("expected roster hit: %v %v", ok, err)
	}
	ok, err = svc.VerifyIdentity(context.Background(), "EMP404")
	if err != nil {
		t.Fatalf("roster miss should not error: %v", err)
	}
	if ok {
		t.Fatal("expected roster miss")
	}
}

func TestRegisterOutcomes(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore("EMP001")
	svc := NewService(store)

	outcome, err := svc.Register(ctx, "EMP404", "secret123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if outcome != RegisterInvalidIdentity {
		t.Fatalf("expected invalid identity, got %v", outcome)
	}

	outcome, err = svc.Register(ctx, "EMP001", "secret123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if outcome != RegisterCreated {
		t.Fatalf("expected created, got %v", outcome)
	}
	if store.users["EMP001"] == "secret123" {
		t.Fatal("plaintext secret must never be stored")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(store.users["EMP001"]), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}

	outcome, err = svc.Register(ctx, "EMP001", "another")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if outcome != RegisterAlreadyExists {
		t.Fatalf("expected already exists, got %v", outcome)
	}
}

func TestAuthenticateOutcomes(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore("EMP001")
	svc := NewService(store)
	if _, err := svc.Register(ctx, "EMP001", "secret123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	outcome, err := svc.Authenticate(ctx, "EMP001", "secret123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if outcome != AuthOK {
		t.Fatalf("expected success, got %v", outcome)
	}

	outcome, _ = svc.Authenticate(ctx, "EMP001", "wrong")
	if outcome != AuthWrongSecret {
		t.Fatalf("expected wrong secret, got %v", outcome)
	}

	outcome, _ = svc.Authenticate(ctx, "EMP404", "secret123")
	if outcome != AuthNotFound {
		t.Fatalf("expected not found, got %v", outcome)
	}
}
