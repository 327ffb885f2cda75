// File path: internal/auth/service.go
package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sanara-labs/helpdesk/internal/common"
	"github.com/sanara-labs/helpdesk/internal/sqlite"
)

// CredentialStore is the storage capability the service needs: an employee
// roster existence check plus the registered-user credential rows.
type CredentialStore interface {
	EmployeeExists(ctx context.Context, empID string) (bool, error)
	UserExists(ctx context.Context, userID string) (bool, error)
	CreateUser(ctx context.Context, userID, passwordHash string) error
	UserByID(ctx context.Context, userID string) (sqlite.User, bool, error)
}

// RegisterOutcome enumerates the results of a registration attempt.
type RegisterOutcome int

const (
	RegisterCreated RegisterOutcome = iota
	RegisterInvalidIdentity
	RegisterAlreadyExists
)

// AuthOutcome enumerates the results of an authentication attempt.
type AuthOutcome int

const (
	AuthOK AuthOutcome = iota
	AuthNotFound
	AuthWrongSecret
)

// Service gates chatbot access: employees verify their roster identity,
// register a password, and log in. Secrets are stored only as bcrypt hashes.
type Service struct {
	store CredentialStore
}

func NewService(store CredentialStore) *Service {
	return &Service{store: store}
}

// VerifyIdentity reports whether the employee ID exists in the roster.
func (s *Service) VerifyIdentity(ctx context.Context, empID string) (bool, error) {
	empID = strings.TrimSpace(empID)
	if empID == "" {
		return false, fmt.Errorf("employee id required")
	}
	return s.store.EmployeeExists(ctx, empID)
}

// Register creates a credential row for a roster-verified employee. The
// secret is hashed with bcrypt before it touches storage.
func (s *Service) Register(ctx context.Context, empID, secret string) (RegisterOutcome, error) {
	logger := common.Logger()
	empID = strings.TrimSpace(empID)
	if empID == "" || secret == "" {
		return 0, fmt.Errorf("employee id and password required")
	}
	onRoster, err := s.store.EmployeeExists(ctx, empID)
	if err != nil {
		return 0, fmt.Errorf("verify roster: %w", err)
	}
	if !onRoster {
		logger.Warn("auth: registration rejected, not on roster", "emp_id", empID)
		return RegisterInvalidIdentity, nil
	}
	exists, err := s.store.UserExists(ctx, empID)
	if err != nil {
		return 0, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return RegisterAlreadyExists, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	if err := s.store.CreateUser(ctx, empID, string(hash)); err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	logger.Info("auth: user registered", "emp_id", empID)
	return RegisterCreated, nil
}

// Authenticate compares the secret against the stored bcrypt hash.
func (s *Service) Authenticate(ctx context.Context, empID, secret string) (AuthOutcome, error) {
	empID = strings.TrimSpace(empID)
	if empID == "" || secret == "" {
		return 0, fmt.Errorf("employee id and password required")
	}
	user, found, err := s.store.UserByID(ctx, empID)
	if err != nil {
		return 0, fmt.Errorf("load user: %w", err)
	}
	if !found {
		return AuthNotFound, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(secret)); err != nil {
		return AuthWrongSecret, nil
	}
	return AuthOK, nil
}
