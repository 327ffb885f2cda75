// File path: internal/sqlite/store_test.go
package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := Config{Path: filepath.Join(t.TempDir(), "helpdesk.db")}
	cfg.applyDefaults()
	store, err := OpenWithConfig(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestEmployeeExists(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	if err := store.InsertEmployee(ctx, Employee{EmpID: "EMP001", FullName: "A Person", Department: "HR"}); err != nil {
		t.Fatalf("insert employee: %v", err)
	}
	ok, err := store.EmployeeExists(ctx, "EMP001")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !ok {
		t.Fatal("expected EMP001 to exist")
	}
	ok, err = store.EmployeeExists(ctx, "EMP999")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if ok {
		t.Fatal("EMP999 should not exist")
	}
}

func TestUserLifecycle(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	if err := store.InsertEmployee(ctx, Employee{EmpID: "EMP002"}); err != nil {
		t.Fatalf("insert employee: %v", err)
	}
	exists, err := store.UserExists(ctx, "EMP002")
	if err != nil {
		t.Fatalf("user exists: %v", err)
	}
	if exists {
		t.Fatal("user should not exist before registration")
	}
	if err := store.CreateUser(ctx, "EMP002", "hash-bytes"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	user, ok, err := store.UserByID(ctx, "EMP002")
	if err != nil || !ok {
		t.Fatalf("user by id: %v %v", ok, err)
	}
	if user.PasswordHash != "hash-bytes" {
		t.Fatalf("unexpected hash %q", user.PasswordHash)
	}
	if _, ok, _ := store.UserByID(ctx, "EMP404"); ok {
		t.Fatal("missing user must report not found")
	}
}

func TestLeaveLedgerUpsert(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	if err := store.InsertEmployee(ctx, Employee{EmpID: "EMP003"}); err != nil {
		t.Fatalf("insert employee: %v", err)
	}
	balance := LeaveBalance{EmpID: "EMP003", CasualTaken: 2, CasualTotal: 12, SickTaken: 1, SickTotal: 12}
	if err := store.UpsertLeaveBalance(ctx, balance); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	balance.CasualTaken = 3
	if err := store.UpsertLeaveBalance(ctx, balance); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	got, ok, err := store.LeaveBalanceByEmpID(ctx, "EMP003")
	if err != nil || !ok {
		t.Fatalf("lookup: %v %v", ok, err)
	}
	if got.CasualTaken != 3 || got.SickTaken != 1 {
		t.Fatalf("unexpected balance %+v", got)
	}
}
