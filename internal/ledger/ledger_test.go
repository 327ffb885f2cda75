// File path: internal/ledger/ledger_test.go
package ledger

import (
	"context"
	"strings"
	"testing"

	"github.com/sanara-labs/helpdesk/internal/sqlite"
)

type mapStore struct {
	balances map[string]sqlite.LeaveBalance
}

func newMapStore() *mapStore {
	return &mapStore{balances: make(map[string]sqlite.LeaveBalance)}
}

func (m *mapStore) LeaveBalanceByEmpID(ctx context.Context, empID string) (sqlite.LeaveBalance, bool, error) {
	balance, ok := m.balances[empID]
	return balance, ok, nil
}

func (m *mapStore) UpsertLeaveBalance(ctx context.Context, balance sqlite.LeaveBalance) error {
	m.balances[balance.EmpID] = balance
	return nil
}

func TestLookupFormatsSummary(t *testing.T) {
	store := newMapStore()
	store.balances["EMP001"] = sqlite.LeaveBalance{
		EmpID: "EMP001", CasualTaken: 2, CasualTotal: 12, SickTaken: 1, SickTotal: 12,
	}
	svc := NewService(store)
	summary, found, err := svc.Lookup(context.Background(), "EMP001")
	if err != nil || !found {
		t.Fatalf("lookup: %v %v", found, err)
	}
	want := "You have taken 2 of 12 casual leaves and 1 of 12 sick leaves. Remaining: 10 casual, 11 sick."
	if summary != want {
		t.Fatalf("unexpected summary %q", summary)
	}
}

func TestLookupMissIsNotError(t *testing.T) {
	svc := NewService(newMapStore())
	_, found, err := svc.Lookup(context.Background(), "EMP404")
	if err != nil {
		t.Fatalf("miss should not error: %v", err)
	}
	if found {
		t.Fatal("expected miss")
	}
}

func TestImportCSV(t *testing.T) {
	store := newMapStore()
	svc := NewService(store)
	csvData := strings.Join([]string{
		"emp_id, casual_taken, casual_total, sick_taken, sick_total",
		"EMP001, 3, 12, 0, 12",
		"EMP002, 1, 12, 4, 12",
		", 9, 9, 9, 9",
	}, "\n")
	imported, err := svc.ImportCSV(context.Background(), strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if imported != 2 {
		t.Fatalf("expected 2 rows imported, got %d", imported)
	}
	if store.balances["EMP002"].SickTaken != 4 {
		t.Fatalf("unexpected balance %+v", store.balances["EMP002"])
	}
}

func TestImportCSVDefaultsTotals(t *testing.T) {
	store := newMapStore()
	svc := NewService(store)
	csvData := "emp_id,casual_taken,sick_taken\nEMP003,5,2\n"
	if _, err := svc.ImportCSV(context.Background(), strings.NewReader(csvData)); err != nil {
		t.Fatalf("import: %v", err)
	}
	balance := store.balances["EMP003"]
	if balance.CasualTotal != 12 || balance.SickTotal != 12 {
		t.Fatalf("totals should default to 12: %+v", balance)
	}
}

func TestImportCSVMissingEmpIDColumn(t *testing.T) {
	svc := NewService(newMapStore())
	if _, err := svc.ImportCSV(context.Background(), strings.NewReader("name,taken\nfoo,1\n")); err == nil {
		t.Fatal("expected error for missing emp_id column")
	}
}
