// File path: internal/ledger/ledger.go
package ledger

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sanara-labs/helpdesk/internal/common"
	"github.com/sanara-labs/helpdesk/internal/sqlite"
)

// Store is the ledger persistence capability, satisfied by the SQLite store.
type Store interface {
	LeaveBalanceByEmpID(ctx context.Context, empID string) (sqlite.LeaveBalance, bool, error)
	UpsertLeaveBalance(ctx context.Context, balance sqlite.LeaveBalance) error
}

// Service answers leave-balance questions for a known employee identity from
// the attendance ledger.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Lookup formats a one-line balance summary for the employee. The second
// return is false when the ledger has no row for the identity.
func (s *Service) Lookup(ctx context.Context, empID string) (string, bool, error) {
	empID = strings.TrimSpace(empID)
	if empID == "" {
		return "", false, fmt.Errorf("employee id required")
	}
	balance, found, err := s.store.LeaveBalanceByEmpID(ctx, empID)
	if err != nil {
		return "", false, fmt.Errorf("ledger lookup: %w", err)
	}
	if !found {
		return "", false, nil
	}
	casualLeft := balance.CasualTotal - balance.CasualTaken
	sickLeft := balance.SickTotal - balance.SickTaken
	if casualLeft < 0 {
		casualLeft = 0
	}
	if sickLeft < 0 {
		sickLeft = 0
	}
	summary := fmt.Sprintf(
		"You have taken %d of %d casual leaves and %d of %d sick leaves. Remaining: %d casual, %d sick.",
		balance.CasualTaken, balance.CasualTotal, balance.SickTaken, balance.SickTotal, casualLeft, sickLeft)
	return summary, true, nil
}

// ImportCSV loads ledger rows from a CSV export of the attendance sheet.
// Expected header: emp_id, casual_taken, casual_total, sick_taken,
// sick_total (column order is taken from the header row). Returns the number
// of rows imported.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	logger := common.Logger()
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("parse ledger csv: %w", err)
	}
	if len(records) < 2 {
		return 0, nil
	}
	index := make(map[string]int, len(records[0]))
	for i, header := range records[0] {
		index[strings.ToLower(strings.TrimSpace(header))] = i
	}
	if _, ok := index["emp_id"]; !ok {
		return 0, fmt.Errorf("ledger csv missing emp_id column")
	}
	imported := 0
	for rowNum, row := range records[1:] {
		empID := cell(row, index, "emp_id")
		if empID == "" {
			continue
		}
		balance := sqlite.LeaveBalance{
			EmpID:       empID,
			CasualTaken: cellInt(row, index, "casual_taken"),
			CasualTotal: cellIntDefault(row, index, "casual_total", 12),
			SickTaken:   cellInt(row, index, "sick_taken"),
			SickTotal:   cellIntDefault(row, index, "sick_total", 12),
		}
		if err := s.store.UpsertLeaveBalance(ctx, balance); err != nil {
			return imported, fmt.Errorf("import row %d: %w", rowNum+2, err)
		}
		imported++
	}
	logger.Info("ledger: csv import complete", "rows", imported)
	return imported, nil
}

func cell(row []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func cellInt(row []string, index map[string]int, name string) int {
	return cellIntDefault(row, index, name, 0)
}

func cellIntDefault(row []string, index map[string]int, name string, fallback int) int {
	value := cell(row, index, name)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
