// File path: internal/sqlite/queries.go
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// EmployeeExists reports whether the roster contains the exact employee ID.
func (s *Store) EmployeeExists(ctx context.Context, empID string) (bool, error) {
	if s == nil || s.db == nil {
		return false, fmt.Errorf("sqlite store not initialised")
	}
	empID = strings.TrimSpace(empID)
	if empID == "" {
		return false, fmt.Errorf("employee id required")
	}
	var count int
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM employee_details WHERE emp_id = ?`, empID); err != nil {
		return false, fmt.Errorf("count employees: %w", err)
	}
	return count > 0, nil
}

// InsertEmployee adds a roster row, replacing any existing entry. Used by
// the roster importer and tests.
func (s *Store) InsertEmployee(ctx context.Context, emp Employee) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sqlite store not initialised")
	}
	if strings.TrimSpace(emp.EmpID) == "" {
		return fmt.Errorf("employee id required")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO employee_details (emp_id, full_name, department) VALUES (?, ?, ?)
                ON CONFLICT(emp_id) DO UPDATE SET full_name = excluded.full_name, department = excluded.department`,
		strings.TrimSpace(emp.EmpID), emp.FullName, emp.Department)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// UserExists reports whether a credential row already exists for the user.
func (s *Store) UserExists(ctx context.Context, userID string) (bool, error) {
	if s == nil || s.db == nil {
		return false, fmt.Errorf("sqlite store not initialised")
	}
	var count int
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users WHERE user_id = ?`, strings.TrimSpace(userID)); err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return count > 0, nil
}

// CreateUser stores a credential row. The caller supplies the already-hashed
// secret.
func (s *Store) CreateUser(ctx context.Context, userID, passwordHash string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sqlite store not initialised")
	}
	if strings.TrimSpace(userID) == "" || passwordHash == "" {
		return fmt.Errorf("user id and password hash required")
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO users (user_id, password_hash) VALUES (?, ?)`,
		strings.TrimSpace(userID), passwordHash); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// UserByID fetches a credential row. The second return is false when no row
// exists.
func (s *Store) UserByID(ctx context.Context, userID string) (User, bool, error) {
	if s == nil || s.db == nil {
		return User{}, false, fmt.Errorf("sqlite store not initialised")
	}
	var user User
	err := s.db.GetContext(ctx, &user, `SELECT user_id, password_hash FROM users WHERE user_id = ?`, strings.TrimSpace(userID))
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, fmt.Errorf("select user: %w", err)
	}
	return user, true, nil
}

// UpsertLeaveBalance writes a leave ledger row for an employee.
func (s *Store) UpsertLeaveBalance(ctx context.Context, balance LeaveBalance) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sqlite store not initialised")
	}
	if strings.TrimSpace(balance.EmpID) == "" {
		return fmt.Errorf("employee id required")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO leave_ledger (emp_id, casual_taken, casual_total, sick_taken, sick_total, updated_at)
                VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
                ON CONFLICT(emp_id) DO UPDATE SET
                        casual_taken = excluded.casual_taken,
                        casual_total = excluded.casual_total,
                        sick_taken = excluded.sick_taken,
                        sick_total = excluded.sick_total,
                        updated_at = CURRENT_TIMESTAMP`,
		strings.TrimSpace(balance.EmpID), balance.CasualTaken, balance.CasualTotal, balance.SickTaken, balance.SickTotal)
	if err != nil {
		return fmt.Errorf("upsert leave balance: %w", err)
	}
	return nil
}

// LeaveBalanceByEmpID fetches the ledger row for an employee. The second
// return is false when no row exists.
func (s *Store) LeaveBalanceByEmpID(ctx context.Context, empID string) (LeaveBalance, bool, error) {
	if s == nil || s.db == nil {
		return LeaveBalance{}, false, fmt.Errorf("sqlite store not initialised")
	}
	var balance LeaveBalance
	err := s.db.GetContext(ctx, &balance, `SELECT emp_id, casual_taken, casual_total, sick_taken, sick_total FROM leave_ledger WHERE emp_id = ?`, strings.TrimSpace(empID))
	if errors.Is(err, sql.ErrNoRows) {
		return LeaveBalance{}, false, nil
	}
	if err != nil {
		return LeaveBalance{}, false, fmt.Errorf("select leave balance: %w", err)
	}
	return balance, true, nil
}
