// File path: internal/sqlite/types.go
package sqlite

import "time"

// Employee represents a roster row from employee_details.
type Employee struct {
	EmpID      string    `db:"emp_id"`
	FullName   string    `db:"full_name"`
	Department string    `db:"department"`
	CreatedAt  time.Time `db:"created_at"`
}

// User represents a registered credential row. PasswordHash holds the bcrypt
// digest, never the plaintext secret.
type User struct {
	UserID       string    `db:"user_id"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// LeaveBalance represents a leave ledger row keyed by employee identity.
type LeaveBalance struct {
	EmpID       string    `db:"emp_id"`
	CasualTaken int       `db:"casual_taken"`
	CasualTotal int       `db:"casual_total"`
	SickTaken   int       `db:"sick_taken"`
	SickTotal   int       `db:"sick_total"`
	UpdatedAt   time.Time `db:"updated_at"`
}
