package postgresql

import (
	"context"

	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

const uniqueViolationCode = "23505"

// schemaStatements bootstraps the two tables and the unique indexes on
// the employee business code and email. Attendance deliberately has no
// foreign key to employees (deleting an employee must leave its records
// behind, to be dropped at read time) and no unique index on
// (employee_id, date): that uniqueness is checked in the service.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		employee_code text NOT NULL,
		full_name text NOT NULL,
		email text NOT NULL,
		department text,
		is_active boolean NOT NULL DEFAULT true,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS employees_employee_code_key ON employees (employee_code)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS employees_email_key ON employees (email)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		employee_id uuid NOT NULL,
		employee_code text NOT NULL,
		employee_name text NOT NULL DEFAULT '',
		date date NOT NULL,
		status text NOT NULL DEFAULT 'Present',
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS attendance_employee_id_date_idx ON attendance (employee_id, date)`,
	`CREATE INDEX IF NOT EXISTS attendance_date_idx ON attendance (date)`,
}

// EnsureSchema creates tables and indexes if they are missing. Callers
// treat a failure as non-fatal: the server still starts and every
// request surfaces its own store error.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
