package employee

import "context"

type EmployeeRepository interface {
	// List returns employees ordered by creation time, newest first.
	List(ctx context.Context, skip, limit int) ([]Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByCode looks an employee up by business code (exact match).
	GetByCode(ctx context.Context, code string) (Employee, error)

	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	Count(ctx context.Context) (int64, error)

	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// Delete removes the employee row. Attendance rows referencing it
	// are left in place; listings drop them via the join.
	Delete(ctx context.Context, id string) error
}
