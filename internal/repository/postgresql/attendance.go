package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// attendanceColumns joins each record to its employee. The inner join
// drops records whose employee has been deleted; the live full_name
// wins over the snapshot unless it is empty.
const attendanceColumns = `
	a.id, a.employee_id, a.employee_code,
	COALESCE(NULLIF(e.full_name, ''), a.employee_name) AS employee_name,
	a.date, a.status, a.created_at
`

// List implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	// Build WHERE clause
	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	// Inclusive calendar-day bounds
	if filter.FromDate != nil {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.FromDate)
		argIdx++
	}
	if filter.ToDate != nil {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.ToDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.date DESC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit <= 0 {
		limit = 500
	}
	args = append(args, limit, filter.Skip)

	rows, err := a.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.EmployeeCode, &att.EmployeeName,
			&att.Date, &att.Status, &att.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, att)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetByID implements attendance.AttendanceRepository. A record whose
// employee no longer exists reports not-found, same as a missing row.
func (a *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`, attendanceColumns)

	var att attendance.Attendance
	err := a.db.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.EmployeeID, &att.EmployeeCode, &att.EmployeeName,
		&att.Date, &att.Status, &att.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// ExistsByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM attendance WHERE employee_id = $1 AND date = $2)`

	var exists bool
	if err := a.db.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance: %w", err)
	}
	return exists, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	query := `
		INSERT INTO attendance (employee_id, employee_code, employee_name, date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := a.db.QueryRow(ctx, query,
		newAttendance.EmployeeID,
		newAttendance.EmployeeCode,
		newAttendance.EmployeeName,
		newAttendance.Date,
		newAttendance.Status,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}
