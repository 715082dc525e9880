package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
// Reads join the employees table: a record whose employee has been
// deleted is treated as absent (orphan-drop), and the display name
// prefers the live employee row over the stored snapshot.
type AttendanceRepository interface {
	// List retrieves attendance records sorted by date descending.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// ExistsByEmployeeAndDate is the one-record-per-employee-per-day
	// pre-check. There is no unique index backing it; see the service.
	ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error)

	Create(ctx context.Context, newAttendance Attendance) (Attendance, error)
}
