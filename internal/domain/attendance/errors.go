package attendance

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidID          = errors.New("invalid attendance id format")
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// ErrEmployeeNotFound means the employee reference on an attendance
	// request resolved to nothing, by internal id or by business code.
	ErrEmployeeNotFound = errors.New("employee not found")

	ErrNoEmployees = errors.New("no employees exist yet")
	ErrFutureDate  = errors.New("cannot mark attendance for a future date")
)

// AlreadyMarkedError reports a second attendance record for the same
// employee on the same calendar day.
type AlreadyMarkedError struct {
	Date string
}

func (e *AlreadyMarkedError) Error() string {
	return fmt.Sprintf("Attendance already marked for this employee on %s.", e.Date)
}
