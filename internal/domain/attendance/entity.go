package attendance

import (
	"time"
)

type Attendance struct {
	ID         string
	EmployeeID string
	// Snapshot of the employee's code and name taken at creation time,
	// kept so a record stays displayable without a join.
	EmployeeCode string
	EmployeeName string
	Date         time.Time
	Status       Status
	CreatedAt    time.Time
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

var Statuses = []string{string(StatusPresent), string(StatusAbsent)}
