package attendance

import (
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CreateAttendanceRequest struct {
	// Employee reference: either the internal id or the business code.
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Present or Absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceRequest struct {
	// Optional employee reference, resolved like CreateAttendanceRequest.EmployeeID.
	EmployeeID string
	FromDate   string
	ToDate     string
	Skip       int
	Limit      int
}

func (r *ListAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FromDate != "" {
		if _, ok := validator.IsValidDate(r.FromDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from_date",
				Message: "from_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.ToDate != "" {
		if _, ok := validator.IsValidDate(r.ToDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to_date",
				Message: "to_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AttendanceFilter is the repository-level filter, with the employee
// reference already resolved to an internal id and the date bounds
// parsed to inclusive calendar days.
type AttendanceFilter struct {
	EmployeeID *string
	FromDate   *time.Time
	ToDate     *time.Time
	Skip       int
	Limit      int
}

type AttendanceResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

// ToResponse converts a stored attendance record into its API
// representation: dates as YYYY-MM-DD, timestamps as RFC3339.
func ToResponse(att Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeCode: att.EmployeeCode,
		EmployeeName: att.EmployeeName,
		Date:         att.Date.Format("2006-01-02"),
		Status:       string(att.Status),
		CreatedAt:    att.CreatedAt.Format(time.RFC3339),
	}
}
