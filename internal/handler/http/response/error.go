package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Duplicate unique
// keys intentionally answer 400, not 409, so API clients only have to
// distinguish "your input" (400), "missing" (404) and "store down" (503).
func HandleError(w http.ResponseWriter, err error) {
	// Field-level validation failures: one concatenated message
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, "Validation error. "+validationErrs.Error())
		return
	}

	var codeExists *employee.CodeExistsError
	var alreadyMarked *attendance.AlreadyMarkedError

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrInvalidID):
		BadRequest(w, "Invalid employee id format.")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found.")
	case errors.As(err, &codeExists):
		BadRequest(w, codeExists.Error())
	case errors.Is(err, employee.ErrEmailExists):
		BadRequest(w, "An employee with this email address already exists.")
	case errors.Is(err, employee.ErrDatabaseUnavailable):
		slog.Error("database unavailable", "error", err)
		ServiceUnavailable(w, "Database connection error.")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidID):
		BadRequest(w, "Invalid attendance id format.")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found.")
	case errors.Is(err, attendance.ErrEmployeeNotFound):
		NotFound(w, "Employee not found. Use a valid Employee ID.")
	case errors.Is(err, attendance.ErrNoEmployees):
		BadRequest(w, "No employees yet. Add one above.")
	case errors.Is(err, attendance.ErrFutureDate):
		BadRequest(w, "Cannot mark attendance for a future date. Only today or past dates are allowed.")
	case errors.As(err, &alreadyMarked):
		BadRequest(w, alreadyMarked.Error())

	// Default: log the raw error, return a sanitized message
	default:
		slog.Error("request failed", "error", err)
		msg := "An unexpected error occurred. Please try again later."
		if isDriverError(err) {
			msg = "Database error. Is PostgreSQL running? Check server logs for details."
		}
		InternalServerError(w, msg)
	}
}

func isDriverError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return true
	}
	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}
