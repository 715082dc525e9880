package employee

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidID           = errors.New("invalid employee id format")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmailExists         = errors.New("an employee with this email address already exists")
	ErrDatabaseUnavailable = errors.New("database unavailable")
)

// CodeExistsError reports a duplicate business code. The offending code
// is carried so the API can echo it back.
type CodeExistsError struct {
	Code string
}

func (e *CodeExistsError) Error() string {
	return fmt.Sprintf("Employee ID %s already exists.", e.Code)
}
