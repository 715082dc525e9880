package employee

import (
	"context"

	"github.com/google/uuid"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
)

const defaultListLimit = 500

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, skip, limit int) ([]employee.EmployeeResponse, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	employees, err := s.employeeRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return employee.EmployeeResponse{}, employee.ErrInvalidID
	}

	emp, err := s.employeeRepo.GetByID(ctx, parsed.String())
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService. Uniqueness of the
// business code and email is probed first for precise error messages;
// the unique indexes remain the backstop for concurrent creates.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	codeExists, err := s.employeeRepo.ExistsByCode(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if codeExists {
		return employee.EmployeeResponse{}, &employee.CodeExistsError{Code: req.EmployeeID}
	}

	emailExists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if emailExists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	newEmployee := employee.Employee{
		EmployeeCode: req.EmployeeID,
		FullName:     req.FullName,
		Email:        req.Email,
		Department:   req.Department,
		IsActive:     true,
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(created), nil
}

// DeleteEmployee implements employee.EmployeeService. No cascade:
// attendance records keep their snapshot and drop out of listings.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return employee.ErrInvalidID
	}
	return s.employeeRepo.Delete(ctx, parsed.String())
}
