package attendance

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

const defaultListLimit = 500

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// resolveEmployee maps a caller-supplied reference to an employee.
// A reference shaped like a store id is tried as one first, with any
// miss swallowed; the business code lookup is the fallback. Clients can
// therefore use either representation interchangeably.
func (s *AttendanceServiceImpl) resolveEmployee(ctx context.Context, ref string) (employee.Employee, error) {
	ref = strings.TrimSpace(ref)

	if id, err := uuid.Parse(ref); err == nil {
		emp, err := s.employeeRepo.GetByID(ctx, id.String())
		if err == nil {
			return emp, nil
		}
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, err
		}
	}

	emp, err := s.employeeRepo.GetByCode(ctx, ref)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, attendance.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, req attendance.ListAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	filter := attendance.AttendanceFilter{
		Skip:  req.Skip,
		Limit: req.Limit,
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}

	if req.EmployeeID != "" {
		emp, err := s.resolveEmployee(ctx, req.EmployeeID)
		if err != nil {
			return nil, err
		}
		filter.EmployeeID = &emp.ID
	}

	if req.FromDate != "" {
		from, _ := validator.IsValidDate(req.FromDate)
		filter.FromDate = &from
	}
	if req.ToDate != "" {
		to, _ := validator.IsValidDate(req.ToDate)
		filter.ToDate = &to
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, attendance.ToResponse(att))
	}
	return responses, nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidID
	}

	att, err := s.attendanceRepo.GetByID(ctx, parsed.String())
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(att), nil
}

// CreateAttendance implements attendance.AttendanceService. Checks run
// in a fixed order: empty-store guard, future-date rejection, employee
// resolution, then the one-record-per-day probe. The last is a plain
// read-then-write; two racing creates can both pass it.
func (s *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	count, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if count == 0 {
		return attendance.AttendanceResponse{}, attendance.ErrNoEmployees
	}

	date, _ := validator.IsValidDate(req.Date)
	if date.After(today()) {
		return attendance.AttendanceResponse{}, attendance.ErrFutureDate
	}

	emp, err := s.resolveEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	exists, err := s.attendanceRepo.ExistsByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if exists {
		return attendance.AttendanceResponse{}, &attendance.AlreadyMarkedError{Date: date.Format("2006-01-02")}
	}

	status := attendance.Status(req.Status)
	if status == "" {
		status = attendance.StatusPresent
	}

	newAttendance := attendance.Attendance{
		EmployeeID:   emp.ID,
		EmployeeCode: emp.EmployeeCode,
		EmployeeName: emp.FullName,
		Date:         date,
		Status:       status,
	}

	created, err := s.attendanceRepo.Create(ctx, newAttendance)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(created), nil
}

// today returns the server's current calendar date at UTC midnight,
// comparable to dates parsed from "YYYY-MM-DD" strings.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
