package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

func TestCreateAttendanceRequestValidate(t *testing.T) {
	cases := []struct {
		name      string
		req       CreateAttendanceRequest
		wantField string
	}{
		{"missing employee_id", CreateAttendanceRequest{Date: "2024-01-01"}, "employee_id"},
		{"missing date", CreateAttendanceRequest{EmployeeID: "E1"}, "date"},
		{"bad date", CreateAttendanceRequest{EmployeeID: "E1", Date: "01/01/2024"}, "date"},
		{"bad status", CreateAttendanceRequest{EmployeeID: "E1", Date: "2024-01-01", Status: "Late"}, "status"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			var vErrs validator.ValidationErrors
			if !errors.As(err, &vErrs) {
				t.Fatalf("Validate() = %v, want ValidationErrors", err)
			}
			found := false
			for _, e := range vErrs {
				if e.Field == c.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("ValidationErrors %v missing field %q", vErrs, c.wantField)
			}
		})
	}

	for _, status := range []string{"", "Present", "Absent"} {
		req := CreateAttendanceRequest{EmployeeID: "E1", Date: "2024-01-01", Status: status}
		if err := req.Validate(); err != nil {
			t.Errorf("Validate() with status %q = %v, want nil", status, err)
		}
	}
}

func TestListAttendanceRequestValidate(t *testing.T) {
	ok := ListAttendanceRequest{FromDate: "2024-01-01", ToDate: "2024-01-31"}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	empty := ListAttendanceRequest{}
	if err := empty.Validate(); err != nil {
		t.Errorf("Validate() on empty filter = %v, want nil", err)
	}

	bad := ListAttendanceRequest{FromDate: "yesterday"}
	var vErrs validator.ValidationErrors
	if err := bad.Validate(); !errors.As(err, &vErrs) {
		t.Errorf("Validate() = %v, want ValidationErrors", err)
	}
}

func TestToResponse(t *testing.T) {
	created := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	att := Attendance{
		ID:           "7b2e1c63-0000-7000-8000-000000000002",
		EmployeeID:   "6a1f0a52-0000-7000-8000-000000000001",
		EmployeeCode: "E1",
		EmployeeName: "Ann Lee",
		Date:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:       StatusPresent,
		CreatedAt:    created,
	}
	resp := ToResponse(att)
	if resp.Date != "2024-01-01" {
		t.Errorf("Date = %q, want 2024-01-01", resp.Date)
	}
	if resp.Status != "Present" {
		t.Errorf("Status = %q, want Present", resp.Status)
	}
	if resp.CreatedAt != "2024-01-02T15:04:05Z" {
		t.Errorf("CreatedAt = %q, want RFC3339", resp.CreatedAt)
	}
	if resp.EmployeeCode != "E1" || resp.EmployeeName != "Ann Lee" {
		t.Errorf("ToResponse() = %+v", resp)
	}
}

func TestAlreadyMarkedErrorMessage(t *testing.T) {
	err := &AlreadyMarkedError{Date: "2024-01-01"}
	want := "Attendance already marked for this employee on 2024-01-01."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
