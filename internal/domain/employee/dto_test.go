package employee

import (
	"errors"
	"testing"

	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

func strPtr(s string) *string { return &s }

func TestCreateEmployeeRequestNormalize(t *testing.T) {
	req := CreateEmployeeRequest{
		EmployeeID: "  E1  ",
		FullName:   " Ann Lee ",
		Email:      "  Ann@X.com ",
		Department: strPtr("  Engineering "),
	}
	req.Normalize()

	if req.EmployeeID != "E1" {
		t.Errorf("EmployeeID = %q, want %q", req.EmployeeID, "E1")
	}
	if req.FullName != "Ann Lee" {
		t.Errorf("FullName = %q, want %q", req.FullName, "Ann Lee")
	}
	if req.Email != "ann@x.com" {
		t.Errorf("Email = %q, want %q", req.Email, "ann@x.com")
	}
	if req.Department == nil || *req.Department != "Engineering" {
		t.Errorf("Department = %v, want Engineering", req.Department)
	}
}

func TestCreateEmployeeRequestNormalizeEmptyDepartment(t *testing.T) {
	req := CreateEmployeeRequest{
		EmployeeID: "E1",
		FullName:   "Ann Lee",
		Email:      "ann@x.com",
		Department: strPtr("   "),
	}
	req.Normalize()

	if req.Department != nil {
		t.Errorf("Department = %q, want nil", *req.Department)
	}
}

func TestCreateEmployeeRequestValidate(t *testing.T) {
	cases := []struct {
		name      string
		req       CreateEmployeeRequest
		wantField string
	}{
		{"missing employee_id", CreateEmployeeRequest{FullName: "A", Email: "a@b.co"}, "employee_id"},
		{"missing full_name", CreateEmployeeRequest{EmployeeID: "E1", Email: "a@b.co"}, "full_name"},
		{"missing email", CreateEmployeeRequest{EmployeeID: "E1", FullName: "A"}, "email"},
		{"bad email", CreateEmployeeRequest{EmployeeID: "E1", FullName: "A", Email: "not-an-email"}, "email"},
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

	ok := CreateEmployeeRequest{EmployeeID: "E1", FullName: "Ann Lee", Email: "ann@x.com"}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() on valid request = %v, want nil", err)
	}
}

func TestToResponse(t *testing.T) {
	dept := "HR"
	emp := Employee{
		ID:           "6a1f0a52-0000-7000-8000-000000000001",
		EmployeeCode: "E1",
		FullName:     "Ann Lee",
		Email:        "ann@x.com",
		Department:   &dept,
		IsActive:     true,
	}
	resp := ToResponse(emp)
	if resp.ID != emp.ID || resp.EmployeeID != "E1" || resp.FullName != "Ann Lee" ||
		resp.Email != "ann@x.com" || resp.Department == nil || *resp.Department != "HR" || !resp.IsActive {
		t.Errorf("ToResponse() = %+v", resp)
	}
}
