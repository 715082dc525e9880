package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd", "ann@x.com"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-01-32", "01-01-2023", "2023/01/01", "not-a-date", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateValue(t *testing.T) {
	d, ok := IsValidDate("2024-01-15")
	if !ok {
		t.Fatal("expected valid date")
	}
	if d.Year() != 2024 || d.Month() != 1 || d.Day() != 15 {
		t.Errorf("IsValidDate parsed %v, want 2024-01-15", d)
	}
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"Present", "Absent"}
	if !IsInSlice("Present", statuses) {
		t.Error("IsInSlice(Present) = false, want true")
	}
	if IsInSlice("present", statuses) {
		t.Error("IsInSlice(present) = true, want false")
	}
	if IsInSlice("", statuses) {
		t.Error("IsInSlice(\"\") = true, want false")
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employee_id", Message: "employee_id is required"},
		{Field: "email", Message: "invalid email format"},
	}
	want := "employee_id: employee_id is required; email: invalid email format"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
