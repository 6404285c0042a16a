package service

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"hrm-web/internal/models"
)

// RawRow is one unvalidated data row keyed by column name. CSV and Excel
// cells stay strings until they pass through the validator.
type RawRow map[string]string

// EmployeeColumns is the expected header, in template order. Status is the
// only optional column.
var EmployeeColumns = []string{"employee_code", "name", "position", "department", "salary", "status"}

// RequiredColumns must all be present in an uploaded file's header.
var RequiredColumns = []string{"employee_code", "name", "position", "department", "salary"}

type RowValidator struct{}

func NewRowValidator() *RowValidator {
	return &RowValidator{}
}

// Validate coerces one raw row into an Employee. Every applicable check runs
// before returning, so a single row can report multiple reasons. The returned
// employee is only meaningful when reasons is empty.
func (v *RowValidator) Validate(row RawRow) (models.Employee, []string) {
	var reasons []string

	code := strings.TrimSpace(row["employee_code"])
	name := strings.TrimSpace(row["name"])
	position := strings.TrimSpace(row["position"])
	department := strings.TrimSpace(row["department"])
	salaryStr := strings.TrimSpace(row["salary"])
	statusStr := strings.TrimSpace(row["status"])

	if code == "" {
		reasons = append(reasons, "employee_code is required")
	} else if containsWhitespace(code) {
		reasons = append(reasons, "employee_code invalid format")
	}

	if name == "" {
		reasons = append(reasons, "name is required")
	}
	if position == "" {
		reasons = append(reasons, "position is required")
	}
	if department == "" {
		reasons = append(reasons, "department is required")
	}

	salary := 0
	if salaryStr == "" {
		reasons = append(reasons, "salary is required")
	} else {
		parsed, ok := parseSalary(salaryStr)
		if !ok {
			reasons = append(reasons, fmt.Sprintf("salary '%s' is not a valid non-negative integer", salaryStr))
		} else {
			salary = parsed
		}
	}

	status := models.StatusActive
	if statusStr != "" {
		normalized := strings.ToLower(statusStr)
		if normalized != models.StatusActive && normalized != models.StatusInactive {
			reasons = append(reasons, fmt.Sprintf("status '%s' is not one of: active, inactive", statusStr))
		} else {
			status = normalized
		}
	}

	employee := models.Employee{
		EmployeeCode: code,
		Name:         name,
		Position:     position,
		Department:   department,
		Salary:       salary,
		Status:       status,
	}
	return employee, reasons
}

// ValidateRequest validates a single-record create/update body the same way
// a one-row batch would be.
func (v *RowValidator) ValidateRequest(req models.EmployeeRequest) (models.Employee, []string) {
	row := RawRow{
		"employee_code": req.EmployeeCode,
		"name":          req.Name,
		"position":      req.Position,
		"department":    req.Department,
		"salary":        strconv.Itoa(req.Salary),
		"status":        req.Status,
	}
	return v.Validate(row)
}

func containsWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

// parseSalary accepts plain integers and integral decimals ("80000.0") the
// way spreadsheet exports tend to format numbers.
func parseSalary(s string) (int, bool) {
	s = strings.ReplaceAll(s, ",", "")
	if n, err := strconv.Atoi(s); err == nil {
		return n, n >= 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, false
	}
	n := int(f)
	return n, n >= 0
}
