package models

import "time"

// ImportRowError collects every reason a single data row was rejected.
// Row numbers are 1-based over data rows; the header row is not counted.
type ImportRowError struct {
	Row          int      `json:"row"`
	EmployeeCode string   `json:"employee_code,omitempty"`
	Reasons      []string `json:"reasons"`
}

// ImportReport is the synchronous result of one bulk upload. It is returned
// to the caller and never persisted.
type ImportReport struct {
	ImportCode      string           `json:"import_code"`
	TotalRows       int              `json:"total_rows"`
	Accepted        int              `json:"accepted"`
	Rejected        int              `json:"rejected"`
	Errors          []ImportRowError `json:"errors"`
	ErrorReportPath string           `json:"error_report_path,omitempty"`
	ImportTime      time.Time        `json:"import_time"`
}
