package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"hrm-web/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ImportService runs batch imports: every data row is validated and checked
// for code uniqueness, valid rows are persisted one by one, and failures are
// collected into the report without stopping the batch.
type ImportService struct {
	store     EmployeeStore
	validator *RowValidator
	logger    *logrus.Logger
}

func NewImportService(store EmployeeStore, logger *logrus.Logger) *ImportService {
	return &ImportService{
		store:     store,
		validator: NewRowValidator(),
		logger:    logger,
	}
}

// ImportCSV parses comma-delimited UTF-8 content (header row + data rows)
// and imports it. Structural problems (bad encoding, empty file, missing
// header columns) fail the whole request; row-level problems only fail
// their row.
func (s *ImportService) ImportCSV(content []byte) (*models.ImportReport, error) {
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf")) // UTF-8 BOM
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("file is not valid UTF-8")
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1 // short rows surface as per-field reasons
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		rows = append(rows, record)
	}

	return s.ImportRows(header, rows)
}

// ImportRows imports pre-parsed tabular data. The header row maps columns to
// employee fields; each following row is one record candidate. Row numbers in
// the report are 1-based over the data rows.
func (s *ImportService) ImportRows(header []string, rows [][]string) (*models.ImportReport, error) {
	colIndex, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	codes, err := s.store.AllCodes()
	if err != nil {
		return nil, fmt.Errorf("failed to load existing employee codes: %w", err)
	}
	checker := NewUniquenessChecker(codes)

	report := &models.ImportReport{
		ImportCode: fmt.Sprintf("IMPORT-%s", uuid.New().String()[:8]),
		TotalRows:  len(rows),
		Errors:     []models.ImportRowError{},
		ImportTime: time.Now(),
	}

	for i, row := range rows {
		rowNum := i + 1

		if isBlankRow(row) {
			report.TotalRows--
			continue
		}

		raw := RawRow{}
		for name, idx := range colIndex {
			if idx < len(row) {
				raw[name] = row[idx]
			}
		}

		employee, reasons := s.validator.Validate(raw)
		if employee.EmployeeCode != "" {
			if reason := checker.Check(employee.EmployeeCode).Reason(employee.EmployeeCode); reason != "" {
				reasons = append(reasons, reason)
			}
		}

		if len(reasons) == 0 {
			err := s.store.Create(&employee)
			if errors.Is(err, models.ErrDuplicateCode) {
				// Lost a race against a concurrent writer; the unique
				// constraint is the final authority.
				reasons = append(reasons, CodeDuplicateInStore.Reason(employee.EmployeeCode))
			} else if err != nil {
				return nil, fmt.Errorf("failed to persist row %d: %w", rowNum, err)
			}
		}

		if len(reasons) > 0 {
			report.Rejected++
			report.Errors = append(report.Errors, models.ImportRowError{
				Row:          rowNum,
				EmployeeCode: employee.EmployeeCode,
				Reasons:      reasons,
			})
			continue
		}

		checker.Reserve(employee.EmployeeCode)
		report.Accepted++
	}

	s.logger.WithFields(logrus.Fields{
		"import_code": report.ImportCode,
		"total_rows":  report.TotalRows,
		"accepted":    report.Accepted,
		"rejected":    report.Rejected,
	}).Info("Batch import finished")

	return report, nil
}

// mapHeader matches header cells to employee field names. Cells are matched
// case-insensitively with spaces collapsed to underscores, so "Employee Code"
// and "employee_code" both work.
func mapHeader(header []string) (map[string]int, error) {
	colIndex := map[string]int{}
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		name = strings.ReplaceAll(name, " ", "_")
		for _, col := range EmployeeColumns {
			if name == col {
				colIndex[col] = i
				break
			}
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("file header is missing required column(s): %s", strings.Join(missing, ", "))
	}
	return colIndex, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
