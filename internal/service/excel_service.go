package service

import (
	"fmt"
	"strings"

	"hrm-web/internal/models"

	"github.com/xuri/excelize/v2"
)

type ExcelService struct{}

func NewExcelService() *ExcelService {
	return &ExcelService{}
}

// ParseEmployeeRows reads the first sheet of an Excel file and returns the
// header row plus data rows for the importer.
func (s *ExcelService) ParseEmployeeRows(filePath string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("no sheets found in Excel file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("file is empty")
	}

	return rows[0], rows[1:], nil
}

// ExportEmployees writes the given employees to an Excel file.
func (s *ExcelService) ExportEmployees(employees []models.Employee, filePath string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Employees"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	headers := []string{"Employee Code", "Name", "Position", "Department", "Salary", "Status"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", getColumnName(i))
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIdx, employee := range employees {
		row := rowIdx + 2
		values := []interface{}{
			employee.EmployeeCode,
			employee.Name,
			employee.Position,
			employee.Department,
			employee.Salary,
			employee.Status,
		}
		for colIdx, value := range values {
			cell := fmt.Sprintf("%s%d", getColumnName(colIdx), row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", getColumnName(len(headers)-1)), headerStyle)

	columnWidths := []float64{15, 25, 25, 20, 12, 10}
	for i, width := range columnWidths {
		colName := getColumnName(i)
		f.SetColWidth(sheetName, colName, colName, width)
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	return f.SaveAs(filePath)
}

// GenerateEmployeeTemplate creates a template Excel file for bulk import.
func (s *ExcelService) GenerateEmployeeTemplate(filePath string) error {
	sampleEmployees := []models.Employee{
		{
			EmployeeCode: "E001",
			Name:         "Jane Smith",
			Position:     "Software Engineer",
			Department:   "Engineering",
			Salary:       80000,
			Status:       models.StatusActive,
		},
		{
			EmployeeCode: "E002",
			Name:         "John Doe",
			Position:     "HR Manager",
			Department:   "Human Resources",
			Salary:       95000,
			Status:       models.StatusActive,
		},
	}
	return s.ExportEmployees(sampleEmployees, filePath)
}

// GenerateImportErrorReport writes the rejected rows of an import to an
// Excel file the user can download and fix.
func (s *ExcelService) GenerateImportErrorReport(report *models.ImportReport, filePath string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Import Errors"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	headers := []string{"Row", "Employee Code", "Reasons"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", getColumnName(i))
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIdx, rowErr := range report.Errors {
		row := rowIdx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), rowErr.Row)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), rowErr.EmployeeCode)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), strings.Join(rowErr.Reasons, "; "))
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFD0D0"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", "C1", headerStyle)

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 18)
	f.SetColWidth(sheetName, "C", "C", 80)

	// Summary below the table
	summaryRow := len(report.Errors) + 3
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow),
		fmt.Sprintf("Import %s: %d accepted, %d rejected of %d rows",
			report.ImportCode, report.Accepted, report.Rejected, report.TotalRows))

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	return f.SaveAs(filePath)
}

func getColumnName(index int) string {
	result := ""
	for index >= 0 {
		result = string(rune('A'+(index%26))) + result
		index = index/26 - 1
	}
	return result
}
