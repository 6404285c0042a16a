package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// Generates sample import files for manual testing of the /upload endpoint.
// Rows 4, 6 and 7 are intentionally invalid (blank name, bad salary,
// duplicated code) so the import report has something to show.
var rows = [][]string{
	{"employee_code", "name", "position", "department", "salary", "status"},
	{"E001", "Jane Smith", "Software Engineer", "Engineering", "80000", "active"},
	{"E002", "John Doe", "HR Manager", "Human Resources", "95000", "active"},
	{"E003", "Alice Wong", "Accountant", "Finance", "70000", "inactive"},
	{"E004", "", "Designer", "Design", "65000", "active"},
	{"E005", "Bob Lee", "QA Engineer", "Engineering", "60000", "active"},
	{"E006", "Carol King", "Recruiter", "Human Resources", "abc", "active"},
	{"E001", "Dave Ng", "Intern", "Engineering", "30000", "active"},
}

func main() {
	if err := writeCSV("sample_employees.csv"); err != nil {
		fmt.Printf("Error writing CSV: %v\n", err)
		os.Exit(1)
	}
	if err := writeXLSX("sample_employees.xlsx"); err != nil {
		fmt.Printf("Error writing XLSX: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Wrote sample_employees.csv and sample_employees.xlsx")
}

func writeCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func writeXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Employees"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return err
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", "F1", headerStyle)

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	return f.SaveAs(path)
}
