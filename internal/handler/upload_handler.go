package handler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hrm-web/internal/config"
	"hrm-web/internal/models"
	"hrm-web/internal/service"
	"hrm-web/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	importService *service.ImportService
	excelService  *service.ExcelService
	cfg           *config.Config
}

func NewUploadHandler(importService *service.ImportService, excelService *service.ExcelService, cfg *config.Config) *UploadHandler {
	return &UploadHandler{
		importService: importService,
		excelService:  excelService,
		cfg:           cfg,
	}
}

// Upload accepts a CSV (or Excel) file with a header row and one employee
// candidate per data row, and returns the import report. Accepted rows are
// persisted; rejected rows are listed with all their reasons. A row failure
// never aborts the batch.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	var report *models.ImportReport

	file, err := c.FormFile("file")
	if err != nil {
		// Raw-body uploads carry the CSV content directly.
		if len(c.Body()) == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "File is required", err)
		}
		report, err = h.importService.ImportCSV(c.Body())
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to process file", err)
		}
		return h.respond(c, report)
	}

	if file.Size > int64(h.cfg.UploadMaxSize) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "File size exceeds maximum limit", nil)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".csv", ".txt":
		src, err := file.Open()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to read file", err)
		}
		defer src.Close()
		content, err := io.ReadAll(src)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to read file", err)
		}
		report, err = h.importService.ImportCSV(content)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to process file", err)
		}

	case ".xlsx", ".xls":
		tempPath := filepath.Join(h.cfg.UploadPath, fmt.Sprintf("import_%d%s", time.Now().UnixNano(), ext))
		if err := c.SaveFile(file, tempPath); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save file", err)
		}
		defer os.Remove(tempPath)

		header, rows, err := h.excelService.ParseEmployeeRows(tempPath)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to parse Excel file", err)
		}
		report, err = h.importService.ImportRows(header, rows)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to process file", err)
		}

	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only .csv, .txt, .xlsx and .xls files are allowed", nil)
	}

	return h.respond(c, report)
}

func (h *UploadHandler) respond(c *fiber.Ctx, report *models.ImportReport) error {
	// The error report file is a convenience for the UI; losing it does not
	// fail the import.
	if report.Rejected > 0 {
		errorReportPath := filepath.Join(h.cfg.ExportPath, fmt.Sprintf("import_errors_%s.xlsx", time.Now().Format("20060102_150405")))
		if err := h.excelService.GenerateImportErrorReport(report, errorReportPath); err == nil {
			report.ErrorReportPath = errorReportPath
		}
	}

	message := fmt.Sprintf("Import completed: %d accepted, %d rejected", report.Accepted, report.Rejected)
	return utils.SuccessResponse(c, message, report)
}

// DownloadErrorReport downloads a generated import error report.
func (h *UploadHandler) DownloadErrorReport(c *fiber.Ctx) error {
	filename := c.Params("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Filename is required", nil)
	}

	if !isValidReportFilename(filename) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filename", nil)
	}

	filePath := filepath.Join(h.cfg.ExportPath, filename)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Error report file not found", err)
	}

	return c.Download(filePath, filename)
}

// isValidReportFilename rejects anything that could traverse outside the
// exports directory.
func isValidReportFilename(filename string) bool {
	if len(filename) == 0 || len(filename) > 255 {
		return false
	}

	dangerousChars := []string{"..", "/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	for _, char := range dangerousChars {
		if strings.Contains(filename, char) {
			return false
		}
	}

	return strings.HasPrefix(filename, "import_errors_") && strings.HasSuffix(filename, ".xlsx")
}
