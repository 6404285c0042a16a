package handler

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"hrm-web/internal/config"
	"hrm-web/internal/models"
	"hrm-web/internal/service"
	"hrm-web/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	employeeService *service.EmployeeService
	excelService    *service.ExcelService
	cfg             *config.Config
}

func NewEmployeeHandler(employeeService *service.EmployeeService, excelService *service.ExcelService, cfg *config.Config) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		excelService:    excelService,
		cfg:             cfg,
	}
}

func filterFromQuery(c *fiber.Ctx) models.EmployeeFilter {
	return models.EmployeeFilter{
		EmployeeCode: c.Query("employee_code"),
		Name:         c.Query("name"),
		Position:     c.Query("position"),
		Department:   c.Query("department"),
		Status:       c.Query("status"),
	}
}

func (h *EmployeeHandler) GetEmployees(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)
	offset := utils.GetOffset(params.Page, params.Limit)
	filter := filterFromQuery(c)

	employees, total, err := h.employeeService.List(params.Limit, offset, filter, params.Search)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve employees", err)
	}

	pagination := utils.CalculatePagination(params.Page, params.Limit, int64(total))

	return utils.PaginatedResponseBuilder(c, "Employees retrieved successfully", fiber.Map{
		"employees": employees,
	}, pagination)
}

func (h *EmployeeHandler) GetEmployee(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid employee ID", err)
	}

	employee, err := h.employeeService.Get(id)
	if errors.Is(err, models.ErrEmployeeNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Employee not found", err)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve employee", err)
	}

	return utils.SuccessResponse(c, "Employee retrieved successfully", employee)
}

func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var req models.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	employee, err := h.employeeService.Create(req)
	if err != nil {
		return h.writeError(c, err, "Failed to create employee")
	}

	return utils.CreatedResponse(c, "Employee created successfully", employee)
}

func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid employee ID", err)
	}

	var req models.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	employee, err := h.employeeService.Update(id, req)
	if err != nil {
		return h.writeError(c, err, "Failed to update employee")
	}

	return utils.SuccessResponse(c, "Employee updated successfully", employee)
}

func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid employee ID", err)
	}

	if err := h.employeeService.Delete(id); err != nil {
		return h.writeError(c, err, "Failed to delete employee")
	}

	return utils.SuccessResponse(c, "Employee deleted successfully", nil)
}

func (h *EmployeeHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.employeeService.Stats(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve stats", err)
	}
	return utils.SuccessResponse(c, "Stats retrieved successfully", stats)
}

func (h *EmployeeHandler) ExportEmployees(c *fiber.Ctx) error {
	employees, _, err := h.employeeService.List(100000, 0, filterFromQuery(c), "")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve employees", err)
	}

	exportFileName := fmt.Sprintf("employees_export_%s.xlsx", time.Now().Format("20060102_150405"))
	exportPath := filepath.Join(h.cfg.ExportPath, exportFileName)

	if err := h.excelService.ExportEmployees(employees, exportPath); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export employees", err)
	}

	return c.Download(exportPath, exportFileName)
}

func (h *EmployeeHandler) DownloadTemplate(c *fiber.Ctx) error {
	templateFileName := "employees_import_template.xlsx"
	templatePath := filepath.Join(h.cfg.ExportPath, templateFileName)

	if err := h.excelService.GenerateEmployeeTemplate(templatePath); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate template", err)
	}

	return c.Download(templatePath, templateFileName)
}

// writeError maps service errors to status codes.
func (h *EmployeeHandler) writeError(c *fiber.Ctx, err error, fallback string) error {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return utils.ValidationErrorResponse(c, validationErr.Reasons)
	case errors.Is(err, models.ErrDuplicateCode):
		return utils.ErrorResponse(c, fiber.StatusConflict, "Employee code already exists", err)
	case errors.Is(err, models.ErrEmployeeNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Employee not found", err)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, fallback, err)
	}
}
