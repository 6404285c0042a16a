package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrm-web/internal/config"
	"hrm-web/internal/models"
	"hrm-web/internal/service"
	"hrm-web/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newUploadTestApp(t *testing.T, store *stubStore) *fiber.App {
	t.Helper()
	cfg := &config.Config{
		ExportPath:    t.TempDir(),
		UploadPath:    t.TempDir(),
		UploadMaxSize: 10 << 20,
	}
	importService := service.NewImportService(store, utils.GetLogger())
	h := NewUploadHandler(importService, service.NewExcelService(), cfg)

	app := fiber.New()
	app.Post("/upload", h.Upload)
	app.Get("/upload/error-report/:filename", h.DownloadErrorReport)
	return app
}

func multipartCSVRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

type uploadResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    models.ImportReport `json:"data"`
}

func TestUpload_CSV(t *testing.T) {
	store := &stubStore{}
	app := newUploadTestApp(t, store)

	content := "employee_code,name,position,department,salary,status\n" +
		"E001,Jane Smith,Engineer,Engineering,80000,active\n" +
		"E002,,Manager,Sales,95000,active\n" +
		"E003,Alice Wong,Accountant,Finance,70000,active\n" +
		"E001,Dave Ng,Intern,Engineering,30000,active\n" +
		"E004,Bob Lee,QA Engineer,Engineering,60000,active\n"

	resp, err := app.Test(multipartCSVRequest(t, "employees.csv", content))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body uploadResponse
	decodeBody(t, resp, &body)
	require.True(t, body.Success)
	require.Equal(t, 3, body.Data.Accepted)
	require.Equal(t, 2, body.Data.Rejected)
	require.Len(t, body.Data.Errors, 2)
	require.Equal(t, 2, body.Data.Errors[0].Row)
	require.Equal(t, 4, body.Data.Errors[1].Row)
	require.NotEmpty(t, body.Data.ErrorReportPath)

	require.Len(t, store.employees, 3)
}

func TestUpload_RawBody(t *testing.T) {
	store := &stubStore{}
	app := newUploadTestApp(t, store)

	content := "employee_code,name,position,department,salary,status\n" +
		"E001,Jane Smith,Engineer,Engineering,80000,active\n"

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(content))
	req.Header.Set("Content-Type", "text/csv")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body uploadResponse
	decodeBody(t, resp, &body)
	require.Equal(t, 1, body.Data.Accepted)
	require.Len(t, store.employees, 1)
}

func TestUpload_HeaderOnly(t *testing.T) {
	app := newUploadTestApp(t, &stubStore{})

	resp, err := app.Test(multipartCSVRequest(t, "employees.csv", "employee_code,name,position,department,salary,status\n"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body uploadResponse
	decodeBody(t, resp, &body)
	require.Equal(t, 0, body.Data.Accepted)
	require.Equal(t, 0, body.Data.Rejected)
	require.Empty(t, body.Data.Errors)
	require.Empty(t, body.Data.ErrorReportPath)
}

func TestUpload_MissingHeaderColumnIsFatal(t *testing.T) {
	app := newUploadTestApp(t, &stubStore{})

	resp, err := app.Test(multipartCSVRequest(t, "employees.csv", "employee_code,name\nE001,Jane\n"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpload_RejectsUnknownExtension(t *testing.T) {
	app := newUploadTestApp(t, &stubStore{})

	resp, err := app.Test(multipartCSVRequest(t, "employees.pdf", "whatever"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpload_EmptyRequest(t *testing.T) {
	app := newUploadTestApp(t, &stubStore{})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/upload", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDownloadErrorReport_RejectsTraversal(t *testing.T) {
	app := newUploadTestApp(t, &stubStore{})

	for _, filename := range []string{"import_errors_..secret.xlsx", "nope.xlsx", "import_errors_a.txt"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/upload/error-report/"+filename, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode, filename)
	}
}
