package repository

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"hrm-web/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*EmployeeRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewEmployeeRepository(sqlx.NewDb(db, "mysql")), mock
}

func employeeColumns() []string {
	return []string{"id", "employee_code", "name", "position", "department", "salary", "status", "created_at", "updated_at"}
}

func TestFindAll_AppliesFilterPredicates(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM employees WHERE status = ? AND name LIKE ?")).
		WithArgs("active", "%Jan%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	now := time.Now()
	mock.ExpectQuery("SELECT id,").
		WithArgs("active", "%Jan%", 25, 0).
		WillReturnRows(sqlmock.NewRows(employeeColumns()).
			AddRow(1, "E001", "Jane Smith", "Engineer", "Engineering", 80000, "active", now, now))

	employees, total, err := repo.FindAll(25, 0, models.EmployeeFilter{Name: "Jan", Status: "active"}, "")
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, employees, 1)
	require.Equal(t, "E001", employees[0].EmployeeCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM employees WHERE id = ? LIMIT 1")).
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(42)
	require.ErrorIs(t, err, models.ErrEmployeeNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_TranslatesDuplicateKey(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO employees").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'E001' for key 'uq_employees_code'"})

	err := repo.Create(&models.Employee{EmployeeCode: "E001", Name: "Jane", Position: "Engineer", Department: "Engineering", Salary: 80000, Status: "active"})
	require.ErrorIs(t, err, models.ErrDuplicateCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_AssignsInsertID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO employees").
		WillReturnResult(sqlmock.NewResult(7, 1))

	employee := &models.Employee{EmployeeCode: "E007", Name: "Jane", Position: "Engineer", Department: "Engineering", Salary: 80000, Status: "active"}
	require.NoError(t, repo.Create(employee))
	require.Equal(t, 7, employee.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employees WHERE id = ?")).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(42)
	require.ErrorIs(t, err, models.ErrEmployeeNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAllCodes(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT employee_code FROM employees ORDER BY employee_code")).
		WillReturnRows(sqlmock.NewRows([]string{"employee_code"}).AddRow("E001").AddRow("E002"))

	codes, err := repo.AllCodes()
	require.NoError(t, err)
	require.Equal(t, []string{"E001", "E002"}, codes)
	require.NoError(t, mock.ExpectationsWereMet())
}
