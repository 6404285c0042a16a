package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"hrm-web/internal/models"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

type EmployeeRepository struct {
	db *sqlx.DB
}

func NewEmployeeRepository(db *sqlx.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// buildFilterClause turns an EmployeeFilter into a WHERE clause. Code and
// status are matched exactly, name/position/department as substrings, all
// combined with AND.
func buildFilterClause(filter models.EmployeeFilter, search string) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}

	if filter.EmployeeCode != "" {
		conditions = append(conditions, "employee_code = ?")
		args = append(args, filter.EmployeeCode)
	}
	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Name != "" {
		conditions = append(conditions, "name LIKE ?")
		args = append(args, "%"+filter.Name+"%")
	}
	if filter.Position != "" {
		conditions = append(conditions, "position LIKE ?")
		args = append(args, "%"+filter.Position+"%")
	}
	if filter.Department != "" {
		conditions = append(conditions, "department LIKE ?")
		args = append(args, "%"+filter.Department+"%")
	}
	if search != "" {
		conditions = append(conditions, "(employee_code LIKE ? OR name LIKE ?)")
		searchPattern := "%" + search + "%"
		args = append(args, searchPattern, searchPattern)
	}

	whereClause := ""
	for i, cond := range conditions {
		if i == 0 {
			whereClause = "WHERE " + cond
		} else {
			whereClause += " AND " + cond
		}
	}
	return whereClause, args
}

func (r *EmployeeRepository) FindAll(limit, offset int, filter models.EmployeeFilter, search string) ([]models.Employee, int, error) {
	var employees []models.Employee
	var total int

	whereClause, args := buildFilterClause(filter, search)

	// Get total count
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees %s", whereClause)
	err := r.db.Get(&total, countQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	// Get paginated data
	query := fmt.Sprintf(`
		SELECT id,
		       employee_code,
		       name,
		       position,
		       department,
		       salary,
		       status,
		       created_at,
		       updated_at
		FROM employees %s
		ORDER BY employee_code
		LIMIT ? OFFSET ?`, whereClause)
	args = append(args, limit, offset)
	err = r.db.Select(&employees, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *EmployeeRepository) FindByID(id int) (*models.Employee, error) {
	var employee models.Employee
	query := "SELECT * FROM employees WHERE id = ? LIMIT 1"
	err := r.db.Get(&employee, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) FindByCode(code string) (*models.Employee, error) {
	var employee models.Employee
	query := "SELECT * FROM employees WHERE employee_code = ? LIMIT 1"
	err := r.db.Get(&employee, query, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) ExistsByCode(code string) (bool, error) {
	var count int
	err := r.db.Get(&count, "SELECT COUNT(*) FROM employees WHERE employee_code = ?", code)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AllCodes returns the snapshot of persisted employee codes used by the
// uniqueness checker at the start of a batch import.
func (r *EmployeeRepository) AllCodes() ([]string, error) {
	var codes []string
	err := r.db.Select(&codes, "SELECT employee_code FROM employees ORDER BY employee_code")
	return codes, err
}

func (r *EmployeeRepository) Create(employee *models.Employee) error {
	query := `INSERT INTO employees (employee_code, name, position, department, salary, status)
	          VALUES (:employee_code, :name, :position, :department, :salary, :status)`
	result, err := r.db.NamedExec(query, employee)
	if err != nil {
		return translateDuplicate(err)
	}
	id, _ := result.LastInsertId()
	employee.ID = int(id)
	return nil
}

func (r *EmployeeRepository) Update(employee *models.Employee) error {
	query := `UPDATE employees SET employee_code = :employee_code, name = :name,
	          position = :position, department = :department, salary = :salary,
	          status = :status
	          WHERE id = :id`
	_, err := r.db.NamedExec(query, employee)
	return translateDuplicate(err)
}

func (r *EmployeeRepository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM employees WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) CountAll() (int, error) {
	var total int
	err := r.db.Get(&total, "SELECT COUNT(*) FROM employees")
	return total, err
}

func (r *EmployeeRepository) Stats() (*models.EmployeeStats, error) {
	stats := &models.EmployeeStats{ByDepartment: map[string]int{}}

	err := r.db.Get(&stats.Total, "SELECT COUNT(*) FROM employees")
	if err != nil {
		return nil, err
	}
	err = r.db.Get(&stats.Active, "SELECT COUNT(*) FROM employees WHERE status = ?", models.StatusActive)
	if err != nil {
		return nil, err
	}
	err = r.db.Get(&stats.Inactive, "SELECT COUNT(*) FROM employees WHERE status = ?", models.StatusInactive)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Queryx("SELECT department, COUNT(*) AS cnt FROM employees GROUP BY department")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var department string
		var cnt int
		if err := rows.Scan(&department, &cnt); err != nil {
			return nil, err
		}
		stats.ByDepartment[department] = cnt
	}
	return stats, rows.Err()
}

// translateDuplicate maps the MySQL duplicate-entry error (1062) on the
// employee_code unique key to the domain error. The constraint is the final
// authority when concurrent writers race on the same code.
func translateDuplicate(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return models.ErrDuplicateCode
	}
	return err
}
