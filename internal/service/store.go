package service

import "hrm-web/internal/models"

// EmployeeStore is the persistence surface the services depend on. It is
// implemented by repository.EmployeeRepository and by in-memory fakes in
// tests.
type EmployeeStore interface {
	FindAll(limit, offset int, filter models.EmployeeFilter, search string) ([]models.Employee, int, error)
	FindByID(id int) (*models.Employee, error)
	FindByCode(code string) (*models.Employee, error)
	ExistsByCode(code string) (bool, error)
	AllCodes() ([]string, error)
	Create(employee *models.Employee) error
	Update(employee *models.Employee) error
	Delete(id int) error
	Stats() (*models.EmployeeStats, error)
}
