package service

import (
	"strings"

	"hrm-web/internal/models"
)

// memStore is an in-memory EmployeeStore for tests. It enforces the same
// code uniqueness the database constraint does.
type memStore struct {
	employees []models.Employee
	nextID    int
	createErr error // injected failure for the next Create
}

func newMemStore(seed ...models.Employee) *memStore {
	s := &memStore{}
	for _, e := range seed {
		_ = s.Create(&e)
	}
	return s
}

func (s *memStore) FindAll(limit, offset int, filter models.EmployeeFilter, search string) ([]models.Employee, int, error) {
	var result []models.Employee
	for _, e := range s.employees {
		if filter.EmployeeCode != "" && e.EmployeeCode != filter.EmployeeCode {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.Name != "" && !strings.Contains(e.Name, filter.Name) {
			continue
		}
		if filter.Position != "" && !strings.Contains(e.Position, filter.Position) {
			continue
		}
		if filter.Department != "" && !strings.Contains(e.Department, filter.Department) {
			continue
		}
		result = append(result, e)
	}
	total := len(result)
	if offset > len(result) {
		offset = len(result)
	}
	result = result[offset:]
	if limit < len(result) {
		result = result[:limit]
	}
	return result, total, nil
}

func (s *memStore) FindByID(id int) (*models.Employee, error) {
	for i := range s.employees {
		if s.employees[i].ID == id {
			e := s.employees[i]
			return &e, nil
		}
	}
	return nil, models.ErrEmployeeNotFound
}

func (s *memStore) FindByCode(code string) (*models.Employee, error) {
	for i := range s.employees {
		if s.employees[i].EmployeeCode == code {
			e := s.employees[i]
			return &e, nil
		}
	}
	return nil, models.ErrEmployeeNotFound
}

func (s *memStore) ExistsByCode(code string) (bool, error) {
	_, err := s.FindByCode(code)
	return err == nil, nil
}

func (s *memStore) AllCodes() ([]string, error) {
	codes := make([]string, 0, len(s.employees))
	for _, e := range s.employees {
		codes = append(codes, e.EmployeeCode)
	}
	return codes, nil
}

func (s *memStore) Create(employee *models.Employee) error {
	if s.createErr != nil {
		err := s.createErr
		s.createErr = nil
		return err
	}
	if exists, _ := s.ExistsByCode(employee.EmployeeCode); exists {
		return models.ErrDuplicateCode
	}
	s.nextID++
	employee.ID = s.nextID
	s.employees = append(s.employees, *employee)
	return nil
}

func (s *memStore) Update(employee *models.Employee) error {
	for i := range s.employees {
		if s.employees[i].ID == employee.ID {
			s.employees[i] = *employee
			return nil
		}
	}
	return models.ErrEmployeeNotFound
}

func (s *memStore) Delete(id int) error {
	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return nil
		}
	}
	return models.ErrEmployeeNotFound
}

func (s *memStore) Stats() (*models.EmployeeStats, error) {
	stats := &models.EmployeeStats{ByDepartment: map[string]int{}}
	for _, e := range s.employees {
		stats.Total++
		if e.Status == models.StatusActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
		stats.ByDepartment[e.Department]++
	}
	return stats, nil
}
