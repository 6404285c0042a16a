package handler

import (
	"strings"

	"hrm-web/internal/models"
)

// stubStore is an in-memory EmployeeStore for handler tests.
type stubStore struct {
	employees []models.Employee
	nextID    int
}

func (s *stubStore) FindAll(limit, offset int, filter models.EmployeeFilter, search string) ([]models.Employee, int, error) {
	result := []models.Employee{}
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
	return result, len(result), nil
}

func (s *stubStore) FindByID(id int) (*models.Employee, error) {
	for i := range s.employees {
		if s.employees[i].ID == id {
			e := s.employees[i]
			return &e, nil
		}
	}
	return nil, models.ErrEmployeeNotFound
}

func (s *stubStore) FindByCode(code string) (*models.Employee, error) {
	for i := range s.employees {
		if s.employees[i].EmployeeCode == code {
			e := s.employees[i]
			return &e, nil
		}
	}
	return nil, models.ErrEmployeeNotFound
}

func (s *stubStore) ExistsByCode(code string) (bool, error) {
	_, err := s.FindByCode(code)
	return err == nil, nil
}

func (s *stubStore) AllCodes() ([]string, error) {
	codes := make([]string, 0, len(s.employees))
	for _, e := range s.employees {
		codes = append(codes, e.EmployeeCode)
	}
	return codes, nil
}

func (s *stubStore) Create(employee *models.Employee) error {
	if exists, _ := s.ExistsByCode(employee.EmployeeCode); exists {
		return models.ErrDuplicateCode
	}
	s.nextID++
	employee.ID = s.nextID
	s.employees = append(s.employees, *employee)
	return nil
}

func (s *stubStore) Update(employee *models.Employee) error {
	for i := range s.employees {
		if s.employees[i].ID == employee.ID {
			s.employees[i] = *employee
			return nil
		}
	}
	return models.ErrEmployeeNotFound
}

func (s *stubStore) Delete(id int) error {
	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return nil
		}
	}
	return models.ErrEmployeeNotFound
}

func (s *stubStore) Stats() (*models.EmployeeStats, error) {
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
