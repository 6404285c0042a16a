package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"hrm-web/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const statsCacheKey = "hrm:employees:stats"

// ValidationError carries the full list of field-level reasons for a
// rejected single-record operation.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Reasons, "; ")
}

// EmployeeService implements the single-record operations. Create and
// update reuse the row validator, so a JSON body is checked exactly like a
// one-row batch (uniqueness against the store only, no batch set).
type EmployeeService struct {
	store     EmployeeStore
	validator *RowValidator
	redis     *redis.Client // optional, may be nil
	cacheTTL  time.Duration
	logger    *logrus.Logger
}

func NewEmployeeService(store EmployeeStore, redisClient *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *EmployeeService {
	return &EmployeeService{
		store:     store,
		validator: NewRowValidator(),
		redis:     redisClient,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

func (s *EmployeeService) List(limit, offset int, filter models.EmployeeFilter, search string) ([]models.Employee, int, error) {
	return s.store.FindAll(limit, offset, filter, search)
}

func (s *EmployeeService) Get(id int) (*models.Employee, error) {
	return s.store.FindByID(id)
}

func (s *EmployeeService) Create(req models.EmployeeRequest) (*models.Employee, error) {
	employee, reasons := s.validator.ValidateRequest(req)
	if len(reasons) > 0 {
		return nil, &ValidationError{Reasons: reasons}
	}

	exists, err := s.store.ExistsByCode(employee.EmployeeCode)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrDuplicateCode
	}

	if err := s.store.Create(&employee); err != nil {
		return nil, err
	}
	s.invalidateStats()
	return &employee, nil
}

func (s *EmployeeService) Update(id int, req models.EmployeeRequest) (*models.Employee, error) {
	existing, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}

	updated, reasons := s.validator.ValidateRequest(req)
	if len(reasons) > 0 {
		return nil, &ValidationError{Reasons: reasons}
	}

	// A changed code must stay unique across the persisted set.
	if updated.EmployeeCode != existing.EmployeeCode {
		exists, err := s.store.ExistsByCode(updated.EmployeeCode)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, models.ErrDuplicateCode
		}
	}

	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.store.Update(&updated); err != nil {
		return nil, err
	}
	s.invalidateStats()
	return &updated, nil
}

func (s *EmployeeService) Delete(id int) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.invalidateStats()
	return nil
}

// Stats returns headcount totals, cached in Redis for a short TTL when a
// client is available.
func (s *EmployeeService) Stats(ctx context.Context) (*models.EmployeeStats, error) {
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, statsCacheKey).Bytes()
		if err == nil {
			var stats models.EmployeeStats
			if err := json.Unmarshal(cached, &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.store.Stats()
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.redis.Set(ctx, statsCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.WithError(err).Warn("Failed to cache employee stats")
			}
		}
	}
	return stats, nil
}

func (s *EmployeeService) invalidateStats() {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(context.Background(), statsCacheKey).Err(); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate stats cache")
	}
}
