package services

import (
	"context"
	"time"

	"companion/internal/models/db_models"
	"companion/internal/models/request_models"
	"companion/internal/repositories"
	"companion/pkg/utils"

	"github.com/google/uuid"
)

type HealthServiceInterface interface {
	AddMetric(ctx context.Context, accountID uuid.UUID, request request_models.HealthMetricRequest) (*db_models.HealthMetric, error)
	ListMetrics(ctx context.Context, accountID uuid.UUID, metricType string) ([]db_models.HealthMetric, error)
}

type HealthService struct {
	healthRepo repositories.HealthRepository
}

func NewHealthService(healthRepo repositories.HealthRepository) HealthServiceInterface {
	return &HealthService{healthRepo: healthRepo}
}

func (s *HealthService) AddMetric(ctx context.Context, accountID uuid.UUID, request request_models.HealthMetricRequest) (*db_models.HealthMetric, error) {
	recordedAt := time.Now()
	if request.Date != nil {
		recordedAt = *request.Date
	}

	metric := &db_models.HealthMetric{
		AccountID:  accountID,
		MetricType: db_models.MetricType(request.MetricType),
		Value1:     request.Value1,
		Value2:     request.Value2,
		RecordedAt: recordedAt,
	}

	if err := s.healthRepo.Insert(ctx, metric); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return metric, nil
}

func (s *HealthService) ListMetrics(ctx context.Context, accountID uuid.UUID, metricType string) ([]db_models.HealthMetric, error) {
	metrics, err := s.healthRepo.ListByType(ctx, accountID, db_models.MetricType(metricType))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return metrics, nil
}
