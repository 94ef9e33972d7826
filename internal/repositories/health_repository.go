package repositories

import (
	"context"

	"companion/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthRepository interface {
	Insert(ctx context.Context, metric *db_models.HealthMetric) error
	ListByType(ctx context.Context, accountID uuid.UUID, metricType db_models.MetricType) ([]db_models.HealthMetric, error)
}

type healthRepository struct {
	db *gorm.DB
}

func NewHealthRepository(db *gorm.DB) HealthRepository {
	return &healthRepository{db: db}
}

func (r *healthRepository) Insert(ctx context.Context, metric *db_models.HealthMetric) error {
	return r.db.WithContext(ctx).Create(metric).Error
}

func (r *healthRepository) ListByType(ctx context.Context, accountID uuid.UUID, metricType db_models.MetricType) ([]db_models.HealthMetric, error) {
	var metrics []db_models.HealthMetric
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND metric_type = ?", accountID, metricType).
		Order("recorded_at ASC").
		Find(&metrics).Error
	return metrics, err
}
