package repositories

import (
	"context"

	"companion/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AlertRepository is create/list only. Alert rows are never updated.
type AlertRepository interface {
	Insert(ctx context.Context, alert *db_models.Alert) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Alert, error)
}

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Insert(ctx context.Context, alert *db_models.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Alert, error) {
	var alerts []db_models.Alert
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&alerts).Error
	return alerts, err
}
