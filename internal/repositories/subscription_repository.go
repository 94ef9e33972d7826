package repositories

import (
	"context"
	"time"

	"companion/internal/models/db_models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository interface {
	Upsert(ctx context.Context, sub *db_models.PushSubscription) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Upsert(ctx context.Context, sub *db_models.PushSubscription) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"endpoint":   sub.Endpoint,
			"p256dh_key": sub.P256dhKey,
			"auth_key":   sub.AuthKey,
			"updated_at": time.Now().Unix(),
		}),
	}).Create(sub).Error
}
