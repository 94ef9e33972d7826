package repositories

import (
	"context"
	"errors"

	"companion/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PhotoRepository interface {
	Insert(ctx context.Context, photo *db_models.Photo) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Photo, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Photo, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type photoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Insert(ctx context.Context, photo *db_models.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *photoRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Photo, error) {
	var photo db_models.Photo
	err := r.db.WithContext(ctx).First(&photo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &photo, nil
}

func (r *photoRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Photo, error) {
	var photos []db_models.Photo
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("uploaded_at DESC").
		Find(&photos).Error
	return photos, err
}

func (r *photoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Photo{}, "id = ?", id).Error
}
