package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"companion/internal/models/db_models"
	"companion/internal/repositories"
	"companion/pkg/storage"
	"companion/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PhotoUpload struct {
	FileName    string
	ContentType string
	Caption     string
	Body        io.Reader
}

type PhotoServiceInterface interface {
	UploadPhoto(ctx context.Context, accountID uuid.UUID, upload PhotoUpload) (*db_models.Photo, error)
	ListPhotos(ctx context.Context, accountID uuid.UUID) ([]db_models.Photo, error)
	DeletePhoto(ctx context.Context, accountID, photoID uuid.UUID) error
}

type PhotoService struct {
	photoRepo repositories.PhotoRepository
	store     storage.ObjectStore
	logger    *zap.SugaredLogger
}

func NewPhotoService(photoRepo repositories.PhotoRepository, store storage.ObjectStore, logger *zap.SugaredLogger) PhotoServiceInterface {
	return &PhotoService{photoRepo: photoRepo, store: store, logger: logger}
}

func (s *PhotoService) UploadPhoto(ctx context.Context, accountID uuid.UUID, upload PhotoUpload) (*db_models.Photo, error) {
	objectName := fmt.Sprintf("photos/%s/%s%s", accountID, uuid.New(), filepath.Ext(upload.FileName))

	url, err := s.store.Upload(ctx, objectName, upload.ContentType, upload.Body)
	if err != nil {
		s.logger.Errorw("photo upload failed", "account", accountID, "error", err)
		return nil, utils.ErrUpstreamFailure
	}

	photo := &db_models.Photo{
		AccountID:  accountID,
		ImageURL:   url,
		ObjectName: objectName,
		Caption:    upload.Caption,
		UploadedAt: time.Now(),
	}

	if err := s.photoRepo.Insert(ctx, photo); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return photo, nil
}

func (s *PhotoService) ListPhotos(ctx context.Context, accountID uuid.UUID) ([]db_models.Photo, error) {
	photos, err := s.photoRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return photos, nil
}

func (s *PhotoService) DeletePhoto(ctx context.Context, accountID, photoID uuid.UUID) error {
	photo, err := s.photoRepo.FindByID(ctx, photoID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if photo == nil {
		return utils.ErrRecordNotFound
	}
	if photo.AccountID != accountID {
		return utils.ErrNotOwner
	}

	// A missing object is fine; the row is what the gallery renders from.
	if err := s.store.Delete(ctx, photo.ObjectName); err != nil && err != storage.ErrObjectNotExist {
		s.logger.Errorw("photo object delete failed", "object", photo.ObjectName, "error", err)
	}

	if err := s.photoRepo.Delete(ctx, photoID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
