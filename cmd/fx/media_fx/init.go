package media_fx

import (
	"log"
	"os"

	"companion/internal/repositories"
	"companion/internal/services"
	"companion/pkg/storage"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	providePhotoRepo, provideObjectStore, providePhotoService)

func providePhotoRepo(db *gorm.DB) repositories.PhotoRepository {
	return repositories.NewPhotoRepository(db)
}

func provideObjectStore() storage.ObjectStore {
	store, err := storage.NewGStorage(os.Getenv("GCS_BUCKET"), os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	if err != nil {
		log.Fatalf("Failed to create storage client: %v", err)
	}
	return store
}

func providePhotoService(
	photoRepo repositories.PhotoRepository,
	store storage.ObjectStore,
	logger *zap.SugaredLogger,
) services.PhotoServiceInterface {
	return services.NewPhotoService(photoRepo, store, logger)
}
