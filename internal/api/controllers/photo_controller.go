package controllers

import (
	"net/http"

	"companion/internal/services"
	"companion/pkg/middleware"
	"companion/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PhotoController struct {
	photoService services.PhotoServiceInterface
}

func NewPhotoController(photoService services.PhotoServiceInterface) *PhotoController {
	return &PhotoController{photoService: photoService}
}

func (p *PhotoController) UploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Image file is required")
		return
	}
	defer file.Close()

	upload := services.PhotoUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Caption:     c.PostForm("caption"),
		Body:        file,
	}

	photo, err := p.photoService.UploadPhoto(c.Request.Context(), middleware.AccountID(c), upload)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, photo)
}

func (p *PhotoController) ListPhotos(c *gin.Context) {
	photos, err := p.photoService.ListPhotos(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, photos)
}

func (p *PhotoController) DeletePhoto(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Photo not found")
		return
	}

	if err := p.photoService.DeletePhoto(c.Request.Context(), middleware.AccountID(c), photoID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMsg(c, http.StatusOK, "Photo removed")
}
