package handlers

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	"github.com/chai2010/webp"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/dto"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/storage"
)

const (
	portraitMaxWidth = 512
	portraitQuality  = 85
)

type BarberImageHandler struct {
	db      *gorm.DB
	storage *storage.S3
	audit   *audit.Dispatcher
}

func NewBarberImageHandler(db *gorm.DB, store *storage.S3, audit *audit.Dispatcher) *BarberImageHandler {
	return &BarberImageHandler{db: db, storage: store, audit: audit}
}

// Upload replaces the barber's portrait: the submitted image is downscaled,
// re-encoded as WebP and stored in object storage.
func (h *BarberImageHandler) Upload(c *gin.Context) {
	if h.storage == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "Image storage is not configured")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, c.Param("id")).Error; err != nil {
		httperr.Write(c, http.StatusNotFound, "Barber not found")
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.Write(c, http.StatusBadRequest, "Invalid input")
		return
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		httperr.Write(c, http.StatusBadRequest, "Unsupported image format")
		return
	}

	var buf bytes.Buffer
	resized := storage.Fit(img, portraitMaxWidth)
	if err := webp.Encode(&buf, resized, &webp.Options{Quality: portraitQuality}); err != nil {
		httperr.Write(c, http.StatusInternalServerError, "Failed to encode image")
		return
	}

	key := fmt.Sprintf("barbers/%d/%s.webp", barber.ID, uuid.NewString())
	url, err := h.storage.Upload(c.Request.Context(), key, "image/webp", &buf)
	if err != nil {
		httperr.Write(c, http.StatusInternalServerError, "Failed to store image")
		return
	}

	if err := h.db.Model(&barber).Update("image", url).Error; err != nil {
		httperr.WriteError(c, httperr.Persistence(err.Error()))
		return
	}
	barber.Image = url

	h.audit.Dispatch(audit.Event{
		Action:   "barber_image_updated",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	c.JSON(http.StatusOK, dto.NewBarberRef(&barber))
}
