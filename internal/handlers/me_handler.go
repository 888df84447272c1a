package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/dto"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/middleware"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GetMe returns the authenticated client with its appointments and reviews.
func (h *MeHandler) GetMe(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	var client models.Client
	err := h.db.
		Preload("Appointments.Barber").
		Preload("Appointments.Service").
		Preload("Reviews.Barber").
		Preload("Reviews.Appointment").
		First(&client, clientID).Error

	if err != nil {
		httperr.Write(c, http.StatusNotFound, "Client not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewClientView(&client))
}
