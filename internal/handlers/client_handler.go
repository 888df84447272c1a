package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/dto"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClientHandler(db *gorm.DB, audit *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{db: db, audit: audit}
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	var clients []models.Client
	err := h.db.
		Preload("Appointments.Barber").
		Preload("Appointments.Service").
		Preload("Reviews.Barber").
		Preload("Reviews.Appointment").
		Order("id ASC").
		Find(&clients).Error

	if err != nil {
		httperr.Write(c, http.StatusInternalServerError, "Failed to fetch clients")
		return
	}

	views := make([]dto.ClientView, 0, len(clients))
	for i := range clients {
		views = append(views, dto.NewClientView(&clients[i]))
	}
	c.JSON(http.StatusOK, views)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.Write(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := validators.NewClient(h.db, payload); err != nil {
		httperr.WriteError(c, err)
		return
	}

	hash, err := models.HashPassword(payloadString(payload, "password"))
	if err != nil {
		httperr.WriteError(c, httperr.Persistence(err.Error()))
		return
	}

	client := models.Client{
		Name:         payloadString(payload, "name"),
		Email:        payloadString(payload, "email"),
		Phone:        payloadString(payload, "phone"),
		PasswordHash: hash,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&client).Error
	})
	if err != nil {
		httperr.WriteError(c, httperr.Persistence(err.Error()))
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.JSON(http.StatusCreated, dto.NewClientView(&client))
}
