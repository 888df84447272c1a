package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/cache"
	"github.com/BruksfildServices01/barbershop-api/internal/dto"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

const listCacheTTL = time.Minute

type BarberHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, cache *cache.Cache, audit *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{db: db, cache: cache, audit: audit}
}

// ======================================================
// LIST
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var views []dto.BarberView
	if h.cache.GetJSON(ctx, cache.KeyBarbers, &views) {
		c.JSON(http.StatusOK, views)
		return
	}

	var barbers []models.Barber
	err := h.db.
		Preload("Appointments.Client").
		Preload("Appointments.Service").
		Preload("Reviews.Client").
		Preload("Reviews.Appointment").
		Order("id ASC").
		Find(&barbers).Error

	if err != nil {
		httperr.Write(c, http.StatusInternalServerError, "Failed to fetch barbers")
		return
	}

	views = make([]dto.BarberView, 0, len(barbers))
	for i := range barbers {
		views = append(views, dto.NewBarberView(&barbers[i]))
	}

	h.cache.SetJSON(ctx, cache.KeyBarbers, views, listCacheTTL)
	c.JSON(http.StatusOK, views)
}

// ======================================================
// CREATE
// ======================================================

func (h *BarberHandler) Create(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.Write(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := validators.NewBarber(payload); err != nil {
		httperr.WriteError(c, err)
		return
	}

	barber := models.Barber{
		Name:      payloadString(payload, "name"),
		Specialty: payloadString(payload, "specialty"),
		Phone:     payloadString(payload, "phone"),
		Email:     payloadString(payload, "email"),
		Image:     payloadString(payload, "image"),
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&barber).Error
	})
	if err != nil {
		httperr.WriteError(c, httperr.Persistence(err.Error()))
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: &barber.ID,
	})
	h.cache.Invalidate(c.Request.Context(), cache.KeyBarbers)

	c.JSON(http.StatusCreated, dto.NewBarberView(&barber))
}
