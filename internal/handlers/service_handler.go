package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/cache"
	"github.com/BruksfildServices01/barbershop-api/internal/dto"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

type ServiceHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, cache *cache.Cache, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, cache: cache, audit: audit}
}

// ======================================================
// LIST
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var views []dto.ServiceView
	if h.cache.GetJSON(ctx, cache.KeyServices, &views) {
		c.JSON(http.StatusOK, views)
		return
	}

	var services []models.Service
	err := h.db.
		Preload("Appointments.Client").
		Preload("Appointments.Barber").
		Order("id ASC").
		Find(&services).Error

	if err != nil {
		httperr.Write(c, http.StatusInternalServerError, "Failed to fetch services")
		return
	}

	views = make([]dto.ServiceView, 0, len(services))
	for i := range services {
		views = append(views, dto.NewServiceView(&services[i]))
	}

	h.cache.SetJSON(ctx, cache.KeyServices, views, listCacheTTL)
	c.JSON(http.StatusOK, views)
}

// ======================================================
// CREATE
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.Write(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := validators.NewService(h.db, payload); err != nil {
		httperr.WriteError(c, err)
		return
	}

	price, _ := payload["price"].(float64)
	service := models.Service{
		Name:        payloadString(payload, "name"),
		Price:       price,
		Description: payloadString(payload, "description"),
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&service).Error
	})
	if err != nil {
		httperr.WriteError(c, httperr.Persistence(err.Error()))
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_created",
		Entity:   "service",
		EntityID: &service.ID,
	})
	h.cache.Invalidate(c.Request.Context(), cache.KeyServices)

	c.JSON(http.StatusCreated, dto.NewServiceView(&service))
}
