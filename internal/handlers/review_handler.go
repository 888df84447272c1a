package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/dto"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

type ReviewHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewReviewHandler(db *gorm.DB, audit *audit.Dispatcher) *ReviewHandler {
	return &ReviewHandler{db: db, audit: audit}
}

// ======================================================
// LIST
// ======================================================

func (h *ReviewHandler) List(c *gin.Context) {
	var reviews []models.Review
	err := h.db.
		Preload("Client").
		Preload("Barber").
		Preload("Appointment").
		Order("id ASC").
		Find(&reviews).Error

	if err != nil {
		httperr.Write(c, http.StatusInternalServerError,
			fmt.Sprintf("Failed to fetch reviews: %v", err))
		return
	}

	views := make([]dto.ReviewView, 0, len(reviews))
	for i := range reviews {
		views = append(views, dto.NewReviewView(&reviews[i]))
	}
	c.JSON(http.StatusOK, views)
}

// ======================================================
// CREATE
// ======================================================

// Create inserts a review. The referenced appointment is not cross-checked
// against the stated client and barber.
func (h *ReviewHandler) Create(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.Write(c, http.StatusBadRequest, "No input provided")
		return
	}

	if err := validators.NewReview(payload); err != nil {
		httperr.WriteError(c, err)
		return
	}

	review, err := reviewFromPayload(payload)
	if err != nil {
		httperr.WriteError(c, httperr.Persistence(
			fmt.Sprintf("Failed to create review: %v", err)))
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(review).Error
	})
	if err != nil {
		httperr.WriteError(c, httperr.Persistence(
			fmt.Sprintf("Failed to create review: %v", err)))
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "review_created",
		Entity:   "review",
		EntityID: &review.ID,
	})

	// Reload relations for the nested response.
	h.db.
		Preload("Client").
		Preload("Barber").
		Preload("Appointment").
		First(review, review.ID)

	c.JSON(http.StatusCreated, dto.NewReviewView(review))
}

func reviewFromPayload(payload map[string]any) (*models.Review, error) {
	clientID, err := payloadUint(payload, "client_id")
	if err != nil {
		return nil, err
	}
	barberID, err := payloadUint(payload, "barber_id")
	if err != nil {
		return nil, err
	}
	appointmentID, err := payloadUint(payload, "appointment_id")
	if err != nil {
		return nil, err
	}
	rating, err := payloadInt(payload, "rating")
	if err != nil {
		return nil, err
	}

	return &models.Review{
		ClientID:      clientID,
		BarberID:      barberID,
		AppointmentID: appointmentID,
		Rating:        rating,
		Comment:       payloadString(payload, "comment"),
	}, nil
}
