package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// ErrNotFound is returned by implementations when the appointment id does
// not exist.
var ErrNotFound = errors.New("appointment not found")

type Repository interface {
	// -------- Queries --------
	ListByClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// -------- Mutations (each runs in its own transaction) --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Delete(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
