package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute hard-deletes the appointment. Unknown ids leave the table
// untouched.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	id uint,
) error {

	ap, err := uc.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.NotFound("Appointment not found")
	}
	if err != nil {
		return httperr.Internal(fmt.Sprintf("Failed to fetch appointment: %v", err))
	}

	if err := uc.repo.Delete(ctx, ap); err != nil {
		return httperr.Internal(fmt.Sprintf("Failed to delete appointment: %v", err))
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
