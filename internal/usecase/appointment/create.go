package appointment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// CreateInput carries raw payload values: the foreign keys stay untyped so
// the coercion error keeps the same precedence as the date/time parse.
type CreateInput struct {
	ClientID  any
	BarberID  any
	ServiceID any

	Date   string
	Time   string
	Status string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	when, err := ParseDateTime(in.Date, in.Time)
	if err != nil {
		return nil, httperr.Validationf("Date/time format error: %v", err)
	}

	clientID, err := coerceUint("clientId", in.ClientID)
	if err != nil {
		return nil, httperr.Validationf("Date/time format error: %v", err)
	}
	barberID, err := coerceUint("barberId", in.BarberID)
	if err != nil {
		return nil, httperr.Validationf("Date/time format error: %v", err)
	}
	serviceID, err := coerceUint("serviceId", in.ServiceID)
	if err != nil {
		return nil, httperr.Validationf("Date/time format error: %v", err)
	}

	ap := &models.Appointment{
		ClientID:  clientID,
		BarberID:  barberID,
		ServiceID: serviceID,
		DateTime:  when,
		Status:    domain.DefaultStatus(in.Status),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, httperr.Internal(fmt.Sprintf("Internal error: %v", err))
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	// Reload with relations for the nested response.
	full, err := uc.repo.GetByID(ctx, ap.ID)
	if err != nil {
		return ap, nil
	}
	return full, nil
}
