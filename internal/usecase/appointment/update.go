package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies a partial update: only keys present in the payload are
// touched. The not-found check runs before any mutation.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	payload map[string]any,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFound("Appointment not found")
	}
	if err != nil {
		return nil, httperr.Internal(fmt.Sprintf("Failed to fetch appointment: %v", err))
	}

	if len(payload) == 0 {
		return nil, httperr.Validation("Invalid input")
	}

	patch, err := patchFromPayload(payload)
	if err != nil {
		return nil, httperr.Validation(err.Error())
	}

	domain.Apply(ap, patch)

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, httperr.Persistence(err.Error())
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	full, err := uc.repo.GetByID(ctx, ap.ID)
	if err != nil {
		return ap, nil
	}
	return full, nil
}

func patchFromPayload(payload map[string]any) (domain.Patch, error) {
	var patch domain.Patch

	for _, field := range []struct {
		key  string
		dest **uint
	}{
		{"client_id", &patch.ClientID},
		{"barber_id", &patch.BarberID},
		{"service_id", &patch.ServiceID},
	} {
		if v, ok := payload[field.key]; ok {
			n, err := coerceUint(field.key, v)
			if err != nil {
				return domain.Patch{}, err
			}
			*field.dest = &n
		}
	}

	if v, ok := payload["status"]; ok {
		s, isString := v.(string)
		if !isString {
			return domain.Patch{}, fmt.Errorf("invalid status: %v", v)
		}
		patch.Status = &s
	}

	if v, ok := payload["date_time"]; ok {
		s, isString := v.(string)
		if !isString {
			return domain.Patch{}, fmt.Errorf("invalid date_time: %v", v)
		}
		when, err := ParseCombined(s)
		if err != nil {
			return domain.Patch{}, err
		}
		patch.DateTime = &when
	}

	return patch, nil
}
