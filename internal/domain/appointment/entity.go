package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Patch carries the fields of a partial update. Nil fields are left alone.
type Patch struct {
	ClientID  *uint
	BarberID  *uint
	ServiceID *uint
	Status    *string
	DateTime  *time.Time
}

// Apply overwrites only the fields present in the patch.
func Apply(ap *models.Appointment, p Patch) {
	if p.ClientID != nil {
		ap.ClientID = *p.ClientID
	}
	if p.BarberID != nil {
		ap.BarberID = *p.BarberID
	}
	if p.ServiceID != nil {
		ap.ServiceID = *p.ServiceID
	}
	if p.Status != nil {
		ap.Status = *p.Status
	}
	if p.DateTime != nil {
		ap.DateTime = *p.DateTime
	}
}
