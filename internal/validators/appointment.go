package validators

import (
	"strings"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
)

var appointmentRequired = []string{"clientId", "barberId", "serviceId", "date", "time"}

// NewAppointment reports every absent field at once, in declaration order.
func NewAppointment(payload map[string]any) error {
	if len(payload) == 0 {
		return httperr.Validation("Invalid input: no JSON received")
	}
	var missing []string
	for _, field := range appointmentRequired {
		if _, ok := payload[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return httperr.Validationf("Missing fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
