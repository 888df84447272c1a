package validators

import "github.com/BruksfildServices01/barbershop-api/internal/httperr"

// NewBarber only requires a non-empty payload; all fields are taken as-is.
func NewBarber(payload map[string]any) error {
	if len(payload) == 0 {
		return httperr.Validation("Invalid input")
	}
	return nil
}
