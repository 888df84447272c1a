package validators

import "github.com/BruksfildServices01/barbershop-api/internal/httperr"

var reviewRequired = []string{"client_id", "barber_id", "appointment_id", "rating"}

func NewReview(payload map[string]any) error {
	if len(payload) == 0 {
		return httperr.Validation("No input provided")
	}
	for _, field := range reviewRequired {
		if _, ok := payload[field]; !ok {
			return httperr.Validationf("Missing required field: %s", field)
		}
	}
	return nil
}
