package validators

import (
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

func NewService(db *gorm.DB, payload map[string]any) error {
	name, nameIsString := StringField(payload, "name")
	var count int64
	db.Model(&models.Service{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		return httperr.Conflict("Service already exists")
	}

	price, priceIsNumber := payload["price"].(float64)
	if !priceIsNumber || price <= 0 {
		return httperr.Validation("Invalid price")
	}

	if !nameIsString || len(name) < 3 {
		return httperr.Validation("Invalid service name")
	}

	if len(payload) == 0 {
		return httperr.Validation("Invalid input")
	}

	return nil
}
