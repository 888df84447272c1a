package validators

import (
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// NewClient checks a client creation payload. Uniqueness is verified by
// explicit lookup so races at commit time fall through to the store's
// constraints.
func NewClient(db *gorm.DB, payload map[string]any) error {
	email, _ := StringField(payload, "email")
	var count int64
	db.Model(&models.Client{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return httperr.Conflict("Email already exists")
	}

	phone, phoneIsString := StringField(payload, "phone")
	count = 0
	db.Model(&models.Client{}).Where("phone = ?", phone).Count(&count)
	if count > 0 {
		return httperr.Conflict("Phone number already exists")
	}

	if !phoneIsString || len(phone) < 10 {
		return httperr.Validation("Invalid phone number")
	}

	if len(payload) == 0 {
		return httperr.Validation("Invalid input")
	}

	password, _ := StringField(payload, "password")
	if len(password) < 6 {
		return httperr.Validation("Password must be at least 6 characters long.")
	}

	return nil
}
