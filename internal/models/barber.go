package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:100" json:"specialty"`
	Phone     string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Image     string `json:"image"`

	Appointments []Appointment `gorm:"foreignKey:BarberID" json:"-"`
	Reviews      []Review      `gorm:"foreignKey:BarberID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
