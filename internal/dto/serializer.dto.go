// Package dto builds the outward representations of each entity. Nesting is
// one level deep and every builder suppresses the edge pointing back at the
// entity being serialized, so related records can never recurse. The
// suppression is static: a nil pointer edge is an excluded edge.
package dto

import (
	"time"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// --------- Flat representations (no relations) ---------

type ClientRef struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type BarberRef struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Image     string `json:"image"`
}

type ServiceRef struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type AppointmentRef struct {
	ID        uint      `json:"id"`
	ClientID  uint      `json:"client_id"`
	BarberID  uint      `json:"barber_id"`
	ServiceID uint      `json:"service_id"`
	DateTime  time.Time `json:"date_time"`
	Status    string    `json:"status"`
}

type ReviewRef struct {
	ID            uint      `json:"id"`
	ClientID      uint      `json:"client_id"`
	BarberID      uint      `json:"barber_id"`
	AppointmentID uint      `json:"appointment_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	Date          time.Time `json:"date"`
}

// --------- Nested views ---------

type AppointmentView struct {
	AppointmentRef
	Client  *ClientRef  `json:"client,omitempty"`
	Barber  *BarberRef  `json:"barber,omitempty"`
	Service *ServiceRef `json:"service,omitempty"`
}

type ReviewView struct {
	ReviewRef
	Client      *ClientRef      `json:"client,omitempty"`
	Barber      *BarberRef      `json:"barber,omitempty"`
	Appointment *AppointmentRef `json:"appointment,omitempty"`
}

type ClientView struct {
	ClientRef
	Appointments []AppointmentView `json:"appointments"`
	Reviews      []ReviewView      `json:"reviews"`
}

type BarberView struct {
	BarberRef
	Appointments []AppointmentView `json:"appointments"`
	Reviews      []ReviewView      `json:"reviews"`
}

type ServiceView struct {
	ServiceRef
	Appointments []AppointmentView `json:"appointments"`
}

// --------- Ref builders ---------

func NewClientRef(m *models.Client) *ClientRef {
	return &ClientRef{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
	}
}

func NewBarberRef(m *models.Barber) *BarberRef {
	return &BarberRef{
		ID:        m.ID,
		Name:      m.Name,
		Specialty: m.Specialty,
		Phone:     m.Phone,
		Email:     m.Email,
		Image:     m.Image,
	}
}

func NewServiceRef(m *models.Service) *ServiceRef {
	return &ServiceRef{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Description: m.Description,
	}
}

func NewAppointmentRef(m *models.Appointment) *AppointmentRef {
	return &AppointmentRef{
		ID:        m.ID,
		ClientID:  m.ClientID,
		BarberID:  m.BarberID,
		ServiceID: m.ServiceID,
		DateTime:  m.DateTime,
		Status:    m.Status,
	}
}

func NewReviewRef(m *models.Review) *ReviewRef {
	return &ReviewRef{
		ID:            m.ID,
		ClientID:      m.ClientID,
		BarberID:      m.BarberID,
		AppointmentID: m.AppointmentID,
		Rating:        m.Rating,
		Comment:       m.Comment,
		Date:          m.Date,
	}
}

// --------- View builders ---------

// edge names which back-reference to suppress when nesting.
type edge int

const (
	edgeNone edge = iota
	edgeClient
	edgeBarber
	edgeService
	edgeAppointment
)

func newAppointmentView(m *models.Appointment, omit edge) AppointmentView {
	v := AppointmentView{AppointmentRef: *NewAppointmentRef(m)}
	if omit != edgeClient && m.Client.ID != 0 {
		v.Client = NewClientRef(&m.Client)
	}
	if omit != edgeBarber && m.Barber.ID != 0 {
		v.Barber = NewBarberRef(&m.Barber)
	}
	if omit != edgeService && m.Service.ID != 0 {
		v.Service = NewServiceRef(&m.Service)
	}
	return v
}

func newReviewView(m *models.Review, omit edge) ReviewView {
	v := ReviewView{ReviewRef: *NewReviewRef(m)}
	if omit != edgeClient && m.Client.ID != 0 {
		v.Client = NewClientRef(&m.Client)
	}
	if omit != edgeBarber && m.Barber.ID != 0 {
		v.Barber = NewBarberRef(&m.Barber)
	}
	if omit != edgeAppointment && m.Appointment.ID != 0 {
		v.Appointment = NewAppointmentRef(&m.Appointment)
	}
	return v
}

// NewAppointmentView includes all three flat references.
func NewAppointmentView(m *models.Appointment) AppointmentView {
	return newAppointmentView(m, edgeNone)
}

// NewReviewView includes the client, barber and appointment references.
func NewReviewView(m *models.Review) ReviewView {
	return newReviewView(m, edgeNone)
}

// NewClientView nests appointments and reviews without their client edge.
func NewClientView(m *models.Client) ClientView {
	v := ClientView{
		ClientRef:    *NewClientRef(m),
		Appointments: make([]AppointmentView, 0, len(m.Appointments)),
		Reviews:      make([]ReviewView, 0, len(m.Reviews)),
	}
	for i := range m.Appointments {
		v.Appointments = append(v.Appointments, newAppointmentView(&m.Appointments[i], edgeClient))
	}
	for i := range m.Reviews {
		v.Reviews = append(v.Reviews, newReviewView(&m.Reviews[i], edgeClient))
	}
	return v
}

// NewBarberView nests appointments and reviews without their barber edge.
func NewBarberView(m *models.Barber) BarberView {
	v := BarberView{
		BarberRef:    *NewBarberRef(m),
		Appointments: make([]AppointmentView, 0, len(m.Appointments)),
		Reviews:      make([]ReviewView, 0, len(m.Reviews)),
	}
	for i := range m.Appointments {
		v.Appointments = append(v.Appointments, newAppointmentView(&m.Appointments[i], edgeBarber))
	}
	for i := range m.Reviews {
		v.Reviews = append(v.Reviews, newReviewView(&m.Reviews[i], edgeBarber))
	}
	return v
}

// NewServiceView nests appointments without their service edge.
func NewServiceView(m *models.Service) ServiceView {
	v := ServiceView{
		ServiceRef:   *NewServiceRef(m),
		Appointments: make([]AppointmentView, 0, len(m.Appointments)),
	}
	for i := range m.Appointments {
		v.Appointments = append(v.Appointments, newAppointmentView(&m.Appointments[i], edgeService))
	}
	return v
}
