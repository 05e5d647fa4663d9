package dto

import (
	"time"

	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

type CustomerDTO struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

type CustomerWithAppointmentsDTO struct {
	CustomerDTO
	Appointments []AppointmentDTO `json:"appointments"`
}

func NewCustomer(c *models.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          c.ID,
		Email:       c.Email,
		FullName:    c.FullName,
		PhoneNumber: c.PhoneNumber,
		CreatedAt:   c.CreatedAt,
	}
}

func NewCustomerWithAppointments(c *models.Customer) CustomerWithAppointmentsDTO {
	return CustomerWithAppointmentsDTO{
		CustomerDTO:  NewCustomer(c),
		Appointments: NewAppointmentList(c.Appointments),
	}
}

func NewCustomerList(customers []models.Customer) []CustomerDTO {
	out := make([]CustomerDTO, 0, len(customers))
	for i := range customers {
		out = append(out, NewCustomer(&customers[i]))
	}
	return out
}
