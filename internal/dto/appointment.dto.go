package dto

import (
	"time"

	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

type AppointmentDTO struct {
	ID         uint      `json:"id"`
	CustomerID uint      `json:"customer_id"`
	Slot       time.Time `json:"slot"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AppointmentWithCustomerDTO struct {
	AppointmentDTO
	Customer CustomerDTO `json:"customer"`
}

func NewAppointment(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:         ap.ID,
		CustomerID: ap.CustomerID,
		Slot:       ap.Slot,
		Status:     ap.Status,
		Notes:      ap.Notes,
		CreatedAt:  ap.CreatedAt,
		UpdatedAt:  ap.UpdatedAt,
	}
}

func NewAppointmentWithCustomer(ap *models.Appointment) AppointmentWithCustomerDTO {
	return AppointmentWithCustomerDTO{
		AppointmentDTO: NewAppointment(ap),
		Customer:       NewCustomer(&ap.Customer),
	}
}

func NewAppointmentList(aps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, NewAppointment(&aps[i]))
	}
	return out
}

func NewAppointmentWithCustomerList(aps []models.Appointment) []AppointmentWithCustomerDTO {
	out := make([]AppointmentWithCustomerDTO, 0, len(aps))
	for i := range aps {
		out = append(out, NewAppointmentWithCustomer(&aps[i]))
	}
	return out
}
