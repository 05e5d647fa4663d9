package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

type Repository interface {
	// -------- Customer --------
	GetCustomerByID(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	// -------- Slot (conflict check) --------
	IsSlotFree(
		ctx context.Context,
		slot time.Time,
	) (bool, error)

	// -------- Appointment (create / conflict) --------

	// BookAppointment executa checagem e insert como unidade atômica:
	// duas reservas concorrentes no mesmo slot nunca passam as duas.
	BookAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// RescheduleAppointment move o agendamento para newSlot com a mesma
	// atomicidade da reserva. A checagem do destino não exclui o próprio
	// agendamento: mover para o slot atual também conflita.
	RescheduleAppointment(
		ctx context.Context,
		ap *models.Appointment,
		newSlot time.Time,
	) error

	// -------- Appointment (lookup / state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentWithCustomer(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointments(
		ctx context.Context,
		status *Status,
		skip int,
		limit int,
	) ([]models.Appointment, error)

	ListCustomerAppointments(
		ctx context.Context,
		customerID uint,
		status *Status,
	) ([]models.Appointment, error)
}
