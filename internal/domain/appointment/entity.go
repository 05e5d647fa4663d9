package appointment

import (
	"time"

	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// NewScheduled monta um agendamento novo já com o slot normalizado.
func NewScheduled(customerID uint, slot time.Time, notes string) *models.Appointment {
	return &models.Appointment{
		CustomerID: customerID,
		Slot:       NormalizeSlot(slot),
		Status:     string(InitialStatus()),
		Notes:      notes,
	}
}

// Cancel é incondicional: libera o slot e marca o status,
// mesmo que o agendamento já esteja cancelado ou concluído.
func Cancel(ap *models.Appointment, now time.Time) {
	ap.Status = string(StatusCancelled)
	ap.UpdatedAt = now
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.UpdatedAt = now
	return nil
}
