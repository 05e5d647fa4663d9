package appointment

import "github.com/BruksfildServices01/appointment-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// InitialStatus: todo agendamento nasce como scheduled
func InitialStatus() Status {
	return StatusScheduled
}

// ===============================
// Validations
// ===============================

// ParseStatus valida filtros de status vindos da query string
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// Cancelamento não tem guarda de estado: cancelar um agendamento
// já cancelado (ou concluído) é aceito de forma idempotente.
