package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

type GetAppointmentStatus struct {
	repo domain.Repository
}

func NewGetAppointmentStatus(repo domain.Repository) *GetAppointmentStatus {
	return &GetAppointmentStatus{repo: repo}
}

func (uc *GetAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentWithCustomer(ctx, appointmentID)
	if err != nil {
		return nil, asNotFound(err, "appointment_not_found")
	}

	return ap, nil
}
