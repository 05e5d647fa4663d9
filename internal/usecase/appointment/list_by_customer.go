package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

type ListCustomerAppointments struct {
	repo domain.Repository
}

func NewListCustomerAppointments(repo domain.Repository) *ListCustomerAppointments {
	return &ListCustomerAppointments{repo: repo}
}

func (uc *ListCustomerAppointments) Execute(
	ctx context.Context,
	customerID uint,
	status *domain.Status,
) ([]models.Appointment, error) {
	return uc.repo.ListCustomerAppointments(ctx, customerID, status)
}
