package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type ListAppointmentsInput struct {
	Status *domain.Status
	Skip   int
	Limit  int
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]models.Appointment, error) {

	if in.Skip < 0 {
		in.Skip = 0
	}
	if in.Limit <= 0 || in.Limit > maxListLimit {
		in.Limit = defaultListLimit
	}

	return uc.repo.ListAppointments(ctx, in.Status, in.Skip, in.Limit)
}
