package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/appointment-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
	"github.com/BruksfildServices01/appointment-scheduler/internal/slotlock"
)

type RescheduleAppointmentInput struct {
	AppointmentID uint
	NewSlot       time.Time
}

type RescheduleAppointment struct {
	repo  domain.Repository
	locks *slotlock.Locker
	audit *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	locks *slotlock.Locker,
	audit *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		locks: locks,
		audit: audit,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, asNotFound(err, "appointment_not_found")
	}

	newSlot := domain.NormalizeSlot(in.NewSlot)
	oldSlot := ap.Slot

	release, err := uc.locks.Acquire(ctx, newSlot)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := uc.repo.RescheduleAppointment(ctx, ap, newSlot); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			uc.audit.Dispatch(audit.Event{
				Action:   "appointment_conflict",
				Entity:   "appointment",
				EntityID: &ap.ID,
				Metadata: map[string]any{"slot": newSlot},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from": oldSlot,
			"to":   newSlot,
		},
	})

	return ap, nil
}
