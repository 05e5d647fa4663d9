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

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	CustomerID uint
	Slot       time.Time
	Notes      string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	locks *slotlock.Locker
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	locks *slotlock.Locker,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		locks: locks,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Slot normalizado (hora cheia, UTC)
	// --------------------------------------------------
	slot := domain.NormalizeSlot(in.Slot)

	// --------------------------------------------------
	// 2️⃣ Cliente precisa existir
	// --------------------------------------------------
	customer, err := uc.repo.GetCustomerByID(ctx, in.CustomerID)
	if err != nil {
		return nil, asNotFound(err, "customer_not_found")
	}

	// --------------------------------------------------
	// 3️⃣ Lock por slot (no-op sem Redis)
	// --------------------------------------------------
	release, err := uc.locks.Acquire(ctx, slot)
	if err != nil {
		return nil, err
	}
	defer release()

	// --------------------------------------------------
	// 4️⃣ Reserva atômica (checagem + insert na mesma transação)
	// --------------------------------------------------
	ap := domain.NewScheduled(customer.ID, slot, in.Notes)

	if err := uc.repo.BookAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			uc.audit.Dispatch(audit.Event{
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"customer_id": customer.ID,
					"slot":        slot,
				},
			})
		}
		return nil, err
	}

	ap.Customer = *customer

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"slot": slot},
	})

	return ap, nil
}
