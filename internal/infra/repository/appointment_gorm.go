package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *AppointmentGormRepository) GetCustomerByID(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// --------------------------------------------------
// Slot (conflict check)
// --------------------------------------------------

func (r *AppointmentGormRepository) IsSlotFree(
	ctx context.Context,
	slot time.Time,
) (bool, error) {
	return slotFree(r.db.WithContext(ctx), slot)
}

// slotFree é o predicado central: slot livre ⇔ nenhum agendamento
// não-cancelado com exatamente esse valor de slot.
func slotFree(tx *gorm.DB, slot time.Time) (bool, error) {
	var count int64
	if err := tx.
		Model(&models.Appointment{}).
		Where(
			"slot = ? AND status <> ?",
			slot, string(domain.StatusCancelled),
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count == 0, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// BookAppointment roda checagem + insert numa transação. O check dá o erro
// de negócio no caso comum; quem fecha a corrida de vez é o índice único
// parcial em (slot) — a violação também vira slot_taken.
func (r *AppointmentGormRepository) BookAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		free, err := slotFree(tx, ap.Slot)
		if err != nil {
			return err
		}
		if !free {
			return httperr.ErrBusiness("slot_taken")
		}

		if err := tx.Create(ap).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness("slot_taken")
			}
			return err
		}

		return nil
	})
}

// RescheduleAppointment move o agendamento com a mesma atomicidade da
// reserva. A checagem não exclui o próprio agendamento: mover para o
// slot atual também conflita (comportamento observado, mantido).
func (r *AppointmentGormRepository) RescheduleAppointment(
	ctx context.Context,
	ap *models.Appointment,
	newSlot time.Time,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		free, err := slotFree(tx, newSlot)
		if err != nil {
			return err
		}
		if !free {
			return httperr.ErrBusiness("slot_taken")
		}

		ap.Slot = newSlot

		if err := tx.Save(ap).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness("slot_taken")
			}
			return err
		}

		return nil
	})
}

// --------------------------------------------------
// Appointment (lookup / state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentWithCustomer(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	status *domain.Status,
	skip int,
	limit int,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Model(&models.Appointment{})

	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	var aps []models.Appointment
	if err := q.
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListCustomerAppointments(
	ctx context.Context,
	customerID uint,
	status *domain.Status,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID)

	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	var aps []models.Appointment
	if err := q.
		Order("slot ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
