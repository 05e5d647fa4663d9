package appointment

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
	"github.com/BruksfildServices01/appointment-scheduler/internal/timezone"
)

// fakeRepository implementa domain.Repository em memória, com a mesma
// semântica de conflito do banco (checagem + escrita sob o mesmo lock).
type fakeRepository struct {
	mu           sync.Mutex
	customers    map[uint]models.Customer
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		customers:    make(map[uint]models.Customer),
		appointments: make(map[uint]*models.Appointment),
		nextID:       1,
	}
}

func (f *fakeRepository) addCustomer(email, name string) models.Customer {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := models.Customer{
		ID:          f.nextID,
		Email:       email,
		FullName:    name,
		CreatedAt:   timezone.Now(),
	}
	f.nextID++
	f.customers[c.ID] = c
	return c
}

func (f *fakeRepository) GetCustomerByID(_ context.Context, id uint) (*models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (f *fakeRepository) slotFreeLocked(slot time.Time) bool {
	for _, ap := range f.appointments {
		if ap.Status != string(domain.StatusCancelled) && ap.Slot.Equal(slot) {
			return false
		}
	}
	return true
}

func (f *fakeRepository) IsSlotFree(_ context.Context, slot time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.slotFreeLocked(slot), nil
}

func (f *fakeRepository) BookAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.slotFreeLocked(ap.Slot) {
		return httperr.ErrBusiness("slot_taken")
	}

	now := timezone.Now()
	ap.ID = f.nextID
	ap.CreatedAt = now
	ap.UpdatedAt = now
	f.nextID++

	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepository) RescheduleAppointment(_ context.Context, ap *models.Appointment, newSlot time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.slotFreeLocked(newSlot) {
		return httperr.ErrBusiness("slot_taken")
	}

	stored, ok := f.appointments[ap.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	ap.Slot = newSlot
	ap.UpdatedAt = timezone.Now()

	stored.Slot = newSlot
	stored.UpdatedAt = ap.UpdatedAt
	return nil
}

func (f *fakeRepository) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	cp := *stored
	return &cp, nil
}

func (f *fakeRepository) GetAppointmentWithCustomer(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, err := f.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	ap.Customer = f.customers[ap.CustomerID]
	f.mu.Unlock()
	return ap, nil
}

func (f *fakeRepository) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}

	ap.UpdatedAt = timezone.Now()
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepository) ListAppointments(_ context.Context, status *domain.Status, skip, limit int) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for id := uint(1); id < f.nextID; id++ {
		ap, ok := f.appointments[id]
		if !ok {
			continue
		}
		if status != nil && ap.Status != string(*status) {
			continue
		}
		out = append(out, *ap)
	}

	if skip >= len(out) {
		return nil, nil
	}
	out = out[skip:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepository) ListCustomerAppointments(_ context.Context, customerID uint, status *domain.Status) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for id := uint(1); id < f.nextID; id++ {
		ap, ok := f.appointments[id]
		if !ok || ap.CustomerID != customerID {
			continue
		}
		if status != nil && ap.Status != string(*status) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*fakeRepository)(nil)
