package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
)

func TestCancelAppointment(t *testing.T) {
	ctx := context.Background()
	slot := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)

	t.Run("id inexistente", func(t *testing.T) {
		repo := newFakeRepository()
		uc := NewCancelAppointment(repo, nil)

		_, err := uc.Execute(ctx, 42)
		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	})

	t.Run("cancelar duas vezes é aceito", func(t *testing.T) {
		repo := newFakeRepository()
		customer := repo.addCustomer("ana@example.com", "Ana Souza")

		bookUC := NewBookAppointment(repo, nil, nil)
		cancelUC := NewCancelAppointment(repo, nil)

		ap, err := bookUC.Execute(ctx, BookAppointmentInput{CustomerID: customer.ID, Slot: slot})
		require.NoError(t, err)

		_, err = cancelUC.Execute(ctx, ap.ID)
		require.NoError(t, err)

		again, err := cancelUC.Execute(ctx, ap.ID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), again.Status)
	})

	t.Run("cancelar agendamento concluído é aceito", func(t *testing.T) {
		repo := newFakeRepository()
		customer := repo.addCustomer("ana@example.com", "Ana Souza")

		bookUC := NewBookAppointment(repo, nil, nil)
		completeUC := NewCompleteAppointment(repo, nil)
		cancelUC := NewCancelAppointment(repo, nil)

		ap, err := bookUC.Execute(ctx, BookAppointmentInput{CustomerID: customer.ID, Slot: slot})
		require.NoError(t, err)

		_, err = completeUC.Execute(ctx, ap.ID)
		require.NoError(t, err)

		cancelled, err := cancelUC.Execute(ctx, ap.ID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	})
}

func TestCompleteAppointment(t *testing.T) {
	ctx := context.Background()
	slot := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)

	repo := newFakeRepository()
	customer := repo.addCustomer("ana@example.com", "Ana Souza")

	bookUC := NewBookAppointment(repo, nil, nil)
	completeUC := NewCompleteAppointment(repo, nil)

	ap, err := bookUC.Execute(ctx, BookAppointmentInput{CustomerID: customer.ID, Slot: slot})
	require.NoError(t, err)

	done, err := completeUC.Execute(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), done.Status)

	// concluir de novo esbarra na guarda de estado
	_, err = completeUC.Execute(ctx, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	_, err = completeUC.Execute(ctx, 999)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
