package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-scheduler/internal/dto"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/appointment-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	suggestUC        *ucAppointment.SuggestSlots
	bookUC           *ucAppointment.BookAppointment
	cancelUC         *ucAppointment.CancelAppointment
	completeUC       *ucAppointment.CompleteAppointment
	rescheduleUC     *ucAppointment.RescheduleAppointment
	statusUC         *ucAppointment.GetAppointmentStatus
	listUC           *ucAppointment.ListAppointments
	listByCustomerUC *ucAppointment.ListCustomerAppointments
}

func NewAppointmentHandler(
	suggestUC *ucAppointment.SuggestSlots,
	bookUC *ucAppointment.BookAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	statusUC *ucAppointment.GetAppointmentStatus,
	listUC *ucAppointment.ListAppointments,
	listByCustomerUC *ucAppointment.ListCustomerAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		suggestUC:        suggestUC,
		bookUC:           bookUC,
		cancelUC:         cancelUC,
		completeUC:       completeUC,
		rescheduleUC:     rescheduleUC,
		statusUC:         statusUC,
		listUC:           listUC,
		listByCustomerUC: listByCustomerUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SuggestDateRequest struct {
	PreferredDate time.Time `json:"preferred_date" binding:"required"`
	CustomerID    uint      `json:"customer_id"`
}

type SuggestDateResponse struct {
	SuggestedDates []time.Time `json:"suggested_dates"`
}

type BookAppointmentRequest struct {
	CustomerID uint      `json:"customer_id" binding:"required"`
	Slot       time.Time `json:"slot" binding:"required"`
	Notes      string    `json:"notes"`
}

type RescheduleAppointmentRequest struct {
	NewSlot time.Time `json:"new_slot" binding:"required"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeAppointmentError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "customer_not_found"):
		httperr.NotFound(c, "customer_not_found", "Cliente não encontrado.")

	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")

	case httperr.IsBusiness(err, "slot_taken"):
		httperr.BadRequest(c, "slot_taken", "Este horário já está reservado.")

	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Agendamento não pode ser concluído.")

	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}

// ======================================================
// SUGGEST DATE
// ======================================================

func (h *AppointmentHandler) SuggestDate(c *gin.Context) {
	var req SuggestDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	slots, err := h.suggestUC.Execute(c.Request.Context(), ucAppointment.SuggestSlotsInput{
		PreferredDate: req.PreferredDate,
		CustomerID:    req.CustomerID,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, SuggestDateResponse{SuggestedDates: slots})
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		CustomerID: req.CustomerID,
		Slot:       req.Slot,
		Notes:      req.Notes,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentWithCustomer(ap))
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointment(ap))
}

// ======================================================
// COMPLETE
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointment(ap))
}

// ======================================================
// GET STATUS
// ======================================================

func (h *AppointmentHandler) GetStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.statusUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentWithCustomer(ap))
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), ucAppointment.RescheduleAppointmentInput{
		AppointmentID: id,
		NewSlot:       req.NewSlot,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointment(ap))
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	status, ok := parseStatusQuery(c)
	if !ok {
		return
	}

	skip, limit := parseSkipLimit(c)

	aps, err := h.listUC.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		Status: status,
		Skip:   skip,
		Limit:  limit,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.List(c, dto.NewAppointmentWithCustomerList(aps))
}

// ======================================================
// LIST BY CUSTOMER
// ======================================================

func (h *AppointmentHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	status, ok := parseStatusQuery(c)
	if !ok {
		return
	}

	aps, err := h.listByCustomerUC.Execute(c.Request.Context(), customerID, status)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.List(c, dto.NewAppointmentList(aps))
}
