package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-scheduler/internal/dto"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
	"github.com/BruksfildServices01/appointment-scheduler/internal/validators"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CustomerRequest struct {
	Email       string `json:"email" binding:"required,email"`
	FullName    string `json:"full_name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsValidPhone(req.PhoneNumber) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	customer := models.Customer{
		Email:       req.Email,
		FullName:    req.FullName,
		PhoneNumber: validators.NormalizePhone(req.PhoneNumber),
	}

	if err := h.db.Create(&customer).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "email_taken", "Já existe cliente com este e-mail.")
			return
		}
		httperr.Internal(c, "failed_to_create_customer", "Erro ao criar cliente.")
		return
	}

	c.JSON(201, dto.NewCustomer(&customer))
}

// ======================================================
// LIST
// ======================================================

func (h *CustomerHandler) List(c *gin.Context) {
	skip, limit := parseSkipLimit(c)
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}

	var customers []models.Customer
	if err := h.db.
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&customers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_customers", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, dto.NewCustomerList(customers))
}

// ======================================================
// GET (com agendamentos)
// ======================================================

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var customer models.Customer
	if err := h.db.
		Preload("Appointments").
		First(&customer, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "customer_not_found", "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Erro ao buscar cliente.")
		return
	}

	httpresp.OK(c, dto.NewCustomerWithAppointments(&customer))
}

// ======================================================
// UPDATE
// ======================================================

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsValidPhone(req.PhoneNumber) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "customer_not_found", "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Erro ao buscar cliente.")
		return
	}

	customer.Email = req.Email
	customer.FullName = req.FullName
	customer.PhoneNumber = validators.NormalizePhone(req.PhoneNumber)

	if err := h.db.Save(&customer).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "email_taken", "Já existe cliente com este e-mail.")
			return
		}
		httperr.Internal(c, "failed_to_update_customer", "Erro ao atualizar cliente.")
		return
	}

	httpresp.OK(c, dto.NewCustomer(&customer))
}

// ======================================================
// DELETE
// ======================================================

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "customer_not_found", "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Erro ao buscar cliente.")
		return
	}

	if err := h.db.Delete(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_customer", "Erro ao remover cliente.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Cliente removido com sucesso."})
}
