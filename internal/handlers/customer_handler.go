package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chairtime/booking-api/internal/httperr"
	"github.com/chairtime/booking-api/internal/httpresp"
	"github.com/chairtime/booking-api/internal/models"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

func (h *CustomerHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Customer{})

	if query := strings.TrimSpace(strings.ToLower(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			like, like, like, like,
		)
	}

	var customers []models.Customer
	if err := q.Order("last_name ASC, first_name ASC").Find(&customers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, customers)
}

// Get devolve o cliente com seu histórico de agendamentos.
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, uint(id)).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Cliente não encontrado.")
		return
	}

	var appointments []models.Appointment
	if err := h.db.
		Preload("Employee").
		Preload("Service").
		Where("customer_id = ?", customer.ID).
		Order("date DESC, time_from DESC").
		Find(&appointments).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer":     customer,
		"appointments": appointments,
	})
}
