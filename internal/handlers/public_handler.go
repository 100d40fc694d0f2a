package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chairtime/booking-api/internal/audit"
	"github.com/chairtime/booking-api/internal/cache"
	"github.com/chairtime/booking-api/internal/config"
	domain "github.com/chairtime/booking-api/internal/domain/appointment"
	"github.com/chairtime/booking-api/internal/httperr"
	"github.com/chairtime/booking-api/internal/httpresp"
	infraRepo "github.com/chairtime/booking-api/internal/infra/repository"
	"github.com/chairtime/booking-api/internal/mail"
	"github.com/chairtime/booking-api/internal/models"
	"github.com/chairtime/booking-api/internal/timezone"
	"github.com/chairtime/booking-api/internal/usecase/appointment"
	"github.com/chairtime/booking-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	db     *gorm.DB
	cfg    *config.Config
	audit  *audit.Dispatcher
	cache  *cache.AvailabilityCache
	mailer *mail.Mailer
}

func NewPublicHandler(
	db *gorm.DB,
	cfg *config.Config,
	dispatcher *audit.Dispatcher,
	availCache *cache.AvailabilityCache,
	mailer *mail.Mailer,
) *PublicHandler {
	return &PublicHandler{
		db:     db,
		cfg:    cfg,
		audit:  dispatcher,
		cache:  availCache,
		mailer: mailer,
	}
}

// ======================================================
// DTOs
// ======================================================

type PublicBookingRequest struct {
	EmployeeID uint   `json:"employee_id" binding:"required"`
	ServiceID  uint   `json:"service_id" binding:"required"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	Time       string `json:"time" binding:"required"` // HH:mm

	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Street    string `json:"street"`
	Zip       string `json:"zip"`
	City      string `json:"city"`

	Description string `json:"description"`
}

// ======================================================
// CATÁLOGO
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListEmployees(c *gin.Context) {
	var employees []models.Employee
	if err := h.db.Order("id ASC").Find(&employees).Error; err != nil {
		httperr.Internal(c, "failed_to_list_employees", "Erro ao listar funcionários.")
		return
	}

	httpresp.List(c, employees)
}

// ======================================================
// DISPONIBILIDADE
// ======================================================

func (h *PublicHandler) TimeSlots(c *gin.Context) {
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(h.cfg.BusinessTimezone),
	)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	repo := infraRepo.NewAppointmentGormRepository(h.db)
	uc := appointment.NewGetAvailability(repo, h.cache)

	slots, err := uc.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			ServiceID: uint(serviceID),
			Date:      date,
		},
		timezone.NowIn(h.cfg.BusinessTimezone),
	)

	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":       dateStr,
		"time_slots": slots,
	})
}

// ======================================================
// AGENDAMENTO PÚBLICO
// ======================================================

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail não parece ser válido.")
		return
	}

	repo := infraRepo.NewAppointmentGormRepository(h.db)
	uc := appointment.NewCreateBooking(repo, h.audit, h.cache, h.mailer, h.cfg.BusinessTimezone)

	ap, err := uc.Execute(
		c.Request.Context(),
		appointment.CreateBookingInput{
			EmployeeID:  req.EmployeeID,
			ServiceID:   req.ServiceID,
			Date:        req.Date,
			Time:        req.Time,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       email,
			Phone:       req.Phone,
			Street:      req.Street,
			Zip:         req.Zip,
			City:        req.City,
			Description: req.Description,
		},
	)

	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}
