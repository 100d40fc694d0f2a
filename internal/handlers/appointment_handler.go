package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chairtime/booking-api/internal/audit"
	"github.com/chairtime/booking-api/internal/cache"
	"github.com/chairtime/booking-api/internal/config"
	"github.com/chairtime/booking-api/internal/httperr"
	"github.com/chairtime/booking-api/internal/httpresp"
	infraRepo "github.com/chairtime/booking-api/internal/infra/repository"
	"github.com/chairtime/booking-api/internal/mail"
	"github.com/chairtime/booking-api/internal/middleware"
	"github.com/chairtime/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db     *gorm.DB
	cfg    *config.Config
	audit  *audit.Dispatcher
	cache  *cache.AvailabilityCache
	mailer *mail.Mailer
}

func NewAppointmentHandler(
	db *gorm.DB,
	cfg *config.Config,
	dispatcher *audit.Dispatcher,
	availCache *cache.AvailabilityCache,
	mailer *mail.Mailer,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:     db,
		cfg:    cfg,
		audit:  dispatcher,
		cache:  availCache,
		mailer: mailer,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AdminBookingRequest struct {
	EmployeeID uint   `json:"employee_id" binding:"required"`
	ServiceID  uint   `json:"service_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`

	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	Zip       string `json:"zip"`
	City      string `json:"city"`

	Description string `json:"description"`
}

type EditBookingRequest struct {
	EmployeeID uint   `json:"employee_id" binding:"required"`
	ServiceID  uint   `json:"service_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`

	Description string `json:"description"`
}

// ======================================================
// LISTAGEM (calendário)
// ======================================================

// List atende tanto a visão diária (?date=YYYY-MM-DD) quanto a mensal
// (?year=YYYY&month=M).
func (h *AppointmentHandler) List(c *gin.Context) {
	repo := infraRepo.NewAppointmentGormRepository(h.db)

	if date := c.Query("date"); date != "" {
		uc := appointment.NewListByDate(repo)

		items, err := uc.Execute(c.Request.Context(), date)
		if err != nil {
			httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
			return
		}

		httpresp.List(c, items)
		return
	}

	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "missing_params", "Informe date ou year+month.")
		return
	}

	uc := appointment.NewListByMonth(repo, h.cfg.BusinessTimezone)

	items, err := uc.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req AdminBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
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
			Email:       req.Email,
			Phone:       req.Phone,
			Street:      req.Street,
			Zip:         req.Zip,
			City:        req.City,
			Description: req.Description,
			AdminID:     &adminID,
		},
	)

	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// EDIT
// ======================================================

func (h *AppointmentHandler) Edit(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req EditBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	repo := infraRepo.NewAppointmentGormRepository(h.db)
	uc := appointment.NewEditBooking(repo, h.audit, h.cache, h.cfg.BusinessTimezone)

	ap, err := uc.Execute(
		c.Request.Context(),
		appointment.EditBookingInput{
			AppointmentID: uint(id),
			EmployeeID:    req.EmployeeID,
			ServiceID:     req.ServiceID,
			Date:          req.Date,
			Time:          req.Time,
			Description:   req.Description,
			AdminID:       &adminID,
		},
	)

	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	repo := infraRepo.NewAppointmentGormRepository(h.db)
	uc := appointment.NewCancelBooking(repo, h.audit, h.cache, h.cfg.BusinessTimezone)

	ap, err := uc.Execute(c.Request.Context(), adminID, uint(id))
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	repo := infraRepo.NewAppointmentGormRepository(h.db)
	uc := appointment.NewCompleteBooking(repo, h.audit, h.cfg.BusinessTimezone)

	ap, err := uc.Execute(c.Request.Context(), adminID, uint(id))
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
