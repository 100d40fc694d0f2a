package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chairtime/booking-api/internal/audit"
	"github.com/chairtime/booking-api/internal/cache"
	"github.com/chairtime/booking-api/internal/domain/schedule"
	"github.com/chairtime/booking-api/internal/httperr"
	"github.com/chairtime/booking-api/internal/middleware"
	"github.com/chairtime/booking-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ShiftPlanHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewShiftPlanHandler(
	db *gorm.DB,
	dispatcher *audit.Dispatcher,
	availCache *cache.AvailabilityCache,
) *ShiftPlanHandler {
	return &ShiftPlanHandler{
		db:    db,
		audit: dispatcher,
		cache: availCache,
	}
}

// ======================================================
// DTOs
// ======================================================

type ShiftDayDTO struct {
	Weekday   int    `json:"weekday"` // 0 = domingo
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ShiftPlanDTO struct {
	EmployeeID   uint          `json:"employee_id"`
	EmployeeName string        `json:"employee_name"`
	LunchStart   string        `json:"lunch_start"`
	LunchEnd     string        `json:"lunch_end"`
	Days         []ShiftDayDTO `json:"days"`
}

type UpdateShiftPlanRequest struct {
	EmployeeID uint          `json:"employee_id" binding:"required"`
	LunchStart string        `json:"lunch_start"`
	LunchEnd   string        `json:"lunch_end"`
	Days       []ShiftDayDTO `json:"days" binding:"required"`
}

// ======================================================
// GET
// ======================================================

func (h *ShiftPlanHandler) List(c *gin.Context) {
	var employees []models.Employee
	if err := h.db.Order("id ASC").Find(&employees).Error; err != nil {
		httperr.Internal(c, "failed_to_list_employees", "Erro ao listar funcionários.")
		return
	}

	var templates []models.ShiftTemplate
	if err := h.db.Order("employee_id ASC, weekday ASC").Find(&templates).Error; err != nil {
		httperr.Internal(c, "failed_to_list_shifts", "Erro ao listar escalas.")
		return
	}

	byEmployee := make(map[uint][]ShiftDayDTO, len(employees))
	for _, t := range templates {
		byEmployee[t.EmployeeID] = append(byEmployee[t.EmployeeID], ShiftDayDTO{
			Weekday:   t.Weekday,
			StartTime: t.StartTime,
			EndTime:   t.EndTime,
		})
	}

	plans := make([]ShiftPlanDTO, 0, len(employees))
	for _, e := range employees {
		days := byEmployee[e.ID]
		if days == nil {
			days = []ShiftDayDTO{}
		}

		plans = append(plans, ShiftPlanDTO{
			EmployeeID:   e.ID,
			EmployeeName: e.Name,
			LunchStart:   e.LunchStart,
			LunchEnd:     e.LunchEnd,
			Days:         days,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": plans})
}

// ======================================================
// PUT (substitui a semana inteira do funcionário)
// ======================================================

func (h *ShiftPlanHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateShiftPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if _, err := schedule.ParseInterval(req.LunchStart, req.LunchEnd); err != nil {
		httperr.BadRequest(c, "invalid_time", "Horário de almoço inválido.")
		return
	}

	seen := map[int]bool{}
	for _, d := range req.Days {
		if d.Weekday < int(time.Sunday) || d.Weekday > int(time.Saturday) {
			httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido.")
			return
		}
		if seen[d.Weekday] {
			httperr.BadRequest(c, "duplicate_weekday", "Dia da semana repetido.")
			return
		}
		seen[d.Weekday] = true

		if _, err := schedule.ParseInterval(d.StartTime, d.EndTime); err != nil {
			httperr.BadRequest(c, "invalid_time", "Horário de expediente inválido.")
			return
		}
	}

	var employee models.Employee
	if err := h.db.First(&employee, req.EmployeeID).Error; err != nil {
		httperr.NotFound(c, "employee_not_found", "Funcionário não encontrado.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("employee_id = ?", employee.ID).
			Delete(&models.ShiftTemplate{}).Error; err != nil {
			return err
		}

		for _, d := range req.Days {
			// dias sem expediente não viram linha
			if d.StartTime == "" && d.EndTime == "" {
				continue
			}

			t := models.ShiftTemplate{
				EmployeeID: employee.ID,
				Weekday:    d.Weekday,
				StartTime:  d.StartTime,
				EndTime:    d.EndTime,
			}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
		}

		return tx.Model(&employee).Updates(map[string]any{
			"lunch_start": req.LunchStart,
			"lunch_end":   req.LunchEnd,
		}).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_update_shifts", "Erro ao salvar escala.")
		return
	}

	// escala muda a disponibilidade de qualquer data futura
	h.cache.InvalidateAll(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "shift_plan_updated",
		Entity:   "employee",
		EntityID: &employee.ID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
