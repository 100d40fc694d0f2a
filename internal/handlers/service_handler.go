package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chairtime/booking-api/internal/audit"
	"github.com/chairtime/booking-api/internal/cache"
	"github.com/chairtime/booking-api/internal/httperr"
	"github.com/chairtime/booking-api/internal/httpresp"
	"github.com/chairtime/booking-api/internal/middleware"
	"github.com/chairtime/booking-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewServiceHandler(
	db *gorm.DB,
	dispatcher *audit.Dispatcher,
	availCache *cache.AvailabilityCache,
) *ServiceHandler {
	return &ServiceHandler{
		db:    db,
		audit: dispatcher,
		cache: availCache,
	}
}

// ======================================================
// DTOs
// ======================================================

type ServiceItemDTO struct {
	ID          uint   `json:"id"` // 0 = novo
	Name        string `json:"name" binding:"required"`
	DurationMin int    `json:"duration_min" binding:"required,gt=0"`
}

type UpdateServicesRequest struct {
	Services []ServiceItemDTO `json:"services" binding:"required,dive"`
}

// ======================================================
// GET / PUT
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

// Update substitui o catálogo inteiro: itens com id conhecido são
// atualizados, id zero cria, ids ausentes são removidos.
func (h *ServiceHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	keep := make([]uint, 0, len(req.Services))

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for i := range req.Services {
			item := &req.Services[i]

			if item.ID == 0 {
				s := models.Service{
					Name:        item.Name,
					DurationMin: item.DurationMin,
				}
				if err := tx.Create(&s).Error; err != nil {
					return err
				}
				item.ID = s.ID
			} else {
				res := tx.Model(&models.Service{}).
					Where("id = ?", item.ID).
					Updates(map[string]any{
						"name":         item.Name,
						"duration_min": item.DurationMin,
					})
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return httperr.ErrBusiness("service_not_found")
				}
			}

			keep = append(keep, item.ID)
		}

		q := tx.Model(&models.Service{})
		if len(keep) > 0 {
			q = q.Where("id NOT IN ?", keep)
		}
		return q.Delete(&models.Service{}).Error
	})

	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_update_services", "Erro ao salvar serviços.")
		return
	}

	// duração mudou → slots calculados mudam
	h.cache.InvalidateAll(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		UserID: &adminID,
		Action: "services_updated",
		Entity: "service",
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
