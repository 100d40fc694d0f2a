package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/chairtime/booking-api/internal/httperr"
)

// ======================================================
// MAPEAMENTO DE ERROS DE NEGÓCIO → HTTP
// ======================================================

func mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Horário inválido.")
	case httperr.IsBusiness(err, "date_in_past"):
		httperr.BadRequest(c, "date_in_past", "Data no passado.")
	case httperr.IsBusiness(err, "too_soon"):
		httperr.BadRequest(c, "too_soon", "Horário muito próximo.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
	case httperr.IsBusiness(err, "employee_not_found"):
		httperr.NotFound(c, "employee_not_found", "Funcionário não encontrado.")
	case httperr.IsBusiness(err, "outside_working_hours"):
		httperr.BadRequest(c, "outside_working_hours", "Fora do expediente.")
	case httperr.IsBusiness(err, "time_conflict"):
		// disputa normal entre clientes, não é falha do sistema
		httperr.BadRequest(c, "time_conflict", "Horário já ocupado.")
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.Conflict(c, "invalid_state", "Estado não permite a operação.")
	case httperr.IsBusiness(err, "invalid_shift_template"):
		httperr.Internal(c, "invalid_shift_template", "Escala cadastrada inválida.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}
