package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE 23P01 (exclusion_violation): a constraint de não-sobreposição
// do banco rejeitou o agendamento depois que a checagem da aplicação
// passou. Tratar como conflito de horário, nunca como falha do sistema.
const pgExclusionViolation = "23P01"

func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation
	}
	return false
}
