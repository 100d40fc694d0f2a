package appointment

import (
	"github.com/chairtime/booking-api/internal/domain/schedule"
	"github.com/chairtime/booking-api/internal/httperr"
	"github.com/chairtime/booking-api/internal/models"
)

// buildWeekPlans monta a visão de domínio dos turnos: um WeekPlan por
// funcionário, dias indexados por weekday, almoço compartilhado vindo do
// cadastro do funcionário. Funcionário sem nenhum dia de expediente não
// entra na lista.
func buildWeekPlans(
	employees []models.Employee,
	templates []models.ShiftTemplate,
) ([]schedule.WeekPlan, error) {

	byEmployee := make(map[uint]*schedule.WeekPlan, len(employees))
	order := make([]uint, 0, len(employees))

	for _, e := range employees {
		lunch, err := schedule.ParseInterval(e.LunchStart, e.LunchEnd)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_shift_template")
		}

		byEmployee[e.ID] = &schedule.WeekPlan{
			EmployeeID: e.ID,
			Lunch:      lunch,
		}
		order = append(order, e.ID)
	}

	for _, tpl := range templates {
		plan, ok := byEmployee[tpl.EmployeeID]
		if !ok || tpl.Weekday < 0 || tpl.Weekday > 6 {
			continue
		}

		shift, err := schedule.ParseInterval(tpl.StartTime, tpl.EndTime)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_shift_template")
		}

		plan.Days[tpl.Weekday] = shift
	}

	plans := make([]schedule.WeekPlan, 0, len(order))
	for _, id := range order {
		plan := byEmployee[id]

		working := false
		for _, day := range plan.Days {
			if !day.IsZero() {
				working = true
				break
			}
		}
		if working {
			plans = append(plans, *plan)
		}
	}

	return plans, nil
}
