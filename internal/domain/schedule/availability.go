package schedule

import (
	"sort"
	"time"
)

// ======================================================
// Política de negócio dos slots (fixa, não deriva de dados)
// ======================================================

const (
	// Janela de atendimento: 08:00 (inclusive) até 20:00 (exclusive).
	BusinessOpen  TimeOfDay = 8 * 60
	BusinessClose TimeOfDay = 20 * 60

	// Passo da grade de horários.
	SlotStepMinutes = 15

	// Antecedência mínima para agendar no próprio dia.
	LeadTimeMinutes = 15
)

// WeekPlan é o plano semanal de um funcionário: um intervalo de trabalho
// por dia da semana (indexado por time.Weekday, domingo = 0) mais um
// intervalo de almoço compartilhado entre os dias trabalhados.
type WeekPlan struct {
	EmployeeID uint
	Days       [7]Interval
	Lunch      Interval
}

// Booking é a visão somente-leitura de um agendamento já persistido.
type Booking struct {
	EmployeeID uint
	Interval   Interval
}

// Slot é um horário candidato dentro do expediente, com os funcionários
// capazes de atendê-lo. Valor efêmero, recalculado a cada consulta.
type Slot struct {
	Time        TimeOfDay `json:"time"`
	Available   bool      `json:"available"`
	EmployeeIDs []uint    `json:"employee_ids"`
}

// ComputeAvailability calcula os slots agendáveis de uma data para um
// serviço de duração serviceDuration (minutos). Função pura: não toca em
// banco, pode ser chamada concorrentemente e cacheada por
// (data, serviço, snapshot dos agendamentos). `now` só importa quando a
// data consultada é o dia corrente.
func ComputeAvailability(
	date time.Time,
	serviceDuration int,
	plans []WeekPlan,
	existing []Booking,
	now time.Time,
) []Slot {

	grid := slotGrid(date, now)

	slots := make([]Slot, 0, len(grid))
	if serviceDuration <= 0 {
		for _, t := range grid {
			slots = append(slots, Slot{Time: t, EmployeeIDs: []uint{}})
		}
		return slots
	}

	weekday := date.Weekday()

	byEmployee := make(map[uint][]Interval)
	for _, b := range existing {
		byEmployee[b.EmployeeID] = append(byEmployee[b.EmployeeID], b.Interval)
	}

	for _, t := range grid {
		candidate := Interval{From: t, To: t + TimeOfDay(serviceDuration)}

		var ids []uint
		for _, plan := range plans {
			if employeeCanServe(plan, weekday, candidate, byEmployee[plan.EmployeeID]) {
				ids = append(ids, plan.EmployeeID)
			}
		}

		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		if ids == nil {
			ids = []uint{}
		}

		slots = append(slots, Slot{
			Time:        t,
			Available:   len(ids) > 0,
			EmployeeIDs: ids,
		})
	}

	return slots
}

func employeeCanServe(
	plan WeekPlan,
	weekday time.Weekday,
	candidate Interval,
	booked []Interval,
) bool {

	shift := plan.Days[weekday]
	if shift.IsZero() {
		return false
	}

	if !shift.Contains(candidate.From) {
		return false
	}

	// o serviço precisa terminar dentro do turno; terminar exatamente no
	// fim do turno é permitido
	if candidate.To > shift.To {
		return false
	}

	if !plan.Lunch.IsZero() && candidate.Overlaps(plan.Lunch) {
		return false
	}

	for _, b := range booked {
		if candidate.Overlaps(b) {
			return false
		}
	}

	return true
}

// slotGrid gera a grade de horários candidatos. Quando a data é o dia
// corrente, descarta slots que não respeitam a antecedência mínima.
func slotGrid(date time.Time, now time.Time) []TimeOfDay {
	isToday := date.Year() == now.Year() &&
		date.Month() == now.Month() &&
		date.Day() == now.Day()

	cutoff := TimeOfDay(-1)
	if isToday {
		cutoff = TimeOfDay(now.Hour()*60+now.Minute()) + LeadTimeMinutes
	}

	var grid []TimeOfDay
	for t := BusinessOpen; t < BusinessClose; t += SlotStepMinutes {
		if isToday && t <= cutoff {
			continue
		}
		grid = append(grid, t)
	}

	return grid
}
