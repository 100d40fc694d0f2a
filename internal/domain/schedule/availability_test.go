package schedule

import (
	"reflect"
	"testing"
	"time"
)

// segunda-feira
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func mondayPlan(t *testing.T, employeeID uint) WeekPlan {
	t.Helper()
	plan := WeekPlan{EmployeeID: employeeID}
	plan.Days[time.Monday] = mustInterval(t, "09:00", "17:00")
	plan.Lunch = mustInterval(t, "12:00", "13:00")
	return plan
}

func slotByTime(t *testing.T, slots []Slot, clock string) Slot {
	t.Helper()
	want := mustClock(t, clock)
	for _, s := range slots {
		if s.Time == want {
			return s
		}
	}
	t.Fatalf("slot %s not found in grid", clock)
	return Slot{}
}

func TestComputeAvailabilityGrid(t *testing.T) {
	slots := ComputeAvailability(monday, 30, nil, nil, monday)

	if len(slots) != 48 {
		t.Fatalf("expected 48 slots, got %d", len(slots))
	}
	if slots[0].Time != mustClock(t, "08:00") {
		t.Fatalf("first slot = %s, want 08:00", slots[0].Time)
	}
	if slots[len(slots)-1].Time != mustClock(t, "19:45") {
		t.Fatalf("last slot = %s, want 19:45", slots[len(slots)-1].Time)
	}
	for _, s := range slots {
		if s.Available {
			t.Fatalf("slot %s available without any working employee", s.Time)
		}
	}
}

func TestComputeAvailabilityLunchExclusion(t *testing.T) {
	plans := []WeekPlan{mondayPlan(t, 1)}
	slots := ComputeAvailability(monday, 30, plans, nil, monday)

	// [11:45, 12:15) encosta no almoço [12:00, 13:00)
	if s := slotByTime(t, slots, "11:45"); s.Available {
		t.Fatalf("11:45 must be unavailable, service would overlap lunch")
	}
	// [11:30, 12:00) termina exatamente no início do almoço
	if s := slotByTime(t, slots, "11:30"); !s.Available {
		t.Fatalf("11:30 must be available, service only touches lunch start")
	}
	// primeiro slot após o almoço
	if s := slotByTime(t, slots, "13:00"); !s.Available {
		t.Fatalf("13:00 must be available")
	}
}

func TestComputeAvailabilityShiftEndExactness(t *testing.T) {
	plans := []WeekPlan{mondayPlan(t, 1)}
	slots := ComputeAvailability(monday, 30, plans, nil, monday)

	// termina exatamente às 17:00 → permitido
	if s := slotByTime(t, slots, "16:30"); !s.Available {
		t.Fatalf("service ending exactly at shift end must be allowed")
	}
	// terminaria às 17:15 → rejeitado
	if s := slotByTime(t, slots, "16:45"); s.Available {
		t.Fatalf("service ending past shift end must be rejected")
	}
}

func TestComputeAvailabilityBeforeShift(t *testing.T) {
	plans := []WeekPlan{mondayPlan(t, 1)}
	slots := ComputeAvailability(monday, 30, plans, nil, monday)

	if s := slotByTime(t, slots, "08:45"); s.Available {
		t.Fatalf("slot before shift start must be unavailable")
	}
	if s := slotByTime(t, slots, "09:00"); !s.Available {
		t.Fatalf("shift start slot must be available")
	}
}

func TestComputeAvailabilityExistingBookings(t *testing.T) {
	plans := []WeekPlan{mondayPlan(t, 1)}
	existing := []Booking{
		{EmployeeID: 1, Interval: mustInterval(t, "10:00", "10:30")},
	}

	slots := ComputeAvailability(monday, 30, plans, existing, monday)

	if s := slotByTime(t, slots, "10:00"); s.Available {
		t.Fatalf("booked slot must be unavailable")
	}
	if s := slotByTime(t, slots, "09:45"); s.Available {
		t.Fatalf("slot whose service overlaps a booking must be unavailable")
	}
	if s := slotByTime(t, slots, "09:30"); !s.Available {
		t.Fatalf("slot ending at booking start must stay available")
	}
	if s := slotByTime(t, slots, "10:30"); !s.Available {
		t.Fatalf("slot starting at booking end must stay available")
	}
}

func TestComputeAvailabilityAppointmentsScopedPerEmployee(t *testing.T) {
	plans := []WeekPlan{mondayPlan(t, 1), mondayPlan(t, 2)}
	existing := []Booking{
		{EmployeeID: 1, Interval: mustInterval(t, "10:00", "10:30")},
	}

	slots := ComputeAvailability(monday, 30, plans, existing, monday)

	s := slotByTime(t, slots, "10:00")
	if !s.Available {
		t.Fatalf("slot must stay available through the other employee")
	}
	if !reflect.DeepEqual(s.EmployeeIDs, []uint{2}) {
		t.Fatalf("employee ids = %v, want [2]", s.EmployeeIDs)
	}
}

func TestComputeAvailabilityEmployeeIDsSorted(t *testing.T) {
	plans := []WeekPlan{mondayPlan(t, 7), mondayPlan(t, 2), mondayPlan(t, 5)}

	slots := ComputeAvailability(monday, 30, plans, nil, monday)

	s := slotByTime(t, slots, "09:00")
	if !reflect.DeepEqual(s.EmployeeIDs, []uint{2, 5, 7}) {
		t.Fatalf("employee ids = %v, want ascending [2 5 7]", s.EmployeeIDs)
	}
}

func TestComputeAvailabilityNoPlanForWeekday(t *testing.T) {
	plan := WeekPlan{EmployeeID: 1}
	plan.Days[time.Tuesday] = mustInterval(t, "09:00", "17:00")

	slots := ComputeAvailability(monday, 30, []WeekPlan{plan}, nil, monday)

	for _, s := range slots {
		if s.Available {
			t.Fatalf("employee off on monday must contribute no slots")
		}
	}
}

func TestComputeAvailabilityTodayCutoff(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 50, 0, 0, time.UTC)
	plans := []WeekPlan{mondayPlan(t, 1)}

	slots := ComputeAvailability(monday, 30, plans, nil, now)

	// 09:50 + 15min = 10:05: 10:00 sai da grade, 10:15 fica
	for _, s := range slots {
		if s.Time <= mustClock(t, "10:00") {
			t.Fatalf("slot %s must be dropped by the lead-time cutoff", s.Time)
		}
	}
	if s := slotByTime(t, slots, "10:15"); !s.Available {
		t.Fatalf("10:15 must be retained and available")
	}
}

func TestComputeAvailabilityOtherDayIgnoresNow(t *testing.T) {
	now := time.Date(2026, 3, 3, 19, 0, 0, 0, time.UTC)
	plans := []WeekPlan{mondayPlan(t, 1)}

	slots := ComputeAvailability(monday, 30, plans, nil, now)

	if len(slots) != 48 {
		t.Fatalf("expected full grid for non-today date, got %d slots", len(slots))
	}
}

func TestComputeAvailabilityNonPositiveDuration(t *testing.T) {
	plans := []WeekPlan{mondayPlan(t, 1)}

	for _, d := range []int{0, -30} {
		slots := ComputeAvailability(monday, d, plans, nil, monday)
		if len(slots) != 48 {
			t.Fatalf("duration %d: expected full grid, got %d slots", d, len(slots))
		}
		for _, s := range slots {
			if s.Available {
				t.Fatalf("duration %d: slot %s must be unavailable", d, s.Time)
			}
		}
	}
}

func TestComputeAvailabilityIdempotent(t *testing.T) {
	plans := []WeekPlan{mondayPlan(t, 1), mondayPlan(t, 2)}
	existing := []Booking{
		{EmployeeID: 1, Interval: mustInterval(t, "14:00", "15:00")},
	}

	first := ComputeAvailability(monday, 45, plans, existing, monday)
	second := ComputeAvailability(monday, 45, plans, existing, monday)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs must yield identical output")
	}
}

func TestComputeAvailabilityBookingOnlyRemovesSlots(t *testing.T) {
	plans := []WeekPlan{mondayPlan(t, 1)}

	before := ComputeAvailability(monday, 30, plans, nil, monday)
	after := ComputeAvailability(monday, 30, plans, []Booking{
		{EmployeeID: 1, Interval: mustInterval(t, "15:00", "15:30")},
	}, monday)

	for i := range before {
		if !before[i].Available && after[i].Available {
			t.Fatalf("slot %s became available after adding a booking", after[i].Time)
		}
	}
}
