package appointment

import (
	"context"
	"testing"

	"github.com/chairtime/booking-api/internal/httperr"
	"github.com/chairtime/booking-api/internal/models"
)

func scheduledAppointment() *models.Appointment {
	return &models.Appointment{
		ID:         7,
		Reference:  "ref-7",
		EmployeeID: 1,
		ServiceID:  1,
		Date:       futureMonday,
		TimeFrom:   "10:00",
		TimeTo:     "10:30",
		Status:     "scheduled",
	}
}

func lifecycleRepo(ap *models.Appointment, updated **models.Appointment) *fakeRepo {
	repo := bookingRepo(nil)

	repo.getAppointmentFn = func(ctx context.Context, id uint) (*models.Appointment, error) {
		cp := *ap
		return &cp, nil
	}
	repo.updateAppointmentFn = func(ctx context.Context, a *models.Appointment) error {
		if updated != nil {
			*updated = a
		}
		return nil
	}
	repo.updateBookingFn = func(ctx context.Context, a *models.Appointment) error {
		if updated != nil {
			*updated = a
		}
		return nil
	}

	return repo
}

func TestCancelBooking(t *testing.T) {
	var updated *models.Appointment
	repo := lifecycleRepo(scheduledAppointment(), &updated)

	uc := NewCancelBooking(repo, nil, nil, "UTC")

	ap, err := uc.Execute(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if ap.Status != "cancelled" {
		t.Fatalf("status = %q, want cancelled", ap.Status)
	}
	if ap.CancelledAt == nil {
		t.Fatalf("cancelled_at must be set")
	}
	if updated == nil {
		t.Fatalf("appointment was not persisted")
	}
}

func TestCancelBookingAlreadyCancelled(t *testing.T) {
	ap := scheduledAppointment()
	ap.Status = "cancelled"

	uc := NewCancelBooking(lifecycleRepo(ap, nil), nil, nil, "UTC")

	_, err := uc.Execute(context.Background(), 1, 7)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("err = %v, want invalid_state", err)
	}
}

func TestCompleteBooking(t *testing.T) {
	var updated *models.Appointment
	repo := lifecycleRepo(scheduledAppointment(), &updated)

	uc := NewCompleteBooking(repo, nil, "UTC")

	ap, err := uc.Execute(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if ap.Status != "completed" {
		t.Fatalf("status = %q, want completed", ap.Status)
	}
	if ap.CompletedAt == nil {
		t.Fatalf("completed_at must be set")
	}
}

func TestCompleteBookingCancelled(t *testing.T) {
	ap := scheduledAppointment()
	ap.Status = "cancelled"

	uc := NewCompleteBooking(lifecycleRepo(ap, nil), nil, "UTC")

	_, err := uc.Execute(context.Background(), 1, 7)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("err = %v, want invalid_state", err)
	}
}

func TestEditBookingMovesInterval(t *testing.T) {
	var updated *models.Appointment
	repo := lifecycleRepo(scheduledAppointment(), &updated)

	uc := NewEditBooking(repo, nil, nil, "UTC")

	ap, err := uc.Execute(context.Background(), EditBookingInput{
		AppointmentID: 7,
		EmployeeID:    1,
		ServiceID:     1,
		Date:          futureMonday,
		Time:          "14:00",
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if ap.TimeFrom != "14:00" || ap.TimeTo != "14:30" {
		t.Fatalf("interval = %s-%s, want 14:00-14:30", ap.TimeFrom, ap.TimeTo)
	}
	if updated == nil {
		t.Fatalf("appointment was not persisted")
	}
}

func TestEditBookingRejectsNonScheduled(t *testing.T) {
	ap := scheduledAppointment()
	ap.Status = "completed"

	uc := NewEditBooking(lifecycleRepo(ap, nil), nil, nil, "UTC")

	_, err := uc.Execute(context.Background(), EditBookingInput{
		AppointmentID: 7,
		EmployeeID:    1,
		ServiceID:     1,
		Date:          futureMonday,
		Time:          "14:00",
	})
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("err = %v, want invalid_state", err)
	}
}

func TestEditBookingOutsideShift(t *testing.T) {
	uc := NewEditBooking(lifecycleRepo(scheduledAppointment(), nil), nil, nil, "UTC")

	_, err := uc.Execute(context.Background(), EditBookingInput{
		AppointmentID: 7,
		EmployeeID:    1,
		ServiceID:     1,
		Date:          futureMonday,
		Time:          "19:00",
	})
	if !httperr.IsBusiness(err, "outside_working_hours") {
		t.Fatalf("err = %v, want outside_working_hours", err)
	}
}
