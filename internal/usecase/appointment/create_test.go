package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/chairtime/booking-api/internal/httperr"
	"github.com/chairtime/booking-api/internal/models"
)

// segunda-feira, longe o suficiente no futuro para os testes não
// dependerem do relógio
const futureMonday = "2030-04-01"

func bookingRepo(created **models.Appointment) *fakeRepo {
	return &fakeRepo{
		getServiceFn: func(ctx context.Context, id uint) (*models.Service, error) {
			return &models.Service{ID: id, Name: "Haircut", DurationMin: 30}, nil
		},
		getEmployeeFn: func(ctx context.Context, id uint) (*models.Employee, error) {
			return &models.Employee{ID: id, Name: "Alex", LunchStart: "12:00", LunchEnd: "13:00"}, nil
		},
		listShiftTemplatesFn: func(ctx context.Context) ([]models.ShiftTemplate, error) {
			return []models.ShiftTemplate{
				{EmployeeID: 1, Weekday: int(time.Monday), StartTime: "09:00", EndTime: "17:00"},
			}, nil
		},
		getOrCreateCustomer: func(ctx context.Context, c *models.Customer) (*models.Customer, error) {
			c.ID = 42
			return c, nil
		},
		createBookingFn: func(ctx context.Context, ap *models.Appointment) error {
			if created != nil {
				*created = ap
			}
			return nil
		},
	}
}

func newCreateBooking(repo *fakeRepo) *CreateBooking {
	return NewCreateBooking(repo, nil, nil, nil, "UTC")
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		EmployeeID: 1,
		ServiceID:  1,
		Date:       futureMonday,
		Time:       "10:00",
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane@example.com",
		Phone:      "123456",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	var created *models.Appointment
	uc := newCreateBooking(bookingRepo(&created))

	ap, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if created == nil {
		t.Fatalf("appointment was not persisted")
	}
	if ap.TimeFrom != "10:00" || ap.TimeTo != "10:30" {
		t.Fatalf("interval = %s-%s, want 10:00-10:30", ap.TimeFrom, ap.TimeTo)
	}
	if ap.Status != "scheduled" {
		t.Fatalf("status = %q, want scheduled", ap.Status)
	}
	if ap.Reference == "" {
		t.Fatalf("reference must be assigned")
	}
	if ap.CustomerID != 42 {
		t.Fatalf("customer id = %d, want 42", ap.CustomerID)
	}
}

func TestCreateBookingInvalidDate(t *testing.T) {
	uc := newCreateBooking(bookingRepo(nil))

	in := validInput()
	in.Date = "01/04/2030"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("err = %v, want invalid_date", err)
	}
}

func TestCreateBookingInvalidTime(t *testing.T) {
	uc := newCreateBooking(bookingRepo(nil))

	in := validInput()
	in.Time = "10am"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "invalid_time") {
		t.Fatalf("err = %v, want invalid_time", err)
	}
}

func TestCreateBookingDateInPast(t *testing.T) {
	uc := newCreateBooking(bookingRepo(nil))

	in := validInput()
	in.Date = "2020-01-06"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "date_in_past") {
		t.Fatalf("err = %v, want date_in_past", err)
	}
}

func TestCreateBookingOutsideWorkingHours(t *testing.T) {
	uc := newCreateBooking(bookingRepo(nil))

	cases := []struct {
		name string
		time string
	}{
		{name: "before shift", time: "08:00"},
		{name: "would end past shift", time: "16:45"},
		{name: "overlaps lunch", time: "11:45"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := validInput()
			in.Time = c.time

			_, err := uc.Execute(context.Background(), in)
			if !httperr.IsBusiness(err, "outside_working_hours") {
				t.Fatalf("err = %v, want outside_working_hours", err)
			}
		})
	}
}

func TestCreateBookingDayOff(t *testing.T) {
	uc := newCreateBooking(bookingRepo(nil))

	in := validInput()
	in.Date = "2030-04-02" // terça, sem turno cadastrado

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "outside_working_hours") {
		t.Fatalf("err = %v, want outside_working_hours", err)
	}
}

func TestCreateBookingConflictFromGuard(t *testing.T) {
	repo := bookingRepo(nil)
	repo.createBookingFn = func(ctx context.Context, ap *models.Appointment) error {
		return httperr.ErrBusiness("time_conflict")
	}

	uc := newCreateBooking(repo)

	_, err := uc.Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("err = %v, want time_conflict", err)
	}
}
