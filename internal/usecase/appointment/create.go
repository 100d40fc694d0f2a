package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chairtime/booking-api/internal/audit"
	"github.com/chairtime/booking-api/internal/cache"
	domain "github.com/chairtime/booking-api/internal/domain/appointment"
	"github.com/chairtime/booking-api/internal/domain/schedule"
	"github.com/chairtime/booking-api/internal/httperr"
	"github.com/chairtime/booking-api/internal/mail"
	"github.com/chairtime/booking-api/internal/models"
	"github.com/chairtime/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	EmployeeID uint
	ServiceID  uint

	Date string // YYYY-MM-DD
	Time string // HH:mm

	FirstName string
	LastName  string
	Email     string
	Phone     string
	Street    string
	Zip       string
	City      string

	Description string

	// preenchido no caminho administrativo para a auditoria
	AdminID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	cache  *cache.AvailabilityCache
	mailer *mail.Mailer
	tz     string
}

func NewCreateBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	availCache *cache.AvailabilityCache,
	mailer *mail.Mailer,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		audit:  auditDispatcher,
		cache:  availCache,
		mailer: mailer,
		tz:     tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	loc := timezone.Location(uc.tz)

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start, err := schedule.ParseClock(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	now := timezone.NowIn(uc.tz)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	if date.Before(today) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	if date.Equal(today) {
		cutoff := schedule.TimeOfDay(now.Hour()*60+now.Minute()) + schedule.LeadTimeMinutes
		if start <= cutoff {
			return nil, httperr.ErrBusiness("too_soon")
		}
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	employee, err := uc.repo.GetEmployee(ctx, in.EmployeeID)
	if err != nil {
		return nil, httperr.ErrBusiness("employee_not_found")
	}

	candidate := schedule.Interval{
		From: start,
		To:   start + schedule.TimeOfDay(service.DurationMin),
	}

	if err := assertWithinShiftFor(ctx, uc.repo, employee, date, candidate); err != nil {
		return nil, err
	}

	customer, err := uc.repo.GetOrCreateCustomer(ctx, &models.Customer{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Street:    in.Street,
		Zip:       in.Zip,
		City:      in.City,
	})
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		Reference:   uuid.NewString(),
		EmployeeID:  in.EmployeeID,
		ServiceID:   service.ID,
		CustomerID:  customer.ID,
		Date:        in.Date,
		TimeFrom:    candidate.From.String(),
		TimeTo:      candidate.To.String(),
		Description: in.Description,
		Status:      string(domain.StatusScheduled),
	}

	if err := uc.repo.CreateAppointmentBooking(ctx, ap); err != nil {
		if httperr.IsExclusionConflict(err) {
			// perdeu a corrida: a constraint do banco barrou depois que a
			// checagem da aplicação passou
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.Date)

	uc.audit.Dispatch(audit.Event{
		UserID:   in.AdminID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	go uc.mailer.SendConfirmation(mail.Confirmation{
		To:        customer.Email,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Service:   service.Name,
		Date:      ap.Date,
		TimeFrom:  ap.TimeFrom,
		TimeTo:    ap.TimeTo,
		Employee:  employee.Name,
	})

	return ap, nil
}

// assertWithinShiftFor valida expediente e almoço do funcionário para o
// dia do agendamento.
func assertWithinShiftFor(
	ctx context.Context,
	repo domain.Repository,
	employee *models.Employee,
	date time.Time,
	candidate schedule.Interval,
) error {

	templates, err := repo.ListShiftTemplates(ctx)
	if err != nil {
		return err
	}

	plans, err := buildWeekPlans([]models.Employee{*employee}, templates)
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		return httperr.ErrBusiness("outside_working_hours")
	}

	shift := plans[0].Days[date.Weekday()]
	if shift.IsZero() || !shift.Contains(candidate.From) || candidate.To > shift.To {
		return httperr.ErrBusiness("outside_working_hours")
	}

	if !plans[0].Lunch.IsZero() && candidate.Overlaps(plans[0].Lunch) {
		return httperr.ErrBusiness("outside_working_hours")
	}

	return nil
}
