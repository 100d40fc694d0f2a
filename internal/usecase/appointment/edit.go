package appointment

import (
	"context"
	"time"

	"github.com/chairtime/booking-api/internal/audit"
	"github.com/chairtime/booking-api/internal/cache"
	domain "github.com/chairtime/booking-api/internal/domain/appointment"
	"github.com/chairtime/booking-api/internal/domain/schedule"
	"github.com/chairtime/booking-api/internal/httperr"
	"github.com/chairtime/booking-api/internal/models"
	"github.com/chairtime/booking-api/internal/timezone"
)

type EditBookingInput struct {
	AppointmentID uint

	EmployeeID uint
	ServiceID  uint

	Date string
	Time string

	Description string

	AdminID *uint
}

type EditBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
	tz    string
}

func NewEditBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	availCache *cache.AvailabilityCache,
	tz string,
) *EditBooking {
	return &EditBooking{
		repo:  repo,
		audit: auditDispatcher,
		cache: availCache,
		tz:    tz,
	}
}

func (uc *EditBooking) Execute(
	ctx context.Context,
	in EditBookingInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.Status != string(domain.StatusScheduled) {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	loc := timezone.Location(uc.tz)

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start, err := schedule.ParseClock(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
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

	oldDate := ap.Date

	ap.EmployeeID = in.EmployeeID
	ap.ServiceID = in.ServiceID
	ap.Date = in.Date
	ap.TimeFrom = candidate.From.String()
	ap.TimeTo = candidate.To.String()
	ap.Description = in.Description

	if err := uc.repo.UpdateAppointmentBooking(ctx, ap); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	uc.cache.Invalidate(ctx, oldDate)
	if ap.Date != oldDate {
		uc.cache.Invalidate(ctx, ap.Date)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.AdminID,
		Action:   "appointment_edited",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
