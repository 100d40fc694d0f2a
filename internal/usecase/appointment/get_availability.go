package appointment

import (
	"context"
	"time"

	"github.com/chairtime/booking-api/internal/cache"
	domain "github.com/chairtime/booking-api/internal/domain/appointment"
	"github.com/chairtime/booking-api/internal/domain/schedule"
	"github.com/chairtime/booking-api/internal/httperr"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewGetAvailability(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: availCache,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
	now time.Time,
) ([]schedule.Slot, error) {

	dateStr := in.Date.Format("2006-01-02")

	if slots, ok := uc.cache.Get(ctx, dateStr, in.ServiceID); ok {
		return slots, nil
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	employees, err := uc.repo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	templates, err := uc.repo.ListShiftTemplates(ctx)
	if err != nil {
		return nil, err
	}

	plans, err := buildWeekPlans(employees, templates)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForDate(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	existing := make([]schedule.Booking, 0, len(appointments))
	for _, ap := range appointments {
		iv, err := schedule.ParseInterval(ap.TimeFrom, ap.TimeTo)
		if err != nil {
			return nil, err
		}
		existing = append(existing, schedule.Booking{
			EmployeeID: ap.EmployeeID,
			Interval:   iv,
		})
	}

	slots := schedule.ComputeAvailability(
		in.Date,
		service.DurationMin,
		plans,
		existing,
		now,
	)

	uc.cache.Set(ctx, dateStr, in.ServiceID, slots)

	return slots, nil
}
