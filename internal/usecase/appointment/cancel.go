package appointment

import (
	"context"

	"github.com/chairtime/booking-api/internal/audit"
	"github.com/chairtime/booking-api/internal/cache"
	domain "github.com/chairtime/booking-api/internal/domain/appointment"
	"github.com/chairtime/booking-api/internal/httperr"
	"github.com/chairtime/booking-api/internal/models"
	"github.com/chairtime/booking-api/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
	tz    string
}

func NewCancelBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	availCache *cache.AvailabilityCache,
	tz string,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: auditDispatcher,
		cache: availCache,
		tz:    tz,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// horário liberado volta a aparecer na disponibilidade
	uc.cache.Invalidate(ctx, ap.Date)

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
