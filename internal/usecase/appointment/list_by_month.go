package appointment

import (
	"context"
	"time"

	domain "github.com/chairtime/booking-api/internal/domain/appointment"
	"github.com/chairtime/booking-api/internal/dto"
	"github.com/chairtime/booking-api/internal/timezone"
)

type ListByMonth struct {
	repo domain.Repository
	tz   string
}

func NewListByMonth(repo domain.Repository, tz string) *ListByMonth {
	return &ListByMonth{repo: repo, tz: tz}
}

func (uc *ListByMonth) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	loc := timezone.Location(uc.tz)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, -1)

	appointments, err := uc.repo.ListAppointmentsBetween(
		ctx,
		start.Format("2006-01-02"),
		end.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}
