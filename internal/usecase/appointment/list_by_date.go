package appointment

import (
	"context"

	domain "github.com/chairtime/booking-api/internal/domain/appointment"
	"github.com/chairtime/booking-api/internal/dto"
	"github.com/chairtime/booking-api/internal/models"
)

type ListByDate struct {
	repo domain.Repository
}

func NewListByDate(repo domain.Repository) *ListByDate {
	return &ListByDate{repo: repo}
}

func (uc *ListByDate) Execute(
	ctx context.Context,
	date string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

func toListDTOs(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:           ap.ID,
			Reference:    ap.Reference,
			Date:         ap.Date,
			TimeFrom:     ap.TimeFrom,
			TimeTo:       ap.TimeTo,
			Status:       ap.Status,
			EmployeeID:   ap.EmployeeID,
			EmployeeName: ap.Employee.Name,
			ServiceID:    ap.ServiceID,
			ServiceName:  ap.Service.Name,
			CustomerID:   ap.CustomerID,
			FirstName:    ap.Customer.FirstName,
			LastName:     ap.Customer.LastName,
			Description:  ap.Description,
		})
	}
	return out
}
