package appointment

import (
	"context"

	"github.com/chairtime/booking-api/internal/models"
)

type Repository interface {
	// -------- Service catalog --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	ListServices(
		ctx context.Context,
	) ([]models.Service, error)

	// -------- Employees / shift templates --------
	GetEmployee(
		ctx context.Context,
		id uint,
	) (*models.Employee, error)

	ListEmployees(
		ctx context.Context,
	) ([]models.Employee, error)

	ListShiftTemplates(
		ctx context.Context,
	) ([]models.ShiftTemplate, error)

	// -------- Customer --------
	GetOrCreateCustomer(
		ctx context.Context,
		customer *models.Customer,
	) (*models.Customer, error)

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointmentsForDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsBetween(
		ctx context.Context,
		from string,
		to string,
	) ([]models.Appointment, error)

	// -------- Appointment (write, guarded) --------
	// As duas variantes rodam o guardião de sobreposição dentro da mesma
	// transação que trava os agendamentos do funcionário na data.
	CreateAppointmentBooking(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointmentBooking(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
