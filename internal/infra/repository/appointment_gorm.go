package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/chairtime/booking-api/internal/domain/appointment"
	"github.com/chairtime/booking-api/internal/domain/schedule"
	"github.com/chairtime/booking-api/internal/httperr"
	"github.com/chairtime/booking-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Employees / shift templates
// --------------------------------------------------

func (r *AppointmentGormRepository) GetEmployee(
	ctx context.Context,
	id uint,
) (*models.Employee, error) {

	var employee models.Employee
	if err := r.db.WithContext(ctx).First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *AppointmentGormRepository) ListEmployees(
	ctx context.Context,
) ([]models.Employee, error) {

	var employees []models.Employee
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *AppointmentGormRepository) ListShiftTemplates(
	ctx context.Context,
) ([]models.ShiftTemplate, error) {

	var templates []models.ShiftTemplate
	if err := r.db.WithContext(ctx).
		Order("employee_id ASC, weekday ASC").
		Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	customer *models.Customer,
) (*models.Customer, error) {

	if customer.Email != "" {
		var existing models.Customer
		err := r.db.WithContext(ctx).
			Where(
				"email = ? AND first_name = ? AND last_name = ?",
				customer.Email, customer.FirstName, customer.LastName,
			).
			First(&existing).Error

		if err == nil {
			return &existing, nil
		}
	}

	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, err
	}

	return customer, nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Employee").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Employee").
		Where("date = ? AND status = ?", date, "scheduled").
		Order("time_from ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsBetween(
	ctx context.Context,
	from string,
	to string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Employee").
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC, time_from ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Appointment (write, guarded)
// --------------------------------------------------

// CreateAppointmentBooking insere o agendamento atrás do guardião de
// sobreposição: dentro da transação, os agendamentos ativos do
// funcionário na data são travados (FOR UPDATE) e o candidato só entra
// se não conflitar com nenhum deles.
func (r *AppointmentGormRepository) CreateAppointmentBooking(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoOverlap(tx, ap, 0); err != nil {
			return err
		}
		return tx.Create(ap).Error
	})
}

// UpdateAppointmentBooking é o mesmo gate para edição: o próprio
// agendamento fica fora do conjunto comparado.
func (r *AppointmentGormRepository) UpdateAppointmentBooking(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoOverlap(tx, ap, ap.ID); err != nil {
			return err
		}
		return tx.Save(ap).Error
	})
}

func assertNoOverlap(tx *gorm.DB, ap *models.Appointment, excludeID uint) error {
	candidate, err := schedule.ParseInterval(ap.TimeFrom, ap.TimeTo)
	if err != nil {
		return httperr.ErrBusiness("invalid_time")
	}

	q := tx.
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("time_from", "time_to").
		Where(
			"employee_id = ? AND date = ? AND status = ?",
			ap.EmployeeID, ap.Date, "scheduled",
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var existing []models.Appointment
	if err := q.Find(&existing).Error; err != nil {
		return err
	}

	booked := make([]schedule.Interval, 0, len(existing))
	for _, e := range existing {
		iv, err := schedule.ParseInterval(e.TimeFrom, e.TimeTo)
		if err != nil {
			return err
		}
		booked = append(booked, iv)
	}

	if schedule.HasOverlap(candidate, booked) {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
