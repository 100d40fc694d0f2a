package appointment

import (
	"context"

	"github.com/chairtime/booking-api/internal/models"
)

type fakeRepo struct {
	getServiceFn         func(ctx context.Context, id uint) (*models.Service, error)
	listServicesFn       func(ctx context.Context) ([]models.Service, error)
	getEmployeeFn        func(ctx context.Context, id uint) (*models.Employee, error)
	listEmployeesFn      func(ctx context.Context) ([]models.Employee, error)
	listShiftTemplatesFn func(ctx context.Context) ([]models.ShiftTemplate, error)
	getOrCreateCustomer  func(ctx context.Context, c *models.Customer) (*models.Customer, error)
	getAppointmentFn     func(ctx context.Context, id uint) (*models.Appointment, error)
	listForDateFn        func(ctx context.Context, date string) ([]models.Appointment, error)
	listBetweenFn        func(ctx context.Context, from, to string) ([]models.Appointment, error)
	createBookingFn      func(ctx context.Context, ap *models.Appointment) error
	updateBookingFn      func(ctx context.Context, ap *models.Appointment) error
	updateAppointmentFn  func(ctx context.Context, ap *models.Appointment) error
}

func (f *fakeRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	if f.getServiceFn == nil {
		panic("GetService not configured")
	}
	return f.getServiceFn(ctx, id)
}

func (f *fakeRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	if f.listServicesFn == nil {
		panic("ListServices not configured")
	}
	return f.listServicesFn(ctx)
}

func (f *fakeRepo) GetEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	if f.getEmployeeFn == nil {
		panic("GetEmployee not configured")
	}
	return f.getEmployeeFn(ctx, id)
}

func (f *fakeRepo) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	if f.listEmployeesFn == nil {
		panic("ListEmployees not configured")
	}
	return f.listEmployeesFn(ctx)
}

func (f *fakeRepo) ListShiftTemplates(ctx context.Context) ([]models.ShiftTemplate, error) {
	if f.listShiftTemplatesFn == nil {
		panic("ListShiftTemplates not configured")
	}
	return f.listShiftTemplatesFn(ctx)
}

func (f *fakeRepo) GetOrCreateCustomer(ctx context.Context, c *models.Customer) (*models.Customer, error) {
	if f.getOrCreateCustomer == nil {
		panic("GetOrCreateCustomer not configured")
	}
	return f.getOrCreateCustomer(ctx, c)
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	if f.getAppointmentFn == nil {
		panic("GetAppointment not configured")
	}
	return f.getAppointmentFn(ctx, id)
}

func (f *fakeRepo) ListAppointmentsForDate(ctx context.Context, date string) ([]models.Appointment, error) {
	if f.listForDateFn == nil {
		panic("ListAppointmentsForDate not configured")
	}
	return f.listForDateFn(ctx, date)
}

func (f *fakeRepo) ListAppointmentsBetween(ctx context.Context, from, to string) ([]models.Appointment, error) {
	if f.listBetweenFn == nil {
		panic("ListAppointmentsBetween not configured")
	}
	return f.listBetweenFn(ctx, from, to)
}

func (f *fakeRepo) CreateAppointmentBooking(ctx context.Context, ap *models.Appointment) error {
	if f.createBookingFn == nil {
		panic("CreateAppointmentBooking not configured")
	}
	return f.createBookingFn(ctx, ap)
}

func (f *fakeRepo) UpdateAppointmentBooking(ctx context.Context, ap *models.Appointment) error {
	if f.updateBookingFn == nil {
		panic("UpdateAppointmentBooking not configured")
	}
	return f.updateBookingFn(ctx, ap)
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.updateAppointmentFn == nil {
		panic("UpdateAppointment not configured")
	}
	return f.updateAppointmentFn(ctx, ap)
}
