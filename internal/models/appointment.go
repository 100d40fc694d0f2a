package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Código público entregue ao cliente na confirmação.
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	EmployeeID uint     `gorm:"index:idx_appointments_employee_date" json:"employee_id"`
	Employee   Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"employee"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	// Data "YYYY-MM-DD" e horários "HH:mm"; comparações em minutos ficam
	// no domínio, o banco carrega só os formatos de borda.
	Date     string `gorm:"size:10;index;index:idx_appointments_employee_date" json:"date"`
	TimeFrom string `gorm:"size:5;not null" json:"time_from"`
	TimeTo   string `gorm:"size:5;not null" json:"time_to"`

	Description string `gorm:"size:255" json:"description"`

	Status      string     `gorm:"size:20;default:'scheduled'" json:"status"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
