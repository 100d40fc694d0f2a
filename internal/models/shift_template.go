package models

import "time"

// Um registro por funcionário por dia da semana (0 = domingo, convenção
// do time.Weekday). StartTime/EndTime vazios significam dia sem
// expediente.
type ShiftTemplate struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	EmployeeID uint `gorm:"index" json:"employee_id"`

	Weekday int `json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
