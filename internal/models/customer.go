package models

import "time"

// Cliente simples, sem login, criado junto com o agendamento
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Email     string `gorm:"size:100;index" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
	Street    string `gorm:"size:255" json:"street"`
	Zip       string `gorm:"size:20" json:"zip"`
	City      string `gorm:"size:100" json:"city"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
