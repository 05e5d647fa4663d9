package models

import "time"

// Cliente final, dono de zero ou mais agendamentos
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email       string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	FullName    string `gorm:"size:100;not null" json:"full_name"`
	PhoneNumber string `gorm:"size:20" json:"phone_number"`

	Appointments []Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"appointments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
