package models

import "time"

// Reservation statuses. A reservation is created as booked, moves to seated
// when assigned to a table and to finished when the table is cleared.
// Finished and cancelled are terminal.
const (
	StatusBooked    = "booked"
	StatusSeated    = "seated"
	StatusFinished  = "finished"
	StatusCancelled = "cancelled"
)

type Reservation struct {
	ID              uint      `gorm:"primaryKey" json:"reservation_id"`
	FirstName       string    `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName        string    `gorm:"type:varchar(255);not null" json:"last_name"`
	MobileNumber    string    `gorm:"type:varchar(50);not null" json:"mobile_number"`
	ReservationDate string    `gorm:"type:varchar(10);not null;index" json:"reservation_date"`
	ReservationTime string    `gorm:"type:varchar(5);not null" json:"reservation_time"`
	People          int       `gorm:"not null" json:"people"`
	Status          string    `gorm:"type:varchar(20);not null;default:'booked'" json:"status"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

// ValidReservationStatus reports whether s is one of the four known statuses.
func ValidReservationStatus(s string) bool {
	switch s {
	case StatusBooked, StatusSeated, StatusFinished, StatusCancelled:
		return true
	}
	return false
}

// TerminalStatus reports whether s permits no further transitions.
func TerminalStatus(s string) bool {
	return s == StatusFinished || s == StatusCancelled
}
