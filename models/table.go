package models

import "time"

// Table is a physical table in the dining room. ReservationID points at the
// reservation currently seated there; it is nil exactly when Occupied is
// false.
type Table struct {
	ID            uint         `gorm:"primaryKey" json:"table_id"`
	TableName     string       `gorm:"type:varchar(255);not null" json:"table_name"`
	Capacity      int          `gorm:"not null" json:"capacity"`
	ReservationID *uint        `gorm:"index" json:"reservation_id"`
	Reservation   *Reservation `gorm:"foreignKey:ReservationID" json:"-"`
	Occupied      bool         `gorm:"not null;default:false" json:"occupied"`
	CreatedAt     time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null" json:"updated_at"`
}
