package repositories

import (
	"context"

	"github.com/dinehub/reservation-app/models"
	"gorm.io/gorm"
)

// ReservationRepository is the CRUD accessor over the reservations
// relation. Every call is a single round trip; errors come back untranslated
// and the caller decides how to surface them.
type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// WithTx returns a copy bound to the given transaction handle.
func (r *ReservationRepository) WithTx(tx *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: tx}
}

// ListByDate returns reservations for one date, excluding finished ones,
// ordered by time ascending. An empty date lists everything ordered by date
// then time.
func (r *ReservationRepository) ListByDate(ctx context.Context, date string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	query := r.db.WithContext(ctx)
	if date != "" {
		query = query.
			Where("reservation_date = ?", date).
			Where("status <> ?", models.StatusFinished).
			Order("reservation_time asc")
	} else {
		query = query.Order("reservation_date asc, reservation_time asc")
	}
	err := query.Find(&reservations).Error
	return reservations, err
}

// stripPhoneSQL collapses the usual phone punctuation in SQL, mirroring the
// stripping applied to the search term. REPLACE is portable across MySQL
// and SQLite.
const stripPhoneSQL = "REPLACE(REPLACE(REPLACE(REPLACE(mobile_number, '(', ''), ')', ''), '-', ''), ' ', '')"

// SearchByMobile matches the digit content of stored mobile numbers against
// the given digits, ordered by reservation date.
func (r *ReservationRepository) SearchByMobile(ctx context.Context, digits string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.WithContext(ctx).
		Where(stripPhoneSQL+" LIKE ?", "%"+digits+"%").
		Order("reservation_date asc").
		Find(&reservations).Error
	return reservations, err
}

func (r *ReservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *ReservationRepository) Find(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.WithContext(ctx).First(&reservation, id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *ReservationRepository) Save(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Save(reservation).Error
}

// UpdateStatus writes just the status column.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// CountByStatus supports the dashboard.
func (r *ReservationRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
