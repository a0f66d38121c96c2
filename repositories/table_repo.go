package repositories

import (
	"context"

	"github.com/dinehub/reservation-app/models"
	"gorm.io/gorm"
)

// TableRepository is the CRUD accessor over the tables relation.
type TableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{db: db}
}

// WithTx returns a copy bound to the given transaction handle.
func (t *TableRepository) WithTx(tx *gorm.DB) *TableRepository {
	return &TableRepository{db: tx}
}

// List returns all tables ordered by name.
func (t *TableRepository) List(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	err := t.db.WithContext(ctx).Order("table_name asc").Find(&tables).Error
	return tables, err
}

func (t *TableRepository) Create(ctx context.Context, table *models.Table) error {
	return t.db.WithContext(ctx).Create(table).Error
}

func (t *TableRepository) Find(ctx context.Context, id uint) (*models.Table, error) {
	var table models.Table
	if err := t.db.WithContext(ctx).First(&table, id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// UpdateSeat writes the occupancy pair together: the reservation reference
// and the occupied flag never change independently.
func (t *TableRepository) UpdateSeat(ctx context.Context, id uint, reservationID *uint, occupied bool) error {
	return t.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"reservation_id": reservationID,
			"occupied":       occupied,
		}).Error
}

// CountOccupied supports the dashboard.
func (t *TableRepository) CountOccupied(ctx context.Context, occupied bool) (int64, error) {
	var count int64
	err := t.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("occupied = ?", occupied).
		Count(&count).Error
	return count, err
}
