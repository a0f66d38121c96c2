package services

import (
	"context"
	"errors"

	"github.com/dinehub/reservation-app/metrics"
	"github.com/dinehub/reservation-app/models"
	"github.com/dinehub/reservation-app/repositories"
	"github.com/dinehub/reservation-app/utils"
	"github.com/dinehub/reservation-app/validations"
	"gorm.io/gorm"
)

// TableService orchestrates table CRUD and the two-write seat/clear
// transitions. Seat and clear mutate a table and its linked reservation
// inside one transaction so no reader can observe only half the change.
type TableService struct {
	db           *gorm.DB
	tables       *repositories.TableRepository
	reservations *repositories.ReservationRepository
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{
		db:           db,
		tables:       repositories.NewTableRepository(db),
		reservations: repositories.NewReservationRepository(db),
	}
}

// List returns all tables ordered by name.
func (s *TableService) List(ctx context.Context) ([]models.Table, error) {
	return s.tables.List(ctx)
}

// Create validates the payload and inserts the table. A reservation_id in
// the payload seats that reservation immediately.
func (s *TableService) Create(ctx context.Context, data map[string]interface{}) (*models.Table, error) {
	payload, apiErr := validations.ParseTable(data)
	if apiErr != nil {
		return nil, apiErr
	}

	table := &models.Table{
		TableName: payload.TableName,
		Capacity:  payload.Capacity,
	}
	if payload.ReservationID == nil {
		if err := s.tables.Create(ctx, table); err != nil {
			return nil, err
		}
		utils.InfoLogger.Printf("Table %d (%s, capacity %d) created", table.ID, table.TableName, table.Capacity)
		return table, nil
	}

	// Seeding an occupied table seats the reservation too, keeping the
	// occupied-iff-seated invariant, so both writes share a transaction.
	if _, err := s.reservations.Find(ctx, *payload.ReservationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("Reservation %d cannot be found.", *payload.ReservationID)
		}
		return nil, err
	}
	table.ReservationID = payload.ReservationID
	table.Occupied = true

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.reservations.WithTx(tx).UpdateStatus(ctx, *payload.ReservationID, models.StatusSeated); err != nil {
			return err
		}
		return s.tables.WithTx(tx).Create(ctx, table)
	})
	if err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Table %d (%s, capacity %d) created", table.ID, table.TableName, table.Capacity)
	return table, nil
}

// Get resolves a table id or fails with a 404 naming it.
func (s *TableService) Get(ctx context.Context, id uint) (*models.Table, error) {
	table, err := s.tables.Find(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundf("Table %d does not exist.", id)
	}
	if err != nil {
		return nil, err
	}
	return table, nil
}

// Seat assigns a reservation to a table. The reservation status change and
// the table reference change commit together or not at all.
func (s *TableService) Seat(ctx context.Context, tableID uint, data map[string]interface{}) (*models.Table, error) {
	table, err := s.Get(ctx, tableID)
	if err != nil {
		return nil, err
	}

	reservationID, apiErr := validations.ParseSeatRequest(data)
	if apiErr != nil {
		return nil, apiErr
	}

	reservation, err := s.reservations.Find(ctx, reservationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundf("Reservation %d cannot be found.", reservationID)
	}
	if err != nil {
		return nil, err
	}

	if apiErr := validations.CheckSeating(table, reservation); apiErr != nil {
		return nil, apiErr
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.reservations.WithTx(tx).UpdateStatus(ctx, reservation.ID, models.StatusSeated); err != nil {
			return err
		}
		id := reservation.ID
		return s.tables.WithTx(tx).UpdateSeat(ctx, table.ID, &id, true)
	})
	if err != nil {
		return nil, err
	}

	id := reservation.ID
	table.ReservationID = &id
	table.Occupied = true
	metrics.IncTablesSeated()
	utils.InfoLogger.Printf("Reservation %d seated at table %d (%s)", reservation.ID, table.ID, table.TableName)
	return table, nil
}

// Clear finishes service at a table: the reservation reference is removed
// and the reservation transitions to finished, in one transaction.
func (s *TableService) Clear(ctx context.Context, tableID uint) (*models.Table, error) {
	table, err := s.Get(ctx, tableID)
	if err != nil {
		return nil, err
	}

	if apiErr := validations.CheckClearing(table); apiErr != nil {
		return nil, apiErr
	}

	reservationID := *table.ReservationID
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.reservations.WithTx(tx).UpdateStatus(ctx, reservationID, models.StatusFinished); err != nil {
			return err
		}
		return s.tables.WithTx(tx).UpdateSeat(ctx, table.ID, nil, false)
	})
	if err != nil {
		return nil, err
	}

	table.ReservationID = nil
	table.Occupied = false
	metrics.IncTablesCleared()
	utils.InfoLogger.Printf("Table %d cleared, reservation %d finished", table.ID, reservationID)
	return table, nil
}

// CountOccupied supports the dashboard.
func (s *TableService) CountOccupied(ctx context.Context, occupied bool) (int64, error) {
	return s.tables.CountOccupied(ctx, occupied)
}
