package services

import (
	"context"
	"testing"
	"time"

	"github.com/dinehub/reservation-app/models"
	"github.com/stretchr/testify/assert"
)

var wednesdayNoon = time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local)

func createData() map[string]interface{} {
	return map[string]interface{}{
		"first_name":       "Rick",
		"last_name":        "Sanchez",
		"mobile_number":    "(555) 123-4567",
		"reservation_date": "2025-01-08",
		"reservation_time": "18:00",
		"people":           float64(4),
	}
}

func TestCreatePersistsBookedWithIdentity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	ctx := context.Background()

	first, err := svc.Create(ctx, createData(), wednesdayNoon)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusBooked, first.Status)
	assert.NotZero(t, first.ID)

	second, err := svc.Create(ctx, createData(), wednesdayNoon)
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateRejectedWritesNoRow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	ctx := context.Background()

	data := createData()
	data["surprise"] = "field"

	_, err := svc.Create(ctx, data, wednesdayNoon)
	assert.Error(t, err)

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateNormalizesTime(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)

	data := createData()
	data["reservation_time"] = "18:00:00"

	created, err := svc.Create(context.Background(), data, wednesdayNoon)
	assert.NoError(t, err)
	assert.Equal(t, "18:00", created.ReservationTime)
}

func TestUpdateStatusTerminalRules(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, createData(), wednesdayNoon)
	assert.NoError(t, err)

	statusBody := func(s string) map[string]interface{} {
		return map[string]interface{}{"status": s}
	}

	updated, err := svc.UpdateStatus(ctx, created.ID, statusBody(models.StatusFinished))
	assert.NoError(t, err)
	assert.Equal(t, models.StatusFinished, updated.Status)

	for _, proposed := range []string{"booked", "seated", "finished", "cancelled"} {
		_, err := svc.UpdateStatus(ctx, created.ID, statusBody(proposed))
		assert.Error(t, err, "finished -> %s must be rejected", proposed)
	}
}

func TestUpdateStatusUnknownReservation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)

	_, err := svc.UpdateStatus(context.Background(), 777, map[string]interface{}{"status": "seated"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "777")
}

func TestFullEditSkipsScheduleRules(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, createData(), wednesdayNoon)
	assert.NoError(t, err)

	// An edit may move the reservation to a past Tuesday outside opening
	// hours; only the format rules run on this path.
	edited, err := svc.Update(ctx, created.ID, map[string]interface{}{
		"first_name":       "Richard",
		"last_name":        "Sanchez",
		"mobile_number":    "555-9999",
		"reservation_date": "2020-06-02",
		"reservation_time": "23:00",
		"people":           float64(2),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Richard", edited.FirstName)
	assert.Equal(t, "2020-06-02", edited.ReservationDate)
	assert.Equal(t, "23:00", edited.ReservationTime)
	assert.Equal(t, 2, edited.People)
}

func TestListPrefersMobileFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, createData(), wednesdayNoon)
	assert.NoError(t, err)

	other := createData()
	other["mobile_number"] = "808-111-2222"
	_, err = svc.Create(ctx, other, wednesdayNoon)
	assert.NoError(t, err)

	matches, err := svc.List(ctx, "", "%555%")
	assert.NoError(t, err)
	if assert.Len(t, matches, 1) {
		assert.Equal(t, "(555) 123-4567", matches[0].MobileNumber)
	}

	byDate, err := svc.List(ctx, "2025-01-08", "")
	assert.NoError(t, err)
	assert.Len(t, byDate, 2)
}
