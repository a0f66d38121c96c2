package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/dinehub/reservation-app/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTableRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	tableCtrl := NewTableController(db)
	reservationCtrl := NewReservationController(db)
	r.POST("/reservations", reservationCtrl.CreateReservation)
	r.GET("/reservations/:reservation_id", reservationCtrl.GetReservation)
	r.GET("/tables", tableCtrl.ListTables)
	r.POST("/tables", tableCtrl.CreateTable)
	r.GET("/tables/:table_id", tableCtrl.GetTable)
	r.PUT("/tables/:table_id/seat", tableCtrl.SeatTable)
	r.DELETE("/tables/:table_id/seat", tableCtrl.ClearTable)
	return r
}

func createTableForTest(t *testing.T, r *gin.Engine, name string, capacity int) models.Table {
	t.Helper()
	w := postJSON(r, http.MethodPost, "/tables", envelope(map[string]interface{}{
		"table_name": name,
		"capacity":   capacity,
	}))
	assert.Equal(t, http.StatusCreated, w.Code)
	var response struct {
		Data models.Table `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Data
}

func createReservationForTest(t *testing.T, r *gin.Engine, people int) models.Reservation {
	t.Helper()
	fields := reservationFieldsForTest()
	fields["people"] = people
	w := postJSON(r, http.MethodPost, "/reservations", envelope(fields))
	assert.Equal(t, http.StatusCreated, w.Code)
	var response struct {
		Data models.Reservation `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Data
}

func TestListTablesOrderedByName(t *testing.T) {
	db := setupTestDB(t)
	r := setupTableRouter(db)

	createTableForTest(t, r, "Zebra", 4)
	createTableForTest(t, r, "Aardvark", 2)

	w := postJSON(r, http.MethodGet, "/tables", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Data []models.Table `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	if assert.Len(t, response.Data, 2) {
		assert.Equal(t, "Aardvark", response.Data[0].TableName)
		assert.Equal(t, "Zebra", response.Data[1].TableName)
	}
}

func TestCreateTableValidation(t *testing.T) {
	db := setupTestDB(t)
	r := setupTableRouter(db)

	w := postJSON(r, http.MethodPost, "/tables", envelope(map[string]interface{}{
		"table_name": "A",
		"capacity":   4,
	}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, http.MethodPost, "/tables", envelope(map[string]interface{}{
		"table_name": "Patio",
		"capacity":   "four",
	}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSeatAndClearFlow(t *testing.T) {
	db := setupTestDB(t)
	r := setupTableRouter(db)

	reservation := createReservationForTest(t, r, 3)
	table := createTableForTest(t, r, "Window", 4)

	seatURL := fmt.Sprintf("/tables/%d/seat", table.ID)
	w := postJSON(r, http.MethodPut, seatURL, envelope(map[string]interface{}{
		"reservation_id": reservation.ID,
	}))
	assert.Equal(t, http.StatusOK, w.Code)

	var seated struct {
		Data models.Table `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &seated))
	assert.True(t, seated.Data.Occupied)

	// The linked reservation is now seated.
	w = postJSON(r, http.MethodGet, fmt.Sprintf("/reservations/%d", reservation.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var linked struct {
		Data models.Reservation `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &linked))
	assert.Equal(t, models.StatusSeated, linked.Data.Status)

	// Clear the table; both sides flip together.
	w = postJSON(r, http.MethodDelete, seatURL, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var cleared struct {
		Data models.Table `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &cleared))
	assert.False(t, cleared.Data.Occupied)
	assert.Nil(t, cleared.Data.ReservationID)

	w = postJSON(r, http.MethodGet, fmt.Sprintf("/reservations/%d", reservation.ID), nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &linked))
	assert.Equal(t, models.StatusFinished, linked.Data.Status)
}

func TestSeatCapacityConflict(t *testing.T) {
	db := setupTestDB(t)
	r := setupTableRouter(db)

	reservation := createReservationForTest(t, r, 6)
	table := createTableForTest(t, r, "Corner", 2)

	w := postJSON(r, http.MethodPut, fmt.Sprintf("/tables/%d/seat", table.ID), envelope(map[string]interface{}{
		"reservation_id": reservation.ID,
	}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "capacity")
}

func TestClearUnoccupiedTable(t *testing.T) {
	db := setupTestDB(t)
	r := setupTableRouter(db)

	table := createTableForTest(t, r, "Window", 4)

	w := postJSON(r, http.MethodDelete, fmt.Sprintf("/tables/%d/seat", table.ID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not occupied")
}

func TestSeatUnknownTable(t *testing.T) {
	db := setupTestDB(t)
	r := setupTableRouter(db)

	reservation := createReservationForTest(t, r, 2)
	w := postJSON(r, http.MethodPut, "/tables/31337/seat", envelope(map[string]interface{}{
		"reservation_id": reservation.ID,
	}))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "31337")
}
