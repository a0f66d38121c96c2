package validations

import (
	"testing"

	"github.com/dinehub/reservation-app/models"
	"github.com/stretchr/testify/assert"
)

func validTableData() map[string]interface{} {
	return map[string]interface{}{
		"table_name": "Bar #1",
		"capacity":   float64(4),
	}
}

func TestParseTableValid(t *testing.T) {
	payload, apiErr := ParseTable(validTableData())
	assert.Nil(t, apiErr)
	assert.Equal(t, "Bar #1", payload.TableName)
	assert.Equal(t, 4, payload.Capacity)
	assert.Nil(t, payload.ReservationID)
}

func TestParseTableWithReservation(t *testing.T) {
	data := validTableData()
	data["reservation_id"] = float64(7)

	payload, apiErr := ParseTable(data)
	assert.Nil(t, apiErr)
	if assert.NotNil(t, payload.ReservationID) {
		assert.Equal(t, uint(7), *payload.ReservationID)
	}
}

func TestParseTableRejectsUnknownField(t *testing.T) {
	data := validTableData()
	data["legs"] = float64(3)

	_, apiErr := ParseTable(data)
	assert.NotNil(t, apiErr)
	assert.Contains(t, apiErr.Message, "legs")
}

func TestParseTableRequiredFields(t *testing.T) {
	for _, field := range []string{"table_name", "capacity"} {
		data := validTableData()
		delete(data, field)

		_, apiErr := ParseTable(data)
		assert.NotNil(t, apiErr, "missing %s should fail", field)
		assert.Contains(t, apiErr.Message, field)
	}
}

func TestParseTableNameLength(t *testing.T) {
	data := validTableData()
	data["table_name"] = "A"

	_, apiErr := ParseTable(data)
	assert.NotNil(t, apiErr)
	assert.Contains(t, apiErr.Message, "table_name")
}

func TestParseTableCapacityMustBeNumber(t *testing.T) {
	data := validTableData()
	data["capacity"] = "four"
	_, apiErr := ParseTable(data)
	assert.NotNil(t, apiErr)

	data["capacity"] = float64(0)
	_, apiErr = ParseTable(data)
	assert.NotNil(t, apiErr)
}

func TestParseSeatRequest(t *testing.T) {
	id, apiErr := ParseSeatRequest(map[string]interface{}{"reservation_id": float64(12)})
	assert.Nil(t, apiErr)
	assert.Equal(t, uint(12), id)

	_, apiErr = ParseSeatRequest(map[string]interface{}{})
	assert.NotNil(t, apiErr)

	_, apiErr = ParseSeatRequest(nil)
	assert.NotNil(t, apiErr)

	_, apiErr = ParseSeatRequest(map[string]interface{}{"reservation_id": "twelve"})
	assert.NotNil(t, apiErr)
}

func TestCheckSeating(t *testing.T) {
	table := &models.Table{ID: 1, TableName: "Bar #1", Capacity: 4}
	reservation := &models.Reservation{ID: 2, People: 3, Status: models.StatusBooked}

	assert.Nil(t, CheckSeating(table, reservation))

	small := &models.Table{ID: 1, Capacity: 2}
	apiErr := CheckSeating(small, reservation)
	assert.NotNil(t, apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.Contains(t, apiErr.Message, "capacity")

	other := uint(9)
	occupied := &models.Table{ID: 1, Capacity: 4, ReservationID: &other, Occupied: true}
	apiErr = CheckSeating(occupied, reservation)
	assert.NotNil(t, apiErr)
	assert.Equal(t, 409, apiErr.Status)

	seated := &models.Reservation{ID: 2, People: 3, Status: models.StatusSeated}
	apiErr = CheckSeating(table, seated)
	assert.NotNil(t, apiErr)
	assert.Equal(t, 409, apiErr.Status)
}

func TestCheckClearing(t *testing.T) {
	free := &models.Table{ID: 1, Capacity: 4}
	apiErr := CheckClearing(free)
	assert.NotNil(t, apiErr)
	assert.Equal(t, 400, apiErr.Status)

	id := uint(3)
	occupied := &models.Table{ID: 1, Capacity: 4, ReservationID: &id, Occupied: true}
	assert.Nil(t, CheckClearing(occupied))
}
