package validations

import (
	"github.com/dinehub/reservation-app/models"
	"github.com/dinehub/reservation-app/utils"
)

var tableFields = []string{"table_name", "capacity", "reservation_id"}

var requiredTableFields = []string{"table_name", "capacity"}

// TablePayload is the typed table-creation request body.
type TablePayload struct {
	TableName     string
	Capacity      int
	ReservationID *uint
}

// ParseTable validates the raw table payload shape: whitelist, required
// fields, name length and numeric capacity.
func ParseTable(data map[string]interface{}) (*TablePayload, *utils.APIError) {
	if data == nil {
		return nil, utils.BadRequestf("A request body with a data object is required.")
	}

	if apiErr := checkOnlyKnownFields(data, tableFields); apiErr != nil {
		return nil, apiErr
	}
	if apiErr := checkRequiredFields(data, requiredTableFields); apiErr != nil {
		return nil, apiErr
	}

	name, apiErr := stringField(data, "table_name")
	if apiErr != nil {
		return nil, apiErr
	}
	if len(name) < 2 {
		return nil, utils.BadRequestf("table_name must be at least two characters long.")
	}

	capacity, ok := wholeNumber(data["capacity"])
	if !ok {
		return nil, utils.BadRequestf("capacity must be a number.")
	}
	if capacity < 1 {
		return nil, utils.BadRequestf("capacity must be greater than zero.")
	}

	payload := &TablePayload{TableName: name, Capacity: capacity}
	if raw, present := data["reservation_id"]; present && raw != nil {
		id, ok := numberToID(raw)
		if !ok {
			return nil, utils.BadRequestf("reservation_id must be a number.")
		}
		payload.ReservationID = &id
	}
	return payload, nil
}

// ParseSeatRequest extracts the reservation id from a seat request body.
func ParseSeatRequest(data map[string]interface{}) (uint, *utils.APIError) {
	if data == nil {
		return 0, utils.BadRequestf("A 'reservation_id' field is required.")
	}
	raw, present := data["reservation_id"]
	if !present || raw == nil {
		return 0, utils.BadRequestf("A 'reservation_id' field is required.")
	}
	id, ok := numberToID(raw)
	if !ok {
		return 0, utils.BadRequestf("reservation_id must be a number.")
	}
	return id, nil
}

// CheckSeating enforces the seating rules against current stored state:
// sufficient capacity, a free table and a reservation not already seated.
func CheckSeating(table *models.Table, reservation *models.Reservation) *utils.APIError {
	if table.Capacity < reservation.People {
		return utils.BadRequestf("Table does not have sufficient capacity.")
	}
	if table.ReservationID != nil {
		return utils.Conflictf("Table is occupied.")
	}
	if reservation.Status == models.StatusSeated {
		return utils.Conflictf("Reservation is already seated.")
	}
	return nil
}

// CheckClearing requires the table to actually have an occupying
// reservation.
func CheckClearing(table *models.Table) *utils.APIError {
	if table.ReservationID == nil {
		return utils.BadRequestf("Table is not occupied.")
	}
	return nil
}
