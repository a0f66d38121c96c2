package validations

import (
	"time"

	"github.com/dinehub/reservation-app/models"
	"github.com/dinehub/reservation-app/utils"
)

// Operating hours. Both bounds are inclusive: a reservation exactly at
// opening or closing time is accepted.
const (
	OpeningTime = "10:30"
	ClosingTime = "21:30"
)

// ClosedWeekday is the weekly closing day.
const ClosedWeekday = time.Tuesday

var reservationFields = []string{
	"first_name",
	"last_name",
	"mobile_number",
	"reservation_date",
	"reservation_time",
	"people",
	"status",
}

var requiredReservationFields = []string{
	"first_name",
	"last_name",
	"mobile_number",
	"reservation_date",
	"reservation_time",
	"people",
}

// ReservationPayload is the typed reservation request body, produced at the
// boundary before any business-rule predicate runs.
type ReservationPayload struct {
	FirstName       string
	LastName        string
	MobileNumber    string
	ReservationDate string
	ReservationTime string
	People          int
	Status          string
}

var dateTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// DateTime parses the combined date and time in the server's local zone.
func (p *ReservationPayload) DateTime() (time.Time, error) {
	var lastErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.ParseInLocation(layout, p.ReservationDate+" "+p.ReservationTime, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ParseReservationCreate validates the raw payload shape for the create
// path: field whitelist, required fields and numeric content.
func ParseReservationCreate(data map[string]interface{}) (*ReservationPayload, *utils.APIError) {
	return parseReservation(data, true)
}

// ParseReservationEdit is the narrower full-edit shape: unknown fields are
// tolerated, everything else is checked as on create.
func ParseReservationEdit(data map[string]interface{}) (*ReservationPayload, *utils.APIError) {
	return parseReservation(data, false)
}

func parseReservation(data map[string]interface{}, strict bool) (*ReservationPayload, *utils.APIError) {
	if data == nil {
		return nil, utils.BadRequestf("A request body with a data object is required.")
	}

	if strict {
		if apiErr := checkOnlyKnownFields(data, reservationFields); apiErr != nil {
			return nil, apiErr
		}
	}
	if apiErr := checkRequiredFields(data, requiredReservationFields); apiErr != nil {
		return nil, apiErr
	}

	people, ok := wholeNumber(data["people"])
	if !ok {
		return nil, utils.BadRequestf("people must be a number.")
	}
	if people < 1 {
		return nil, utils.BadRequestf("people must be greater than zero.")
	}

	payload := &ReservationPayload{People: people}
	stringFields := []struct {
		name string
		dest *string
	}{
		{"first_name", &payload.FirstName},
		{"last_name", &payload.LastName},
		{"mobile_number", &payload.MobileNumber},
		{"reservation_date", &payload.ReservationDate},
		{"reservation_time", &payload.ReservationTime},
		{"status", &payload.Status},
	}
	for _, f := range stringFields {
		s, apiErr := stringField(data, f.name)
		if apiErr != nil {
			return nil, apiErr
		}
		*f.dest = s
	}

	if !allDigits(stripPhoneFormatting(payload.MobileNumber)) {
		return nil, utils.BadRequestf("mobile_number must contain only digits.")
	}

	return payload, nil
}

// CreateReservationChecks is the ordered predicate list for creation. The
// orchestrator stops at the first failure.
var CreateReservationChecks = []ReservationCheck{
	DateTimeParses,
	NotInPast,
	NotOnClosedDay,
	WithinOperatingHours,
	CreatableStatus,
}

// EditReservationChecks is the narrower list for the full-edit path: the
// past, closed-day and operating-hours rules deliberately do not run.
var EditReservationChecks = []ReservationCheck{
	DateTimeParses,
}

func dateTimeFormatError() *utils.APIError {
	return utils.BadRequestf("reservation_date or reservation_time is in an incorrect format.")
}

// DateTimeParses rejects payloads whose date and time do not combine into a
// valid calendar date-time.
func DateTimeParses(p *ReservationPayload, _ time.Time) *utils.APIError {
	if _, err := p.DateTime(); err != nil {
		return dateTimeFormatError()
	}
	return nil
}

// NotInPast rejects reservations strictly before the current moment.
func NotInPast(p *ReservationPayload, now time.Time) *utils.APIError {
	dt, err := p.DateTime()
	if err != nil {
		return dateTimeFormatError()
	}
	if dt.Before(now) {
		return utils.BadRequestf("reservation_date and reservation_time must be in the future.")
	}
	return nil
}

// NotOnClosedDay rejects reservations on the weekly closing day.
func NotOnClosedDay(p *ReservationPayload, _ time.Time) *utils.APIError {
	dt, err := p.DateTime()
	if err != nil {
		return dateTimeFormatError()
	}
	if dt.Weekday() == ClosedWeekday {
		return utils.BadRequestf("Restaurant is closed on %s.", ClosedWeekday)
	}
	return nil
}

// WithinOperatingHours keeps the reservation time inside opening hours,
// inclusive at both bounds.
func WithinOperatingHours(p *ReservationPayload, _ time.Time) *utils.APIError {
	dt, err := p.DateTime()
	if err != nil {
		return dateTimeFormatError()
	}
	clock := dt.Format("15:04")
	if clock < OpeningTime {
		return utils.BadRequestf("Restaurant does not open until %s.", OpeningTime)
	}
	if clock > ClosingTime {
		return utils.BadRequestf("Restaurant closes at %s.", ClosingTime)
	}
	return nil
}

// CreatableStatus allows a new reservation to carry no status or booked
// only.
func CreatableStatus(p *ReservationPayload, _ time.Time) *utils.APIError {
	if p.Status == models.StatusSeated || p.Status == models.StatusFinished {
		return utils.BadRequestf("A new reservation cannot have status %s.", p.Status)
	}
	return nil
}

// ParseStatusChange extracts the proposed status from a status-update body.
func ParseStatusChange(data map[string]interface{}) (string, *utils.APIError) {
	if data == nil {
		return "", utils.BadRequestf("A request body with a data object is required.")
	}
	status, apiErr := stringField(data, "status")
	if apiErr != nil {
		return "", apiErr
	}
	if status == "" {
		return "", utils.BadRequestf("A 'status' field is required.")
	}
	return status, nil
}

// CheckStatusChange enforces the transition rules: the proposed status must
// be known and the current status must not be terminal.
func CheckStatusChange(current, proposed string) *utils.APIError {
	if !models.ValidReservationStatus(proposed) {
		return utils.BadRequestf("Status %s is unknown.", proposed)
	}
	if models.TerminalStatus(current) {
		return utils.BadRequestf("Reservation is already %s.", current)
	}
	return nil
}
