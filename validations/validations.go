package validations

import (
	"sort"
	"strings"
	"time"

	"github.com/dinehub/reservation-app/utils"
)

// ReservationCheck is a single business-rule predicate over an already
// parsed payload. now is injected so the past/future rules stay testable.
type ReservationCheck func(p *ReservationPayload, now time.Time) *utils.APIError

// RunReservationChecks runs the checks in order and stops at the first
// failure.
func RunReservationChecks(p *ReservationPayload, now time.Time, checks []ReservationCheck) *utils.APIError {
	for _, check := range checks {
		if apiErr := check(p, now); apiErr != nil {
			return apiErr
		}
	}
	return nil
}

// checkOnlyKnownFields rejects any payload key outside the allowed set.
func checkOnlyKnownFields(data map[string]interface{}, allowed []string) *utils.APIError {
	known := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		known[f] = true
	}

	var invalid []string
	for field := range data {
		if !known[field] {
			invalid = append(invalid, field)
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return utils.BadRequestf("Invalid field(s): %s", strings.Join(invalid, ", "))
	}
	return nil
}

// checkRequiredFields demands that every listed field is present and
// non-empty.
func checkRequiredFields(data map[string]interface{}, required []string) *utils.APIError {
	for _, field := range required {
		value, ok := data[field]
		if !ok || value == nil {
			return utils.BadRequestf("A '%s' field is required.", field)
		}
		if s, isString := value.(string); isString && s == "" {
			return utils.BadRequestf("A '%s' field is required.", field)
		}
	}
	return nil
}

func stringField(data map[string]interface{}, field string) (string, *utils.APIError) {
	value, ok := data[field]
	if !ok || value == nil {
		return "", nil
	}
	s, isString := value.(string)
	if !isString {
		return "", utils.BadRequestf("'%s' must be a string.", field)
	}
	return s, nil
}

// stripPhoneFormatting removes the usual phone punctuation so only the
// digit content is left.
func stripPhoneFormatting(number string) string {
	replacer := strings.NewReplacer("(", "", ")", "", "-", "", " ", "", ".", "")
	return replacer.Replace(number)
}

// StripPhoneDigits is the punctuation-stripping rule shared with the
// mobile-number search.
func StripPhoneDigits(number string) string {
	return stripPhoneFormatting(number)
}

// DigitsOnly drops everything but digits; search terms like "%555%" reduce
// to their digit content before matching.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// wholeNumber converts a decoded JSON value to an int, failing for
// non-numbers and fractional values.
func wholeNumber(value interface{}) (int, bool) {
	f, isNumber := value.(float64)
	if !isNumber || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

func numberToID(value interface{}) (uint, bool) {
	n, ok := wholeNumber(value)
	if !ok || n < 0 {
		return 0, false
	}
	return uint(n), true
}
