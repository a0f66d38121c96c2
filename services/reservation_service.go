package services

import (
	"context"
	"errors"
	"time"

	"github.com/dinehub/reservation-app/metrics"
	"github.com/dinehub/reservation-app/models"
	"github.com/dinehub/reservation-app/repositories"
	"github.com/dinehub/reservation-app/utils"
	"github.com/dinehub/reservation-app/validations"
	"gorm.io/gorm"
)

// ReservationService sequences the validation predicates for each
// reservation transition and then calls into the store.
type ReservationService struct {
	reservations *repositories.ReservationRepository
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{
		reservations: repositories.NewReservationRepository(db),
	}
}

// List returns reservations filtered by date or by mobile-number digits.
// The mobile filter wins when both are present, matching the listing
// endpoint's contract.
func (s *ReservationService) List(ctx context.Context, date, mobileNumber string) ([]models.Reservation, error) {
	if mobileNumber != "" {
		return s.reservations.SearchByMobile(ctx, validations.DigitsOnly(mobileNumber))
	}
	return s.reservations.ListByDate(ctx, date)
}

// Create runs the full creation pipeline: payload shape, then the ordered
// business-rule checks, then a single insert with status booked.
func (s *ReservationService) Create(ctx context.Context, data map[string]interface{}, now time.Time) (*models.Reservation, error) {
	payload, apiErr := validations.ParseReservationCreate(data)
	if apiErr != nil {
		return nil, apiErr
	}
	if apiErr := validations.RunReservationChecks(payload, now, validations.CreateReservationChecks); apiErr != nil {
		return nil, apiErr
	}

	dt, err := payload.DateTime()
	if err != nil {
		return nil, utils.BadRequestf("reservation_date or reservation_time is in an incorrect format.")
	}

	reservation := &models.Reservation{
		FirstName:       payload.FirstName,
		LastName:        payload.LastName,
		MobileNumber:    payload.MobileNumber,
		ReservationDate: dt.Format("2006-01-02"),
		ReservationTime: dt.Format("15:04"),
		People:          payload.People,
		Status:          models.StatusBooked,
	}
	if err := s.reservations.Create(ctx, reservation); err != nil {
		return nil, err
	}

	metrics.IncReservationsCreated()
	utils.InfoLogger.Printf("Reservation %d created for %s %s on %s %s (party of %d)",
		reservation.ID, reservation.FirstName, reservation.LastName,
		reservation.ReservationDate, reservation.ReservationTime, reservation.People)
	return reservation, nil
}

// Get resolves a reservation id or fails with a 404 naming it.
func (s *ReservationService) Get(ctx context.Context, id uint) (*models.Reservation, error) {
	reservation, err := s.reservations.Find(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundf("Reservation %d cannot be found.", id)
	}
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

// UpdateStatus transitions an existing reservation, refusing unknown
// statuses and any change off a terminal status.
func (s *ReservationService) UpdateStatus(ctx context.Context, id uint, data map[string]interface{}) (*models.Reservation, error) {
	reservation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	proposed, apiErr := validations.ParseStatusChange(data)
	if apiErr != nil {
		return nil, apiErr
	}
	if apiErr := validations.CheckStatusChange(reservation.Status, proposed); apiErr != nil {
		return nil, apiErr
	}

	if err := s.reservations.UpdateStatus(ctx, id, proposed); err != nil {
		return nil, err
	}
	reservation.Status = proposed
	utils.InfoLogger.Printf("Reservation %d status changed to %s", id, proposed)
	return reservation, nil
}

// Update is the full-edit path. It runs the required-field, numeric and
// date-format checks but deliberately not the past, closed-day or
// operating-hours rules.
func (s *ReservationService) Update(ctx context.Context, id uint, data map[string]interface{}) (*models.Reservation, error) {
	reservation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, apiErr := validations.ParseReservationEdit(data)
	if apiErr != nil {
		return nil, apiErr
	}
	if apiErr := validations.RunReservationChecks(payload, time.Now(), validations.EditReservationChecks); apiErr != nil {
		return nil, apiErr
	}

	dt, err := payload.DateTime()
	if err != nil {
		return nil, utils.BadRequestf("reservation_date or reservation_time is in an incorrect format.")
	}

	reservation.FirstName = payload.FirstName
	reservation.LastName = payload.LastName
	reservation.MobileNumber = payload.MobileNumber
	reservation.ReservationDate = dt.Format("2006-01-02")
	reservation.ReservationTime = dt.Format("15:04")
	reservation.People = payload.People
	if payload.Status != "" {
		if !models.ValidReservationStatus(payload.Status) {
			return nil, utils.BadRequestf("Status %s is unknown.", payload.Status)
		}
		reservation.Status = payload.Status
	}

	if err := s.reservations.Save(ctx, reservation); err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Reservation %d updated", id)
	return reservation, nil
}

// CountByStatus supports the dashboard.
func (s *ReservationService) CountByStatus(ctx context.Context, status string) (int64, error) {
	return s.reservations.CountByStatus(ctx, status)
}
