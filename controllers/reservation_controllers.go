package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/dinehub/reservation-app/services"
	"github.com/dinehub/reservation-app/utils"
	"gorm.io/gorm"
)

type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{service: services.NewReservationService(db)}
}

// ListReservations -> GET /reservations?date=...&mobile_number=...
func (rc *ReservationController) ListReservations(c *gin.Context) {
	date := c.Query("date")
	mobileNumber := c.Query("mobile_number")

	reservations, err := rc.service.List(c.Request.Context(), date, mobileNumber)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, reservations)
}

// CreateReservation -> POST /reservations
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	data, apiErr := bindEnvelope(c)
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	reservation, err := rc.service.Create(c.Request.Context(), data, time.Now())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, http.StatusCreated, reservation)
}

// GetReservation -> GET /reservations/:reservation_id
func (rc *ReservationController) GetReservation(c *gin.Context) {
	id, apiErr := idParam(c, "reservation_id", "Reservation %s cannot be found.")
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	reservation, err := rc.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, reservation)
}

// UpdateReservationStatus -> PUT /reservations/:reservation_id/status
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	id, apiErr := idParam(c, "reservation_id", "Reservation %s cannot be found.")
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}
	data, apiErr := bindEnvelope(c)
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	reservation, err := rc.service.UpdateStatus(c.Request.Context(), id, data)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, reservation)
}

// UpdateReservation -> PUT /reservations/:reservation_id (full edit)
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, apiErr := idParam(c, "reservation_id", "Reservation %s cannot be found.")
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}
	data, apiErr := bindEnvelope(c)
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	reservation, err := rc.service.Update(c.Request.Context(), id, data)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, reservation)
}
