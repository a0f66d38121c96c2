package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/dinehub/reservation-app/models"
	"github.com/dinehub/reservation-app/services"
	"github.com/dinehub/reservation-app/utils"
	"gorm.io/gorm"
)

type AdminController struct {
	reservations *services.ReservationService
	tables       *services.TableService
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{
		reservations: services.NewReservationService(db),
		tables:       services.NewTableService(db),
	}
}

// GetDashboardStats -> GET /admin/dashboard/stats. Reservation counts by
// status plus table occupancy.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	ctx := c.Request.Context()

	statuses := []string{
		models.StatusBooked,
		models.StatusSeated,
		models.StatusFinished,
		models.StatusCancelled,
	}
	reservationCounts := make(map[string]int64, len(statuses))
	for _, status := range statuses {
		count, err := ac.reservations.CountByStatus(ctx, status)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		reservationCounts[status] = count
	}

	occupied, err := ac.tables.CountOccupied(ctx, true)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	free, err := ac.tables.CountOccupied(ctx, false)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{
		"reservations": reservationCounts,
		"tables": gin.H{
			"occupied": occupied,
			"free":     free,
			"total":    occupied + free,
		},
	})
}
