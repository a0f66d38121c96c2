package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/dinehub/reservation-app/services"
	"github.com/dinehub/reservation-app/utils"
	"gorm.io/gorm"
)

type TableController struct {
	service *services.TableService
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{service: services.NewTableService(db)}
}

// ListTables -> GET /tables
func (tc *TableController) ListTables(c *gin.Context) {
	tables, err := tc.service.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, tables)
}

// CreateTable -> POST /tables
func (tc *TableController) CreateTable(c *gin.Context) {
	data, apiErr := bindEnvelope(c)
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	table, err := tc.service.Create(c.Request.Context(), data)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, http.StatusCreated, table)
}

// GetTable -> GET /tables/:table_id
func (tc *TableController) GetTable(c *gin.Context) {
	id, apiErr := idParam(c, "table_id", "Table %s does not exist.")
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	table, err := tc.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, table)
}

// SeatTable -> PUT /tables/:table_id/seat
func (tc *TableController) SeatTable(c *gin.Context) {
	id, apiErr := idParam(c, "table_id", "Table %s does not exist.")
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}
	data, apiErr := bindEnvelope(c)
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	table, err := tc.service.Seat(c.Request.Context(), id, data)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, table)
}

// ClearTable -> DELETE /tables/:table_id/seat
func (tc *TableController) ClearTable(c *gin.Context) {
	id, apiErr := idParam(c, "table_id", "Table %s does not exist.")
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	table, err := tc.service.Clear(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, table)
}
