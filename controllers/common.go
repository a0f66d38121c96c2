package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/dinehub/reservation-app/utils"
)

// requestEnvelope is the {"data": {...}} wrapper every mutating request
// arrives in.
type requestEnvelope struct {
	Data map[string]interface{} `json:"data"`
}

func bindEnvelope(c *gin.Context) (map[string]interface{}, *utils.APIError) {
	var envelope requestEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		return nil, utils.BadRequestf("Request body must be valid JSON with a data object.")
	}
	return envelope.Data, nil
}

// idParam parses a numeric path parameter. A malformed id can never
// resolve, so it surfaces as a 404 built from notFoundFormat and the raw
// value.
func idParam(c *gin.Context, name, notFoundFormat string) (uint, *utils.APIError) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, utils.NotFoundf(notFoundFormat, raw)
	}
	return uint(id), nil
}
