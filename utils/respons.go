package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DataResponse wraps every successful payload the way clients expect it:
// {"data": ...}.
type DataResponse struct {
	Data interface{} `json:"data"`
}

func RespondData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, DataResponse{Data: data})
}

// RespondError writes an APIError as {"status": code, "message": ...}.
// Any other error becomes a generic 500 so store internals never leak
// as business-rule messages.
func RespondError(c *gin.Context, err error) {
	if apiErr, ok := err.(*APIError); ok {
		c.JSON(apiErr.Status, apiErr)
		return
	}
	ErrorLogger.Errorf("unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, &APIError{
		Status:  http.StatusInternalServerError,
		Message: "Something went wrong.",
	})
}
