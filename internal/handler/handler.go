package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/der-api/internal/repository"
	"github.com/stemsi/der-api/internal/response"
	"github.com/stemsi/der-api/internal/validator"
)

// parseID reads the :id path parameter. A malformed id is answered as a
// server error, the same way the database reports an invalid integer literal.
// Integers outside the SERIAL range cannot match any row and answer 404.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return 0, false
		}
		response.FailWithDetail(c, http.StatusInternalServerError, response.ErrInvalidID, err.Error())
		return 0, false
	}
	if id < math.MinInt32 || id > math.MaxInt32 {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return 0, false
	}
	return int(id), true
}

// bind decodes the JSON body into dst and answers 500 INVALID_PAYLOAD on failure.
func bind(c *gin.Context, dst interface{}) bool {
	if fields := validator.Bind(c, dst); fields != nil {
		response.FailWithFields(c, http.StatusInternalServerError, response.ErrInvalidPayload, fields)
		return false
	}
	return true
}

// fail maps a service error onto the two outcomes a resource can produce:
// Not-Found (404) or Database-Error (500, with the driver's message).
func fail(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	_ = c.Error(err)
	response.FailWithDetail(c, http.StatusInternalServerError, response.ErrDatabase, err.Error())
}
