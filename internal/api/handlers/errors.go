package handlers

import (
	"net/http"
	"strconv"

	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"landlord not found"`
	Details string `json:"details,omitempty"`
}

// DataResponse wraps a single record
type DataResponse struct {
	Data interface{} `json:"data"`
}

// statusFor maps the application error taxonomy onto HTTP status codes
func statusFor(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyExists(err), apperrors.IsConstraint(err):
		return http.StatusConflict
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsConnection(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with its mapped status. Unexpected failures are
// logged and reported without internals.
func respondError(c *gin.Context, err error, action string) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error(action)
		if status == http.StatusInternalServerError {
			c.JSON(status, ErrorResponse{Error: action})
			return
		}
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, DataResponse{Data: data})
}

// pathID parses a positive numeric path parameter
func pathID(c *gin.Context, name, entity string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + entity + " id"})
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query parameters", Details: err.Error()})
		return false
	}
	return true
}
