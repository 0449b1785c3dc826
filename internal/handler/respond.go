package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Priya1724/RealEstateFinal/internal/apperr"
)

const maxPageSize = 100

// apiError is the wire shape of every failure response.
type apiError struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Errors    []string  `json:"errors"`
}

// writeError maps a service error onto the structured error payload. Anything
// outside the apperr taxonomy becomes a 500 with a generic message.
func writeError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		details := appErr.Details
		if details == nil {
			details = []string{}
		}
		c.JSON(appErr.Status, apiError{
			Timestamp: time.Now().UTC(),
			Status:    appErr.Status,
			Message:   appErr.Message,
			Errors:    details,
		})
		return
	}

	log.Printf("unhandled error: %v", err)
	c.JSON(http.StatusInternalServerError, apiError{
		Timestamp: time.Now().UTC(),
		Status:    http.StatusInternalServerError,
		Message:   "Something went wrong",
		Errors:    []string{},
	})
}

// bindingError turns gin binding failures into the field-level 400 payload.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fmt.Sprintf("%s: failed on the '%s' rule", fe.Field(), fe.Tag()))
		}
		return apperr.Validation(details)
	}
	return apperr.BadRequest("invalid payload")
}

// pageParams reads the zero-based page index and page size, applying the
// endpoint's default size and a global cap.
func pageParams(c *gin.Context, defaultSize int) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultSize)))
	if err != nil || size <= 0 {
		size = defaultSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

// currentUserID returns the caller id placed in the context by the JWT
// middleware.
func currentUserID(c *gin.Context) (int64, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := raw.(int64)
	return id, ok
}
