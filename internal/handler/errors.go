package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"rentalbilling/internal/billing"
	"rentalbilling/internal/repository"
	"rentalbilling/internal/service"
	"rentalbilling/pkg/response"
)

var badRequestErrors = []error{
	billing.ErrIncompleteBookingData,
	billing.ErrInvalidArgument,
	billing.ErrInvalidDegressiveRate,
	billing.ErrInvalidTaxValue,
	billing.ErrInvalidDiscountRate,
}

var conflictErrors = []error{
	billing.ErrInvalidCurrencyResynchronization,
	service.ErrInUse,
	service.ErrIsDefault,
	service.ErrDuplicateBillNumber,
	repository.ErrDuplicate,
}

// statusFor maps service and billing errors to an HTTP status code.
func statusFor(err error) int {
	if errors.Is(err, service.ErrNotFound) {
		return http.StatusNotFound
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}

// respondError writes err in the standard envelope. Internal errors are attached to the
// context for the request logger and are not echoed to the client.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(status, response.Error(status, "Internal server error"))
		return
	}
	c.JSON(status, response.Error(status, err.Error()))
}

// respondInvalidPayload lists the failing fields when binding tripped a validation tag.
func respondInvalidPayload(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	details := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		detail := fmt.Sprintf("%s: failed on %s", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			detail += "=" + fe.Param()
		}
		details = append(details, detail)
	}
	c.JSON(http.StatusBadRequest, response.Invalid(http.StatusBadRequest, "Invalid request payload", details))
}
