package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"
)

func TestFromDomainError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    ErrorCode
		message string
		status  int
	}{
		{"validation", shared.NewValidationError("Customer", "name", "Name is required"), CodeValidation, "Name is required", http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("find: %w", shared.NewNotFoundError("Order")), CodeNotFound, "Order not found", http.StatusNotFound},
		{"store failure", errors.New("connection refused"), CodeInternal, "internal server error", http.StatusInternalServerError},
		{"app error", BadRequest("bad body"), CodeBadRequest, "bad body", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromDomainError(tt.err)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.message, appErr.Message)
			assert.Equal(t, tt.status, appErr.HTTPStatusCode())
			assert.True(t, Is(appErr, tt.code))
		})
	}

	assert.Nil(t, FromDomainError(nil))
}

func TestFromDomainErrorKeepsField(t *testing.T) {
	appErr := FromDomainError(shared.NewValidationError("Address", "zip", "Zip is required"))
	assert.Equal(t, "zip", appErr.Field)
	assert.True(t, shared.IsValidationError(appErr))
}

func TestAppErrorMessage(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: Customer not found", FromDomainError(shared.NewNotFoundError("Customer")).Error())
	assert.Equal(t, "INTERNAL_ERROR: internal server error (boom)", Wrap(errors.New("boom"), CodeInternal, "internal server error").Error())
}
