package service

import (
	"fmt"
	"net/http"

	"backoffice-service/httperrors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/txix-open/validator/v10"
)

var validate = validator.New()

func validateRequest(value any) error {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	validationErrors := validator.ValidationErrors{}
	if !errors.As(err, &validationErrors) {
		return httperrors.New(http.StatusBadRequest, "invalid request body", err)
	}

	details := make([]any, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		details = append(details, fmt.Sprintf("%s: failed on '%s'", fieldError.Field(), fieldError.Tag()))
	}
	return httperrors.New(http.StatusBadRequest, "invalid request body", err).
		WithDetails(details...)
}

func newId(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}
