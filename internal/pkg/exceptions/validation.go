package exceptions

import (
	"errors"
	"interview-scheduler/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError turns the first failed rule into a client
// message such as "interview.student must not be blank".
func FormatFirstValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	fieldErr := validationErrors[0]
	message, ok := constvars.ValidationMessages[fieldErr.Tag()]
	if !ok {
		message = "is invalid"
	}
	if strings.Contains(message, "%s") {
		message = strings.Replace(message, "%s", fieldErr.Param(), 1)
	}

	return fieldPath(fieldErr.Namespace()) + " " + message
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}
	return namespace
}
