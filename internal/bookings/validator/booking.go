package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"resortly/pkg/logger"
	"resortly/pkg/model"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	return &BookingValidator{
		validate: validator.New(),
		logger:   log,
	}
}

func (v *BookingValidator) Validate(booking *model.Booking) error {
	if err := v.validate.Struct(booking); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translate(validationErrs)
		}
		return err
	}

	// Stay dates are custom-decoded, so cross checks live here rather
	// than in struct tags.
	if booking.StartDate.IsZero() {
		return ValidationErrors{
			ValidationError{Field: "startDate", Message: "startDate is required"},
		}
	}
	if booking.EndDate.IsZero() {
		return ValidationErrors{
			ValidationError{Field: "endDate", Message: "endDate is required"},
		}
	}
	if !booking.EndDate.After(booking.StartDate.Time) {
		return ValidationErrors{
			ValidationError{Field: "endDate", Message: "endDate must be after startDate"},
		}
	}

	return nil
}

func (v *BookingValidator) translate(errs validator.ValidationErrors) ValidationErrors {
	var out ValidationErrors
	for _, fe := range errs {
		message := fe.Error()
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", fe.Field())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", fe.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
		}
		out = append(out, ValidationError{Field: fe.Field(), Message: message})
	}
	return out
}
