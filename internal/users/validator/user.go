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

type UserValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewUserValidator(log *logger.Logger) *UserValidator {
	return &UserValidator{
		validate: validator.New(),
		logger:   log,
	}
}

func (v *UserValidator) Validate(user *model.User) error {
	return v.translate(v.validate.Struct(user))
}

func (v *UserValidator) ValidateRoleUpdate(update *model.UserRoleUpdate) error {
	return v.translate(v.validate.Struct(update))
}

func (v *UserValidator) ValidateInfoUpdate(update *model.UserInfoUpdate) error {
	if err := v.translate(v.validate.Struct(update)); err != nil {
		return err
	}

	if update.Age == nil && update.SecurityDeposit == nil && update.DocumentID == nil {
		return ValidationErrors{
			ValidationError{
				Field:   "update",
				Message: "at least one of age, securityDeposit or documentId must be provided",
			},
		}
	}
	return nil
}

func (v *UserValidator) translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	var out ValidationErrors
	for _, fe := range validationErrs {
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
		case "url":
			message = fmt.Sprintf("%s must be a valid URL", fe.Field())
		}
		out = append(out, ValidationError{Field: fe.Field(), Message: message})
	}
	return out
}
