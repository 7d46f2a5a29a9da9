// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

// Package validation checks outgoing request structs with go-playground/validator v10
// before they reach the network.
//
// Features:
//   - Singleton validator instance (thread-safe, caches struct info)
//   - Field names reported by their JSON wire name (time_slot, session_id, ...)
//   - Custom tags: timeslot, sessionid
//   - Uses WithRequiredStructEnabled option
//
// Example usage:
//
//	type SimpleRecommendationRequest struct {
//	    TimeSlot  string `json:"time_slot" validate:"required,timeslot"`
//	    SessionID string `json:"session_id" validate:"required,sessionid"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    return transport.Wrap(verr, "SIMPLE_RECOMMENDATION_ERROR", msg)
//	}
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// validTimeSlots lists the meal slots the recommendation endpoints accept.
var validTimeSlots = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
}

// MaxSessionIDLength bounds an opaque session identifier.
const MaxSessionIDLength = 128

// ValidationError represents a single field validation error with structured information.
type ValidationError struct {
	field   string
	tag     string
	param   string
	value   interface{}
	message string
}

// Field returns the wire name of the field that failed validation.
func (e *ValidationError) Field() string {
	return e.field
}

// Tag returns the validation tag that failed.
func (e *ValidationError) Tag() string {
	return e.tag
}

// Param returns the parameter for the validation tag (e.g., "1" for "min=1").
func (e *ValidationError) Param() string {
	return e.param
}

// Value returns the actual value that failed validation.
func (e *ValidationError) Value() interface{} {
	return e.value
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	return e.message
}

// RequestValidationError represents a collection of validation errors.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the slice of validation errors.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

// Fields returns the wire names of every failing field.
func (ve *RequestValidationError) Fields() []string {
	fields := make([]string, len(ve.errors))
	for i, err := range ve.errors {
		fields[i] = err.field
	}
	return fields
}

// Error implements the error interface, returning a combined error message.
func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(ve.errors))
	for _, err := range ve.errors {
		messages = append(messages, err.Error())
	}

	return strings.Join(messages, "; ")
}

// GetValidator returns the singleton validator instance.
// The validator is initialized once with custom validators and options.
// This function is thread-safe.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(jsonFieldName)

		// Registration only fails on an empty tag or nil func.
		_ = validate.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
			return validTimeSlots[fl.Field().String()]
		})
		_ = validate.RegisterValidation("sessionid", func(fl validator.FieldLevel) bool {
			id := fl.Field().String()
			return id != "" && len(id) <= MaxSessionIDLength && !strings.ContainsFunc(id, unicode.IsSpace)
		})
	})

	return validate
}

// jsonFieldName reports struct fields by their json tag so messages name the
// wire field (session_id rather than SessionID).
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// ValidateStruct validates a struct using the singleton validator.
// Returns nil if validation passes, or *RequestValidationError if validation fails.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{
			errors: []ValidationError{
				{
					field:   "unknown",
					tag:     "unknown",
					message: err.Error(),
				},
			},
		}
	}

	fieldErrors := make([]ValidationError, len(validationErrs))
	for i, fieldErr := range validationErrs {
		fieldErrors[i] = ValidationError{
			field:   fieldErr.Field(),
			tag:     fieldErr.Tag(),
			param:   fieldErr.Param(),
			value:   fieldErr.Value(),
			message: translateError(fieldErr),
		}
	}

	return &RequestValidationError{errors: fieldErrors}
}

// errorMessageTemplates maps validation tags to message templates.
var errorMessageTemplates = map[string]string{
	"required":  "%s is required",
	"timeslot":  "%s must be one of: breakfast, lunch, dinner",
	"sessionid": "%s must be an opaque identifier without whitespace",
	"latitude":  "%s must be a valid latitude (-90 to 90)",
	"longitude": "%s must be a valid longitude (-180 to 180)",
}

// errorMessageWithParam maps validation tags to templates that include param.
var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

// translateError converts a validator.FieldError to a human-readable message.
func translateError(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}

	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}

	return translateMinMax(fe, field, tag, param)
}

// translateMinMax handles min/max validation with type-specific messages.
func translateMinMax(fe validator.FieldError, field, tag, param string) string {
	switch fe.Kind() {
	case reflect.String:
		switch tag {
		case "min":
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
	case reflect.Slice, reflect.Map:
		switch tag {
		case "min":
			return fmt.Sprintf("%s must contain at least %s items", field, param)
		case "max":
			return fmt.Sprintf("%s must contain at most %s items", field, param)
		}
	default:
		switch tag {
		case "min":
			return fmt.Sprintf("%s must be at least %s", field, param)
		case "max":
			return fmt.Sprintf("%s must be at most %s", field, param)
		}
	}
	return fmt.Sprintf("%s failed %s validation", field, tag)
}
