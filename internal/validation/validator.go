// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError is a single failed rule on one field.
type ValidationError struct {
	field   string
	tag     string
	param   string
	message string
}

// Field returns the JSON path of the field that failed, e.g. "messages[0].role".
func (e *ValidationError) Field() string { return e.field }

// Tag returns the validation tag that failed.
func (e *ValidationError) Tag() string { return e.tag }

// Param returns the tag parameter ("1" for "min=1").
func (e *ValidationError) Param() string { return e.param }

// Error returns a human-readable error message.
func (e *ValidationError) Error() string { return e.message }

// RequestValidationError collects every failed rule for one request.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the individual field errors.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

// Error joins all field messages.
func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve.errors))
	for i := range ve.errors {
		messages[i] = ve.errors[i].message
	}
	return strings.Join(messages, "; ")
}

// APIError mirrors models.APIError without importing it.
type APIError struct {
	Code    string
	Message string
	Details map[string]any
}

// ToAPIError converts the failure into the API's VALIDATION_ERROR shape.
func (ve *RequestValidationError) ToAPIError() *APIError {
	apiErr := &APIError{Code: "VALIDATION_ERROR", Message: ve.Error()}
	if len(ve.errors) == 0 {
		apiErr.Message = "Validation failed"
		return apiErr
	}

	fields := make([]map[string]any, len(ve.errors))
	for i, err := range ve.errors {
		fields[i] = map[string]any{
			"field": err.field,
			"tag":   err.tag,
		}
	}
	apiErr.Details = map[string]any{"fields": fields}
	return apiErr
}

// GetValidator returns the shared validator. Field names in errors come
// from json tags so messages match what the client sent.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			switch name {
			case "-":
				return ""
			case "":
				return fld.Name
			}
			return name
		})

		// notblank: a string that is not empty after trimming whitespace.
		if err := validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			field := fl.Field()
			switch field.Kind() {
			case reflect.String:
				return strings.TrimSpace(field.String()) != ""
			case reflect.Pointer:
				if field.IsNil() {
					return false
				}
				elem := field.Elem()
				return elem.Kind() != reflect.String || strings.TrimSpace(elem.String()) != ""
			default:
				return !field.IsZero()
			}
		}); err != nil {
			panic(fmt.Sprintf("register notblank validator: %v", err))
		}
	})
	return validate
}

// ValidateStruct validates s and returns nil or the collected failures.
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message)
//	}
func ValidateStruct(s any) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{
			errors: []ValidationError{{field: "request", tag: "invalid", message: err.Error()}},
		}
	}

	fieldErrors := make([]ValidationError, len(validationErrs))
	for i, fe := range validationErrs {
		field := fieldPath(fe)
		fieldErrors[i] = ValidationError{
			field:   field,
			tag:     fe.Tag(),
			param:   fe.Param(),
			message: translateError(fe, field),
		}
	}
	return &RequestValidationError{errors: fieldErrors}
}

// fieldPath drops the root struct name from the namespace:
// "ChatBody.messages[0].role" becomes "messages[0].role".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"notblank": "%s must not be blank",
}

var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

func translateError(fe validator.FieldError, field string) string {
	if template, ok := errorMessageTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(template, field)
	}
	if template, ok := errorMessageWithParam[fe.Tag()]; ok {
		return fmt.Sprintf(template, field, fe.Param())
	}
	return translateMinMax(fe, field)
}

// translateMinMax words min/max by kind: characters for strings, items for
// slices.
func translateMinMax(fe validator.FieldError, field string) string {
	unit := ""
	switch fe.Kind() {
	case reflect.String:
		unit = " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		unit = " items"
	}

	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must have at least %s%s", field, fe.Param(), unit)
	case "max":
		return fmt.Sprintf("%s must have at most %s%s", field, fe.Param(), unit)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
