package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"salon-booking/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	validate  = newValidator()
	hhmmRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields under their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return IsISODate(fl.Field().String())
	})

	return v
}

// IsISODate accepts a calendar date (2006-01-02) or a full RFC 3339 timestamp.
func IsISODate(s string) bool {
	if _, err := time.Parse(time.DateOnly, s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// ValidateStruct returns the failed fields sorted by name, or nil.
func ValidateStruct(data any) []apperror.FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var fields []apperror.FieldError
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range validationErrors {
			fields = append(fields, apperror.FieldError{
				Field:   fe.Field(),
				Message: getErrorMessage(fe),
			})
		}
	}

	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
	return fields
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Valid email is required"
	case "min":
		return fmt.Sprintf("Minimum is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum is %s", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "uuid":
		return "Must be a valid ID"
	case "hhmm":
		return "Valid time is required (HH:MM)"
	case "isodate":
		return "Valid date is required"
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}
