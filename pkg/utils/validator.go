package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
	ssnPattern   = regexp.MustCompile(`^(\d{3}-\d{2}-\d{4}|\d{9})$`)
	datePattern  = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
	clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report json names so field errors match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("usphone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	v.RegisterValidation("ssn", func(fl validator.FieldLevel) bool {
		return ssnPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("mdydate", func(fl validator.FieldLevel) bool {
		return IsValidWireDate(fl.Field().String())
	})
	v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !clockPattern.MatchString(s) {
			return false
		}
		_, err := time.Parse(ClockLayout, s)
		return err == nil
	})

	return v
}

func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

func IsValidWireDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := ParseWireDate(s)
	return err == nil
}

func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[fieldPath(err)] = getErrorMessage(err)
		}
	}

	return errors
}

// ValidateVar checks a single value against tag and returns the first message.
func ValidateVar(value any, tag string) string {
	err := validate.Var(value, tag)
	if err == nil {
		return ""
	}
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		return getErrorMessage(validationErrors[0])
	}
	return err.Error()
}

// fieldPath drops the root struct name: "BookFlightRequest.passengers[0].ssn" -> "passengers[0].ssn".
func fieldPath(err validator.FieldError) string {
	ns := err.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return err.Field()
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum is %s", err.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "eqfield":
		return fmt.Sprintf("Must match %s", err.Param())
	case "usphone":
		return "Invalid phone format. Use ddd-ddd-dddd"
	case "ssn":
		return "Invalid SSN format. Use ddd-dd-dddd"
	case "mdydate":
		return "Invalid date. Use MM-DD-YYYY"
	case "hhmm":
		return "Invalid time. Use HH:MM"
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// formats validation errors map into single string
func FormatValidationErrors(errors map[string]string) string {
	msgs := make([]string, 0, len(errors))
	for field, msg := range errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}
