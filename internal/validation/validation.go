// Package validation holds the declarative payload schemas for every mutation
// action. Validation never returns an error value to propagate: callers get
// either nil (valid) or a per-field map of human-readable messages.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a payload field name to the list of messages explaining
// why it was rejected.
type FieldErrors map[string][]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the json field name the client actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Check validates a payload struct against its schema tags.
// It returns nil when the payload is valid.
func Check(payload interface{}) FieldErrors {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Struct itself was not validatable; report it without a field key
		// rather than panicking inside an action.
		return FieldErrors{"payload": {"Payload could not be validated."}}
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := fieldKey(fe)
		out[field] = append(out[field], messageFor(fe))
	}
	return out
}

// fieldKey strips the struct-type prefix and any slice index so that
// "CreateNewsInput.images[2]" reports as "images".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if i := strings.Index(ns, "["); i >= 0 {
		ns = ns[:i]
	}
	return ns
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Must be a valid email address."
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters long.", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s.", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters long.", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s.", fe.Param())
	case "numeric":
		return "Must contain only digits."
	case "url":
		return "Must be a valid URL."
	case "len":
		return fmt.Sprintf("Must be exactly %s characters long.", fe.Param())
	default:
		return "Is invalid."
	}
}
