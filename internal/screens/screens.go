// Package screens holds the console's screen controllers: the list,
// modal and submit state every CRUD page shares, plus the public
// registration form. Controllers talk to the backend through narrow
// interfaces and report outcomes through the notifier; a failed
// operation never escapes as a panic or a crashed view.
package screens

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/techexpo/console/internal/backend"
)

// one validator for all form structs, reusing the binding tags the
// request types already carry and reporting json field names.
var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// invalidFields validates a form struct and returns the json names of
// the fields that failed, in declaration order. nil means valid.
func invalidFields(form any) []string {
	err := formValidator.Struct(form)
	if err == nil {
		return nil
	}

	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return []string{"form"}
	}

	fields := make([]string, 0, len(verr))
	for _, fe := range verr {
		fields = append(fields, fe.Field())
	}
	return fields
}

// serverMessage prefers the backend-supplied error text and falls back
// to the screen's generic message.
func serverMessage(err error, fallback string) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
