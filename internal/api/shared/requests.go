package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// maxBodyBytes caps request bodies; master-data payloads are tiny.
const maxBodyBytes = 1 << 20

var validate = newValidator()

// newValidator reports fields by their json name so messages match the wire format.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes)).Decode(v)
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}

// ValidationMessage turns the first failing rule of a validator error into a
// client message such as "country_code must be at least 3 characters".
// The second return is false when err is not a validation error.
func ValidationMessage(err error) (string, bool) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "", false
	}

	fe := fieldErrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field), true
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param()), true
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param()), true
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param()), true
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param()), true
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param()), true
	default:
		return fmt.Sprintf("%s is invalid", field), true
	}
}
