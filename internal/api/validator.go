package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/JustinArce/MicroservicioAlmacen/internal/apperrors"
	"github.com/JustinArce/MicroservicioAlmacen/internal/models"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterCustomTypeFunc(optionalValue,
		models.Optional[string]{},
		models.Optional[float64]{},
		models.Optional[int]{},
	)
}

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

// optionalValue exposes an Optional to the validator as a pointer, so
// "omitempty" skips absent and null fields but still checks present ones.
func optionalValue(field reflect.Value) any {
	switch v := field.Interface().(type) {
	case models.Optional[string]:
		return v.Ptr()
	case models.Optional[float64]:
		return v.Ptr()
	case models.Optional[int]:
		return v.Ptr()
	}
	return nil
}

// ValidateStruct checks s against its validate tags and returns an
// *apperrors.ValidationError listing every violated field.
func ValidateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			verr := &apperrors.ValidationError{}
			for _, fieldError := range validationErrors {
				verr.Add(fieldError.Field(), formatValidationError(fieldError))
			}
			return verr
		}
		return err
	}
	return nil
}

func validateUpdateRequest(req UpdateProductRequest) error {
	verr := &apperrors.ValidationError{}
	for _, field := range req.nullFields() {
		verr.Add(field, fmt.Sprintf("%s must not be null", field))
	}

	if err := ValidateStruct(req); err != nil {
		var fieldErrs *apperrors.ValidationError
		if !errors.As(err, &fieldErrs) {
			return err
		}
		verr.Violations = append(verr.Violations, fieldErrs.Violations...)
	}

	if len(verr.Violations) > 0 {
		return verr
	}
	return nil
}

func formatValidationError(err validator.FieldError) string {
	field := err.Field()

	unit := ""
	if err.Kind() == reflect.String {
		unit = " characters"
		if err.Param() == "1" {
			unit = " character"
		}
	}

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, err.Param(), unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, err.Param(), unit)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, err.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, err.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, err.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// decodeJSON reads exactly one JSON object from body into dst. Malformed
// bodies, trailing data, a literal null and values of the wrong type come
// back as validation errors.
func decodeJSON(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return err
		}
		return apperrors.NewValidationError("body", "request body must contain a single JSON object")
	}
	if string(raw) == "null" {
		return apperrors.NewValidationError("body", "request body must be a JSON object")
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return decodeError(err)
	}
	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return err
	case errors.Is(err, io.EOF):
		return apperrors.NewValidationError("body", "request body is required")
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return apperrors.NewValidationError(field, fmt.Sprintf("%s has an invalid type", field))
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperrors.NewValidationError("body", "request body is not valid JSON")
	default:
		return apperrors.NewValidationError("body", "invalid request body")
	}
}
