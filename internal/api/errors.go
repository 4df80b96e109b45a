package api

import (
	"errors"
	"net/http"

	"github.com/JustinArce/MicroservicioAlmacen/internal/apperrors"
)

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		UnprocessableEntity(w, r, validationErr)
		return
	}

	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		NotFound(w, r, err, err.Error())
		return
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		RequestTooLarge(w, r, err)
		return
	}

	InternalError(w, r, err, "internal server error")
}
