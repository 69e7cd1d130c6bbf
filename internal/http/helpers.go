package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/virtlabs/labnet/internal/domain"
)

func encode[T any](w http.ResponseWriter, _ *http.Request, status int, v T) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

func parsePathInt64(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(r.PathValue(key), 10, 64)
}

// respondError maps domain errors onto HTTP statuses. Retryable subnet
// races never reach this point; everything arriving here is a final
// answer for the client.
func (a *API) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, message = http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrInvalidInput):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNameTaken),
		errors.Is(err, domain.ErrDuplicateRange),
		errors.Is(err, domain.ErrConflict):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrNoFreeSubnet),
		errors.Is(err, domain.ErrPoolExhausted):
		status, message = http.StatusConflict, err.Error()
	}

	if status == http.StatusInternalServerError {
		a.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err.Error())
	}
	if encodeErr := encode(w, r, status, ErrorResponse{Error: message}); encodeErr != nil {
		a.Logger.ErrorContext(r.Context(), "responding to client", "err", encodeErr.Error())
	}
}

func (a *API) respondBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	if err := encode(w, r, http.StatusBadRequest, ErrorResponse{Error: message}); err != nil {
		a.Logger.ErrorContext(r.Context(), "responding to client", "err", err.Error())
	}
}

func (a *API) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := encode(w, r, status, v); err != nil {
		a.Logger.ErrorContext(r.Context(), "responding to client", "err", err.Error())
	}
}
