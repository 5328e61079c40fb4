package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/services/card"
	"github.com/thenoetrevino/tablero/internal/services/column"
)

// errorResponse is the JSON body for every failure
type errorResponse struct {
	Detail string `json:"detail"`
}

// writeJSON serializes v with the given status. Encoding failures are logged;
// the status line has already been sent at that point.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// decodeJSON parses the request body into dst, rejecting malformed payloads.
func decodeJSON(r *http.Request, dst any) error {
	defer func() {
		_, _ = io.Copy(io.Discard, r.Body)
	}()
	return json.NewDecoder(r.Body).Decode(dst)
}

// urlParamInt parses an integer URL parameter.
func urlParamInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

// respondError maps domain errors onto HTTP statuses: missing entities to
// 404, validation and integrity problems to 422, everything else to an
// opaque 500 with the real error logged.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrBoardNotFound),
		errors.Is(err, models.ErrColumnNotFound),
		errors.Is(err, models.ErrCardNotFound):
		writeError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, board.ErrEmptyTitle),
		errors.Is(err, column.ErrEmptyTitle),
		errors.Is(err, card.ErrEmptyTitle):
		writeError(w, http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, database.ErrIntegrity):
		writeError(w, http.StatusUnprocessableEntity, "referenced entity does not exist")

	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
