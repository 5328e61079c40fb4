package api

import (
	"net/http"

	"github.com/thenoetrevino/tablero/internal/services/column"
)

// createColumnRequest uses pointers so missing required fields are
// distinguishable from zero values.
type createColumnRequest struct {
	Title    *string `json:"title"`
	Position *int    `json:"position"`
	BoardID  *int    `json:"board_id"`
}

// updateColumnRequest is a partial update; absent keys stay unchanged.
// board_id is not accepted: a column cannot move between boards.
type updateColumnRequest struct {
	Title    *string `json:"title"`
	Position *int    `json:"position"`
}

func (s *Server) handleListColumns(w http.ResponseWriter, r *http.Request) {
	boardID, err := urlParamInt(r, "board_id")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid board id")
		return
	}

	columns, err := s.columns.ListColumns(r.Context(), boardID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, columns)
}

func (s *Server) handleCreateColumn(w http.ResponseWriter, r *http.Request) {
	var req createColumnRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if req.Title == nil {
		writeError(w, http.StatusUnprocessableEntity, "title is required")
		return
	}
	if req.Position == nil {
		writeError(w, http.StatusUnprocessableEntity, "position is required")
		return
	}
	if req.BoardID == nil {
		writeError(w, http.StatusUnprocessableEntity, "board_id is required")
		return
	}

	created, err := s.columns.CreateColumn(r.Context(), column.CreateColumnRequest{
		Title:    *req.Title,
		Position: *req.Position,
		BoardID:  *req.BoardID,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateColumn(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "id")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid column id")
		return
	}

	var req updateColumnRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	updated, err := s.columns.UpdateColumn(r.Context(), id, column.UpdateColumnRequest{
		Title:    req.Title,
		Position: req.Position,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteColumn(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "id")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid column id")
		return
	}

	if err := s.columns.DeleteColumn(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
