package api

import (
	"net/http"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/card"
)

// createCardRequest uses pointers so missing required fields are
// distinguishable from zero values. The optional fields default to null.
type createCardRequest struct {
	Title       *string    `json:"title"`
	Position    *int       `json:"position"`
	ColumnID    *int       `json:"column_id"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Assignee    *string    `json:"assignee"`
}

// updateCardRequest is a partial update. The nullable fields use Optional so
// an explicit null clears them while an omitted key leaves them unchanged.
// For title, position and column_id an explicit null is ignored.
type updateCardRequest struct {
	Title       *string                    `json:"title"`
	Position    *int                       `json:"position"`
	ColumnID    *int                       `json:"column_id"`
	Description models.Optional[string]    `json:"description"`
	DueDate     models.Optional[time.Time] `json:"due_date"`
	Assignee    models.Optional[string]    `json:"assignee"`
}

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	columnID, err := urlParamInt(r, "column_id")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid column id")
		return
	}

	cards, err := s.cards.ListCards(r.Context(), columnID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
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
	if req.ColumnID == nil {
		writeError(w, http.StatusUnprocessableEntity, "column_id is required")
		return
	}

	created, err := s.cards.CreateCard(r.Context(), card.CreateCardRequest{
		Title:       *req.Title,
		Position:    *req.Position,
		ColumnID:    *req.ColumnID,
		Description: req.Description,
		DueDate:     req.DueDate,
		Assignee:    req.Assignee,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "id")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid card id")
		return
	}

	var req updateCardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	updated, err := s.cards.UpdateCard(r.Context(), id, card.UpdateCardRequest{
		Title:       req.Title,
		Position:    req.Position,
		ColumnID:    req.ColumnID,
		Description: req.Description,
		DueDate:     req.DueDate,
		Assignee:    req.Assignee,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "id")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid card id")
		return
	}

	if err := s.cards.DeleteCard(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
