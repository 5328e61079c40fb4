package api

import "net/http"

// createBoardRequest uses a pointer so a missing title is distinguishable
// from an empty one; both are rejected.
type createBoardRequest struct {
	Title *string `json:"title"`
}

func (s *Server) handleListBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := s.boards.ListBoards(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, boards)
}

func (s *Server) handleCreateBoard(w http.ResponseWriter, r *http.Request) {
	var req createBoardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if req.Title == nil {
		writeError(w, http.StatusUnprocessableEntity, "title is required")
		return
	}

	created, err := s.boards.CreateBoard(r.Context(), *req.Title)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "id")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid board id")
		return
	}

	b, err := s.boards.GetBoard(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "id")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid board id")
		return
	}

	if err := s.boards.DeleteBoard(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
