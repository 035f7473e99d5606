package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/garderoba/internal/model"
	"github.com/erazemk/garderoba/internal/store"
)

// CommentsHandler handles comment CRUD endpoints.
type CommentsHandler struct {
	DB   *sql.DB
	URLs URLBuilder
}

type createCommentRequest struct {
	GarmentID int64  `json:"garment_id"`
	Text      string `json:"text"`
}

type updateCommentRequest struct {
	GarmentID *int64  `json:"garment_id"`
	Text      *string `json:"text"`
	Damaged   *bool   `json:"damaged"`
}

// List handles GET /api/comments.
func (h *CommentsHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := store.ListComments(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list comments")
		return
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	jsonResponse(w, http.StatusOK, comments)
}

// Get handles GET /api/comments/{id}.
func (h *CommentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	comment, err := store.GetComment(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get comment")
		return
	}
	if comment == nil {
		jsonError(w, http.StatusNotFound, "comment not found")
		return
	}

	jsonResponse(w, http.StatusOK, comment)
}

// Create handles POST /api/comments. The author is taken from the session
// token when one is present.
func (h *CommentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.GarmentID <= 0 || req.Text == "" {
		jsonError(w, http.StatusBadRequest, "garment_id and text required")
		return
	}

	exists, err := store.GarmentExists(r.Context(), h.DB, req.GarmentID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !exists {
		jsonError(w, http.StatusNotFound, "garment not found")
		return
	}

	var authorID *int64
	if claims := GetClaims(r.Context()); claims != nil {
		authorID = &claims.UserID
	}

	comment, err := store.CreateComment(r.Context(), h.DB, req.GarmentID, authorID, req.Text)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create comment")
		return
	}

	created(w, "comment created", h.URLs.Comment(r, comment.ID))
}

// Update handles PUT /api/comments/{id} (partial update).
func (h *CommentsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	var req updateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := store.CommentPatch{GarmentID: req.GarmentID, Text: req.Text, Damaged: req.Damaged}
	if patch.Empty() {
		jsonError(w, http.StatusBadRequest, "no fields to update")
		return
	}
	if req.GarmentID != nil && *req.GarmentID <= 0 {
		jsonError(w, http.StatusBadRequest, "invalid garment id")
		return
	}

	exists, err := store.CommentExists(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !exists {
		jsonError(w, http.StatusNotFound, "comment not found")
		return
	}

	if req.GarmentID != nil {
		exists, err := store.GarmentExists(r.Context(), h.DB, *req.GarmentID)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !exists {
			jsonError(w, http.StatusNotFound, "garment not found")
			return
		}
	}

	if err := store.UpdateComment(r.Context(), h.DB, id, patch); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update comment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/comments/{id}.
func (h *CommentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	exists, err := store.CommentExists(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !exists {
		jsonError(w, http.StatusNotFound, "comment not found")
		return
	}

	affected, err := store.DeleteComment(r.Context(), h.DB, id)
	if err != nil || affected == 0 {
		jsonError(w, http.StatusInternalServerError, "failed to delete comment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
