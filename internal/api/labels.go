package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/garderoba/internal/model"
	"github.com/erazemk/garderoba/internal/store"
)

// LabelsHandler handles label CRUD endpoints.
type LabelsHandler struct {
	DB   *sql.DB
	URLs URLBuilder
}

type createLabelRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// List handles GET /api/labels.
func (h *LabelsHandler) List(w http.ResponseWriter, r *http.Request) {
	labels, err := store.ListLabels(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list labels")
		return
	}
	if labels == nil {
		labels = []model.Label{}
	}
	jsonResponse(w, http.StatusOK, labels)
}

// Get handles GET /api/labels/{id}.
func (h *LabelsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid label id")
		return
	}

	label, err := store.GetLabel(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get label")
		return
	}
	if label == nil {
		jsonError(w, http.StatusNotFound, "label not found")
		return
	}

	jsonResponse(w, http.StatusOK, label)
}

// Create handles POST /api/labels.
func (h *LabelsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLabelRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.Category == "" {
		jsonError(w, http.StatusBadRequest, "name and category required")
		return
	}
	if !model.ValidLabelCategory(req.Category) {
		jsonError(w, http.StatusBadRequest, "category must be one of region, garment_type, gender, size, other")
		return
	}

	exists, err := store.LabelNameExists(r.Context(), h.DB, req.Name)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if exists {
		jsonError(w, http.StatusConflict, "a label with that name already exists")
		return
	}

	label, err := store.CreateLabel(r.Context(), h.DB, req.Name, req.Category)
	if err != nil {
		if store.IsUniqueViolation(err) {
			jsonError(w, http.StatusConflict, "a label with that name already exists")
			return
		}
		jsonError(w, http.StatusInternalServerError, "failed to create label")
		return
	}

	created(w, "label created", h.URLs.Label(r, label.ID))
}

// ListGarments handles GET /api/labels/{id}/garments.
func (h *LabelsHandler) ListGarments(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid label id")
		return
	}

	exists, err := store.LabelExists(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !exists {
		jsonError(w, http.StatusNotFound, "label not found")
		return
	}

	garments, err := store.ListGarmentsByLabel(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list garments")
		return
	}
	if garments == nil {
		garments = []model.Garment{}
	}
	jsonResponse(w, http.StatusOK, garments)
}

// Delete handles DELETE /api/labels/{id}. Garment associations are removed
// by the FK cascade.
func (h *LabelsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid label id")
		return
	}

	exists, err := store.LabelExists(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !exists {
		jsonError(w, http.StatusNotFound, "label not found")
		return
	}

	affected, err := store.DeleteLabel(r.Context(), h.DB, id)
	if err != nil || affected == 0 {
		jsonError(w, http.StatusInternalServerError, "failed to delete label")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
