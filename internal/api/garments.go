package api

import (
	"database/sql"
	"errors"
	"io"
	"net/http"

	"github.com/erazemk/garderoba/internal/content"
	"github.com/erazemk/garderoba/internal/model"
	"github.com/erazemk/garderoba/internal/store"
)

// MaxUploadSize is the upload cap enforced before content classification.
const MaxUploadSize = 10 << 20 // 10 MiB

// GarmentsHandler handles garment CRUD and label association endpoints.
type GarmentsHandler struct {
	DB   *sql.DB
	URLs URLBuilder
}

type updateGarmentRequest struct {
	Name    *string `json:"name"`
	Damaged *bool   `json:"damaged"`
}

// List handles GET /api/garments. Content blobs are never included.
func (h *GarmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	garments, err := store.ListGarments(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list garments")
		return
	}
	if garments == nil {
		garments = []model.Garment{}
	}
	jsonResponse(w, http.StatusOK, garments)
}

// Create handles POST /api/garments (multipart upload).
func (h *GarmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)

	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	name := r.FormValue("name")
	typ := r.FormValue("type")
	if name == "" || typ == "" {
		jsonError(w, http.StatusBadRequest, "name and type required")
		return
	}
	if !model.ValidGarmentType(typ) {
		jsonError(w, http.StatusBadRequest, "type must be one of image, audio, video, pdf")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "file required")
		return
	}
	defer file.Close()

	exists, err := store.GarmentNameExists(r.Context(), h.DB, name)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if exists {
		jsonError(w, http.StatusConflict, "a garment with that name already exists")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to read file")
		return
	}

	// Sniff the actual content type; the declared one is not trusted.
	sniffed, err := content.Classify(data)
	if err != nil {
		if errors.Is(err, content.ErrUnknownType) {
			jsonError(w, http.StatusUnsupportedMediaType, "unsupported file content")
			return
		}
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if sniffed != typ {
		jsonError(w, http.StatusBadRequest, "file content is "+sniffed+", not "+typ)
		return
	}

	garment, err := store.CreateGarment(r.Context(), h.DB, name, typ, data)
	if err != nil {
		if store.IsUniqueViolation(err) {
			jsonError(w, http.StatusConflict, "a garment with that name already exists")
			return
		}
		jsonError(w, http.StatusInternalServerError, "failed to create garment")
		return
	}

	created(w, "garment created", h.URLs.Garment(r, garment.ID))
}

// GetContent handles GET /api/garments/{id}, returning the raw binary
// content with a Content-Type derived from the garment's type.
func (h *GarmentsHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid garment id")
		return
	}

	data, typ, err := store.GetGarmentContent(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get garment")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "garment not found")
		return
	}

	w.Header().Set("Content-Type", content.MIMEForType(typ))
	w.Write(data)
}

// GetThumbnail handles GET /api/garments/{id}/thumbnail for image garments.
func (h *GarmentsHandler) GetThumbnail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid garment id")
		return
	}

	data, typ, err := store.GetGarmentContent(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get garment")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "garment not found")
		return
	}
	if typ != model.TypeImage {
		jsonError(w, http.StatusBadRequest, "garment is not an image")
		return
	}

	thumb, err := content.Thumbnail(data, content.MaxThumbnailDim)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate thumbnail")
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(thumb)
}

// Update handles PUT /api/garments/{id} (partial update).
func (h *GarmentsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid garment id")
		return
	}

	var req updateGarmentRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := store.GarmentPatch{Name: req.Name, Damaged: req.Damaged}
	if patch.Empty() {
		jsonError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	exists, err := store.GarmentExists(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !exists {
		jsonError(w, http.StatusNotFound, "garment not found")
		return
	}

	if err := store.UpdateGarment(r.Context(), h.DB, id, patch); err != nil {
		if store.IsUniqueViolation(err) {
			jsonError(w, http.StatusConflict, "a garment with that name already exists")
			return
		}
		jsonError(w, http.StatusInternalServerError, "failed to update garment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/garments/{id}. Comments and label associations
// are removed by the FK cascade.
func (h *GarmentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid garment id")
		return
	}

	exists, err := store.GarmentExists(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !exists {
		jsonError(w, http.StatusNotFound, "garment not found")
		return
	}

	affected, err := store.DeleteGarment(r.Context(), h.DB, id)
	if err != nil || affected == 0 {
		jsonError(w, http.StatusInternalServerError, "failed to delete garment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListComments handles GET /api/garments/{id}/comments.
func (h *GarmentsHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid garment id")
		return
	}

	exists, err := store.GarmentExists(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !exists {
		jsonError(w, http.StatusNotFound, "garment not found")
		return
	}

	comments, err := store.ListCommentsByGarment(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list comments")
		return
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	jsonResponse(w, http.StatusOK, comments)
}

// ListLabels handles GET /api/garments/{id}/labels.
func (h *GarmentsHandler) ListLabels(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid garment id")
		return
	}

	exists, err := store.GarmentExists(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !exists {
		jsonError(w, http.StatusNotFound, "garment not found")
		return
	}

	labels, err := store.ListLabelsByGarment(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list labels")
		return
	}
	if labels == nil {
		labels = []model.Label{}
	}
	jsonResponse(w, http.StatusOK, labels)
}

// AddLabel handles POST /api/garments/{id}/labels/{label_id}.
func (h *GarmentsHandler) AddLabel(w http.ResponseWriter, r *http.Request) {
	garmentID, err := parseID(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid garment id")
		return
	}
	labelID, err := parseID(r.PathValue("label_id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid label id")
		return
	}

	// The garment is checked before the label.
	exists, err := store.GarmentExists(r.Context(), h.DB, garmentID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !exists {
		jsonError(w, http.StatusNotFound, "garment not found")
		return
	}

	exists, err = store.LabelExists(r.Context(), h.DB, labelID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !exists {
		jsonError(w, http.StatusNotFound, "label not found")
		return
	}

	if err := store.AddGarmentLabel(r.Context(), h.DB, garmentID, labelID); err != nil {
		if store.IsUniqueViolation(err) {
			jsonError(w, http.StatusConflict, "label already attached to garment")
			return
		}
		jsonError(w, http.StatusInternalServerError, "failed to attach label")
		return
	}

	created(w, "label attached", h.URLs.Association(r, garmentID, labelID))
}

// RemoveLabel handles DELETE /api/garments/{id}/labels/{label_id}.
func (h *GarmentsHandler) RemoveLabel(w http.ResponseWriter, r *http.Request) {
	garmentID, err := parseID(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid garment id")
		return
	}
	labelID, err := parseID(r.PathValue("label_id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid label id")
		return
	}

	exists, err := store.AssociationExists(r.Context(), h.DB, garmentID, labelID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !exists {
		jsonError(w, http.StatusNotFound, "association not found")
		return
	}

	affected, err := store.RemoveGarmentLabel(r.Context(), h.DB, garmentID, labelID)
	if err != nil || affected == 0 {
		jsonError(w, http.StatusInternalServerError, "failed to detach label")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
