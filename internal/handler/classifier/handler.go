// Package classifier serves the image analysis surface backed by the
// external classifier collaborator.
package classifier

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/adarsh8081/e-waste-management/internal/supervisor"
	"github.com/adarsh8081/e-waste-management/pkg/utils"
)

// maxImageBytes caps uploads at 16MB, matching the documented API limit.
const maxImageBytes = 16 << 20

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Handler serves /analyze-image and /dataset-info.
type Handler struct {
	sup *supervisor.Supervisor
}

// New builds the classifier handler.
func New(sup *supervisor.Supervisor) *Handler {
	return &Handler{sup: sup}
}

// RegisterRoutes mounts the classifier routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/analyze-image", h.handleAnalyzeImage)
	r.Get("/dataset-info", h.handleDatasetInfo)
}

func (h *Handler) handleAnalyzeImage(w http.ResponseWriter, r *http.Request) {
	comps := h.sup.Components()
	if comps == nil || comps.Classifier == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "Image classifier is not available")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		utils.RespondError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 16MB")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		utils.RespondError(w, http.StatusBadRequest, "Invalid file type. Allowed types: png, jpg, jpeg, gif")
		return
	}

	image, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Failed to read image")
		return
	}

	result, err := comps.Classifier.Classify(r.Context(), image)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to process image")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"label":      result.Label,
		"confidence": result.Confidence,
		"guidelines": result.Guidelines,
		"success":    true,
	})
}

func (h *Handler) handleDatasetInfo(w http.ResponseWriter, r *http.Request) {
	comps := h.sup.Components()
	if comps == nil || comps.Classifier == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "Image classifier is not available")
		return
	}

	info, err := comps.Classifier.DatasetInfo(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to get dataset information")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"data":    info,
		"success": true,
	})
}
