package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"qiyada/internal/model"
	"qiyada/internal/service"
	"qiyada/internal/transport/rest/middleware"
)

// AssessmentHandler handles question bank endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// UpsertAssessmentRequest is the request body for creating or updating an
// assessment
type UpsertAssessmentRequest struct {
	Type        string              `json:"type"`
	Title       model.LocalizedText `json:"title"`
	Description model.LocalizedText `json:"description"`
	Questions   []model.Question    `json:"questions"`
	Active      bool                `json:"active"`
}

// Create handles POST /v1/assessments
func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req UpsertAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assessment := &model.Assessment{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Questions:   req.Questions,
		Active:      req.Active,
	}

	id, err := h.assessmentSvc.Create(r.Context(), assessment)
	if err == service.ErrInvalidAssessment {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"assessmentId": id})
}

// List handles GET /v1/assessments
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	assessments, err := h.assessmentSvc.List(r.Context(), activeOnly)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"assessments": assessments})
}

// Get handles GET /v1/assessments/{assessmentId} (admin: full definition)
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["assessmentId"]

	assessment, err := h.assessmentSvc.GetByID(r.Context(), assessmentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if assessment == nil {
		writeError(w, http.StatusNotFound, "assessment not found")
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// Update handles PUT /v1/assessments/{assessmentId}
func (h *AssessmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["assessmentId"]

	var req UpsertAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assessment := &model.Assessment{
		ID:          assessmentID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Questions:   req.Questions,
		Active:      req.Active,
	}

	if err := h.assessmentSvc.Update(r.Context(), assessment); err != nil {
		if err == service.ErrInvalidAssessment {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// Delete handles DELETE /v1/assessments/{assessmentId}
func (h *AssessmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["assessmentId"]

	if err := h.assessmentSvc.Delete(r.Context(), assessmentID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// GetForCandidate handles GET /v1/my/assessment. It returns the localized
// question set for the assessment the candidate's token admits them to.
func (h *AssessmentHandler) GetForCandidate(w http.ResponseWriter, r *http.Request) {
	assessmentID := middleware.GetAssessmentID(r.Context())
	if assessmentID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	locale := r.URL.Query().Get("locale")

	assessment, err := h.assessmentSvc.GetByID(r.Context(), assessmentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if assessment == nil || !assessment.Active {
		writeError(w, http.StatusNotFound, "assessment not found")
		return
	}

	writeJSON(w, http.StatusOK, h.assessmentSvc.Localize(assessment, locale))
}
