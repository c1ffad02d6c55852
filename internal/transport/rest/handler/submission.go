package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"qiyada/internal/model"
	"qiyada/internal/scoring"
	"qiyada/internal/service"
	"qiyada/internal/transport/rest/middleware"
)

// SubmissionHandler handles assessment submission endpoints
type SubmissionHandler struct {
	submissionSvc *service.SubmissionService
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionSvc *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionSvc: submissionSvc}
}

// SubmitRequest is the request body for finalizing a submission
type SubmitRequest struct {
	Locale    string                 `json:"locale"`
	Responses []model.ResponseRecord `json:"responses"`
}

// Submit handles POST /v1/submissions
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetCandidateID(ctx)
	assessmentID := middleware.GetAssessmentID(ctx)
	tokenID := middleware.GetTokenID(ctx)
	if userID == "" || assessmentID == "" || tokenID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.submissionSvc.Submit(ctx, userID, assessmentID, tokenID, req.Locale, req.Responses)
	if err != nil {
		var malformed *scoring.MalformedResponseError
		switch {
		case errors.Is(err, scoring.ErrEmptyResponseSet):
			writeError(w, http.StatusBadRequest, "assessment incomplete: no responses submitted")
		case errors.As(err, &malformed):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrTokenUnavailable):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrTokenNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAssessmentClosed):
			writeError(w, http.StatusGone, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, report)
}
