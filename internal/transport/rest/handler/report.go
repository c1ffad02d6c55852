package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"qiyada/internal/service"
	"qiyada/internal/transport/rest/middleware"
)

// ReportHandler handles report endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// GetMine handles GET /v1/my/report and returns the candidate's own report
func (h *ReportHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetCandidateID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	report, err := h.reportSvc.LatestByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if report == nil {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Get handles GET /v1/reports/{reportId} (admin)
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["reportId"]

	report, err := h.reportSvc.GetByID(r.Context(), reportID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if report == nil {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// GetBySubmission handles GET /v1/submissions/{submissionId}/report (admin)
func (h *ReportHandler) GetBySubmission(w http.ResponseWriter, r *http.Request) {
	submissionID := mux.Vars(r)["submissionId"]

	report, err := h.reportSvc.GetBySubmission(r.Context(), submissionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if report == nil {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// ListByUser handles GET /v1/users/{userId}/reports (admin)
func (h *ReportHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	reports, err := h.reportSvc.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"reports": reports})
}

// Scoreboard handles GET /v1/assessments/{assessmentId}/scoreboard (admin)
func (h *ReportHandler) Scoreboard(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["assessmentId"]

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	rows, err := h.reportSvc.Scoreboard(r.Context(), assessmentID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"scoreboard": rows})
}

// QuestionStats handles GET /v1/assessments/{assessmentId}/stats (admin)
func (h *ReportHandler) QuestionStats(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["assessmentId"]

	stats, err := h.reportSvc.QuestionStats(r.Context(), assessmentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": stats})
}
