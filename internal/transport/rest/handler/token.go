package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"qiyada/internal/model"
	"qiyada/internal/service"
	"qiyada/internal/transport/rest/middleware"
)

// TokenHandler handles invite token endpoints
type TokenHandler struct {
	tokenSvc *service.TokenService
}

// NewTokenHandler creates a new token handler
func NewTokenHandler(tokenSvc *service.TokenService) *TokenHandler {
	return &TokenHandler{tokenSvc: tokenSvc}
}

// MintRequest is the request body for minting invite tokens
type MintRequest struct {
	AssessmentID string `json:"assessmentId"`
	Count        int    `json:"count"`
}

// Mint handles POST /v1/tokens
func (h *TokenHandler) Mint(w http.ResponseWriter, r *http.Request) {
	adminID := middleware.GetAdminID(r.Context())
	if adminID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req MintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tokens, err := h.tokenSvc.Mint(r.Context(), adminID, req.AssessmentID, req.Count)
	if err == service.ErrAssessmentClosed {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"tokens": tokens})
}

// List handles GET /v1/assessments/{assessmentId}/tokens
func (h *TokenHandler) List(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["assessmentId"]

	tokens, err := h.tokenSvc.List(r.Context(), assessmentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"tokens": tokens})
}

// Revoke handles POST /v1/tokens/{tokenId}/revoke
func (h *TokenHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	tokenID := mux.Vars(r)["tokenId"]

	err := h.tokenSvc.Revoke(r.Context(), tokenID)
	switch err {
	case nil:
		writeJSON(w, http.StatusOK, map[string]string{"status": "revoked"})
	case service.ErrTokenNotFound:
		writeError(w, http.StatusNotFound, err.Error())
	case service.ErrTokenUnavailable:
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// Redeem handles POST /v1/tokens/redeem
func (h *TokenHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	var req model.RedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Code == "" || req.FullName == "" {
		writeError(w, http.StatusBadRequest, "code and fullName are required")
		return
	}

	resp, err := h.tokenSvc.Redeem(r.Context(), req.Code, req.FullName, req.Locale)
	switch err {
	case nil:
		writeJSON(w, http.StatusOK, resp)
	case service.ErrTokenNotFound:
		writeError(w, http.StatusNotFound, err.Error())
	case service.ErrTokenUnavailable:
		writeError(w, http.StatusConflict, err.Error())
	case service.ErrAssessmentClosed:
		writeError(w, http.StatusGone, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
