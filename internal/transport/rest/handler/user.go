package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"qiyada/internal/model"
	"qiyada/internal/service"
)

// UserHandler handles admin user-management endpoints
type UserHandler struct {
	userSvc *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userSvc *service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// CreateAdminRequest is the request body for creating an admin account
type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// CreateAdmin handles POST /v1/users/admins
func (h *UserHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.userSvc.CreateAdmin(r.Context(), req.Username, req.Password, req.FullName)
	if err == service.ErrUsernameTaken {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// List handles GET /v1/users?role=candidate
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	role := model.Role(r.URL.Query().Get("role"))

	users, err := h.userSvc.List(r.Context(), role)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

// Get handles GET /v1/users/{userId}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	user, err := h.userSvc.GetByID(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /v1/users/{userId}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := h.userSvc.Delete(r.Context(), userID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
