// File path: internal/api/auth_handler.go
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sanara-labs/helpdesk/internal/auth"
	"github.com/sanara-labs/helpdesk/internal/common"
)

func (s *Server) handleVerifyEmpID(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req credentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.UserID) == "" {
		writeError(w, http.StatusBadRequest, "Missing EMP ID")
		return
	}
	valid, err := s.auth.VerifyIdentity(r.Context(), req.UserID)
	if err != nil {
		logger.Error("api: emp id verification failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, verifyResponse{Valid: valid})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req credentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.UserID) == "" {
		writeError(w, http.StatusBadRequest, "Missing user_id")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing password")
		return
	}
	outcome, err := s.auth.Register(r.Context(), req.UserID, req.Password)
	if err != nil {
		logger.Error("api: signup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	switch outcome {
	case auth.RegisterInvalidIdentity:
		writeError(w, http.StatusForbidden, "Invalid EMP ID. Access restricted to employees only.")
	case auth.RegisterAlreadyExists:
		writeError(w, http.StatusConflict, "User ID already exists")
	default:
		writeJSON(w, http.StatusCreated, messageResponse{Message: "Signup successful!"})
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req credentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.UserID) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing user_id or password")
		return
	}
	outcome, err := s.auth.Authenticate(r.Context(), req.UserID, req.Password)
	if err != nil {
		logger.Error("api: login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	switch outcome {
	case auth.AuthNotFound:
		writeError(w, http.StatusNotFound, "User not found")
	case auth.AuthWrongSecret:
		writeError(w, http.StatusUnauthorized, "Invalid password")
	default:
		writeJSON(w, http.StatusOK, messageResponse{Message: "Login successful!"})
	}
}
