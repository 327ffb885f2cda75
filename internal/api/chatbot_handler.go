// File path: internal/api/chatbot_handler.go
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sanara-labs/helpdesk/internal/chat"
	"github.com/sanara-labs/helpdesk/internal/common"
)

func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	names, err := s.sections.ListRoots(r.Context())
	if err != nil {
		logger.Error("api: sections fetch failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch sections")
		return
	}
	if names == nil {
		names = []string{}
	}
	if len(names) == 0 {
		logger.Warn("api: no sections found in the store")
	}
	writeJSON(w, http.StatusOK, sectionsResponse{Sections: names})
}

func (s *Server) handleSectionQuestions(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	sectionName := strings.TrimSpace(r.URL.Query().Get("section"))
	if sectionName == "" {
		writeError(w, http.StatusBadRequest, "Section name is required")
		return
	}
	nav, err := s.chat.ChildrenOrQuestions(r.Context(), sectionName)
	if errors.Is(err, chat.ErrSectionNotFound) {
		writeError(w, http.StatusNotFound, "Section not found")
		return
	}
	if err != nil {
		logger.Error("api: section questions fetch failed", "section", sectionName, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch questions")
		return
	}
	writeJSON(w, http.StatusOK, nav)
}

func (s *Server) handleChatResponse(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: chat decode failed", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request. 'message' and 'section' are required.")
		return
	}
	if strings.TrimSpace(req.Message) == "" || strings.TrimSpace(req.Section) == "" {
		writeError(w, http.StatusBadRequest, "Invalid request. 'message' and 'section' are required.")
		return
	}
	answer, err := s.chat.Answer(r.Context(), strings.TrimSpace(req.Section), req.Message, req.UserID)
	if err != nil {
		logger.Error("api: chat answer failed", "section", req.Section, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch response")
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Response: answer})
}
