// File path: internal/api/server.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/sanara-labs/helpdesk/internal/auth"
	"github.com/sanara-labs/helpdesk/internal/chat"
	"github.com/sanara-labs/helpdesk/internal/common"
	"github.com/sanara-labs/helpdesk/internal/kb"
)

type Server struct {
	router   chi.Router
	sections kb.SectionSource
	chat     *chat.Service
	auth     *auth.Service
}

func NewServer(sections kb.SectionSource, chatSvc *chat.Service, authSvc *auth.Service) (*Server, error) {
	logger := common.Logger()
	if sections == nil {
		return nil, fmt.Errorf("section store required")
	}
	if chatSvc == nil {
		return nil, fmt.Errorf("chat service required")
	}
	if authSvc == nil {
		return nil, fmt.Errorf("auth service required")
	}
	srv := &Server{
		router:   chi.NewRouter(),
		sections: sections,
		chat:     chatSvc,
		auth:     authSvc,
	}
	srv.routes()
	logger.Info("api: server ready")
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	logger.Info("api: configuring routes")
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Get("/chatbot/sections", s.handleSections)
	s.router.Get("/chatbot/section-questions", s.handleSectionQuestions)
	s.router.Post("/chatbot/chat-response", s.handleChatResponse)

	s.router.Post("/auth/verify-empid", s.handleVerifyEmpID)
	s.router.Post("/auth/signup", s.handleSignup)
	s.router.Post("/auth/login", s.handleLogin)

	s.router.Get("/v1/logs", s.handleLogs)
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"logs": common.LogEntries()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", message)
	} else {
		logger.Warn("request failed", "status", status, "error", message)
	}
	writeJSON(w, status, map[string]string{"error": message})
}
