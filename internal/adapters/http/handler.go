package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/PabloGalante/longevity-agent/internal/app/chat"
	"github.com/PabloGalante/longevity-agent/internal/domain"
)

type Server struct {
	svc *chat.Service
}

func NewServer(svc *chat.Service) http.Handler {
	s := &Server{svc: svc}
	mux := http.NewServeMux()

	// /chat    → POST: process one turn
	// /healthz → GET: liveness + active session count
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/healthz", s.handleHealthz)

	return chainMiddlewares(mux, withLogging, withCORS, withRequestID)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type chatRequest struct {
	SessionID string         `json:"session_id"`
	Message   string         `json:"message"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type chatResponse struct {
	SessionID       string                  `json:"session_id"`
	Response        string                  `json:"response"`
	Recommendations *recommendationResponse `json:"recommendations"`
}

type recommendationResponse struct {
	Supplements []supplementResponse `json:"supplements"`
	Timestamp   int64                `json:"timestamp"`
}

type supplementResponse struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	ReferralLink string `json:"referral_link"`
}

type healthzResponse struct {
	Status         string `json:"status"`
	ActiveSessions int    `json:"active_sessions"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.SessionID) == "" {
		badRequest(w, "session_id is required")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		badRequest(w, "message is required")
		return
	}

	out, err := s.svc.ProcessTurn(r.Context(), chat.TurnInput{
		SessionID: domain.SessionID(req.SessionID),
		Message:   req.Message,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		SessionID:       string(out.SessionID),
		Response:        out.Response,
		Recommendations: toRecommendationResponse(out.Recommendation),
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	writeJSON(w, http.StatusOK, healthzResponse{
		Status:         "healthy",
		ActiveSessions: s.svc.ActiveSessions(),
	})
}

// ─────────────────────────────────────────────
// Response helpers
// ─────────────────────────────────────────────

func toRecommendationResponse(rec *domain.Recommendation) *recommendationResponse {
	if rec == nil {
		return nil
	}

	sups := make([]supplementResponse, 0, len(rec.Supplements))
	for _, sup := range rec.Supplements {
		sups = append(sups, supplementResponse{
			Name:         sup.Name,
			Dosage:       sup.Dosage,
			ReferralLink: sup.ReferralLink,
		})
	}

	return &recommendationResponse{
		Supplements: sups,
		Timestamp:   rec.CreatedAt.Unix(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func internalError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
