package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/rajfnu/itt-ai/internal/agents"
	"github.com/rajfnu/itt-ai/internal/directory"
	"github.com/rajfnu/itt-ai/internal/dispatch"
	"github.com/rajfnu/itt-ai/internal/types"
)

func (s *Server) writeEnvelope(w http.ResponseWriter, code int, resp types.AgentResponse) {
	resp.Timestamp = time.Now().UTC().Format(time.RFC3339)
	if resp.Data == nil {
		resp.Data = map[string]any{}
	}
	s.writeJSON(w, code, resp)
}

func (s *Server) agentError(w http.ResponseWriter, code int, msg string) {
	s.writeEnvelope(w, code, types.AgentResponse{
		Success: false,
		Message: msg,
		Status:  types.StatusError,
	})
}

// agentHandler wraps one endpoint definition in the shared route behavior:
// role re-check, simulated latency, dispatch, envelope.
func (s *Server) agentHandler(ep *agents.Endpoint) http.HandlerFunc {
	agent := directory.AgentByEndpoint(ep.Path)
	if agent == nil {
		panic("server: endpoint missing from catalog: " + ep.Path)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("agent handler panic",
					zap.String("agent", ep.AgentID), zap.Any("panic", rec))
				s.agentError(w, http.StatusInternalServerError, ep.ErrorText)
			}
		}()

		// Agent visibility is enforced here, not just in the UI: a token
		// whose role is outside the agent's allowedRoles gets a 403 even if
		// it guesses the endpoint path.
		user, ok := userFromRequest(r)
		if !ok || user == nil {
			s.agentError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if !directory.RoleAllowed(user.Role, agent.AllowedRoles) {
			s.log.Warn("agent access denied",
				zap.String("agent", ep.AgentID),
				zap.String("user", user.ID),
				zap.String("role", string(user.Role)))
			s.agentError(w, http.StatusForbidden, "Access denied for your role")
			return
		}

		var req types.AgentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.agentError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if err := s.delay(r.Context(), ep.Latency); err != nil {
			return
		}

		reply, err := ep.Handle(req)
		switch {
		case errors.Is(err, dispatch.ErrUnknownTask):
			s.agentError(w, http.StatusBadRequest, "Unknown task")
			return
		case err != nil:
			s.log.Error("agent dispatch failed",
				zap.String("agent", ep.AgentID), zap.Error(err))
			s.agentError(w, http.StatusInternalServerError, ep.ErrorText)
			return
		}

		s.writeEnvelope(w, http.StatusOK, types.AgentResponse{
			Success: true,
			Message: reply.Message,
			Data:    reply.Data,
			Sources: reply.Sources,
			Status:  types.StatusComplete,
		})
	}
}
