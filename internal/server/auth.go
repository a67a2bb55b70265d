package server

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/rajfnu/itt-ai/internal/directory"
	"github.com/rajfnu/itt-ai/internal/types"
)

// Any password signs in a known email. Real credential checks are out of
// scope for the demo portal.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.delay(r.Context(), 500*time.Millisecond); err != nil {
		return
	}

	user := directory.FindUserByEmail(req.Email)
	if user == nil {
		s.writeJSON(w, http.StatusUnauthorized, types.LoginResponse{
			Error: "Invalid credentials. User not found.",
		})
		return
	}
	if req.Password == "" {
		s.writeJSON(w, http.StatusUnauthorized, types.LoginResponse{
			Error: "Password is required",
		})
		return
	}

	s.log.Info("login", zap.String("user", user.ID), zap.String("role", string(user.Role)))
	s.writeJSON(w, http.StatusOK, types.LoginResponse{
		Success: true,
		User:    user,
		Token:   MintToken(user.ID),
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, types.MessageResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromRequest(r)
	if !ok {
		s.writeJSON(w, http.StatusUnauthorized, types.UserResponse{Error: "Not authenticated"})
		return
	}
	if user == nil {
		s.writeJSON(w, http.StatusNotFound, types.UserResponse{Error: "User not found"})
		return
	}
	s.writeJSON(w, http.StatusOK, types.UserResponse{Success: true, Data: user})
}

func (s *Server) handleEmployees(w http.ResponseWriter, r *http.Request) {
	if err := s.delay(r.Context(), 500*time.Millisecond); err != nil {
		return
	}
	s.writeJSON(w, http.StatusOK, types.UsersResponse{Success: true, Data: directory.Employees})
}
