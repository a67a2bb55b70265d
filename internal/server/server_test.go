package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rajfnu/itt-ai/internal/config"
	"github.com/rajfnu/itt-ai/internal/types"
)

func newTestServer() *Server {
	cfg := config.Config{
		Port:          "0",
		AllowedOrigin: "*",
		LatencyScale:  0,
		LogLevel:      "info",
	}
	return NewServer(cfg, zap.NewNop())
}

func doJSON(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func login(t *testing.T, s *Server, email string) types.LoginResponse {
	t.Helper()
	w := doJSON(t, s, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": "whatever",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp
}

func TestHealth(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestLogin(t *testing.T) {
	s := newTestServer()
	resp := login(t, s, "dev@intimetec.com")
	assert.True(t, strings.HasPrefix(resp.Token, "mock-jwt-token-4-"), resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, types.RoleEngineer, resp.User.Role)
}

func TestLoginUnknownEmail(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ghost@intimetec.com", "password": "x",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid credentials. User not found.", resp.Error)
}

func TestLoginMissingPassword(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "hr@intimetec.com",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Password is required", resp.Error)
}

func TestLogout(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodPost, "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp types.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Logged out successfully", resp.Message)
}

func TestMe(t *testing.T) {
	s := newTestServer()
	token := login(t, s, "marketing@intimetec.com").Token

	w := doJSON(t, s, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp types.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Lisa Martinez", resp.Data.Name)
}

func TestMeWithoutToken(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeUnknownUser(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodGet, "/api/auth/me", "mock-jwt-token-99-1700000000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp types.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User not found", resp.Error)
}

func TestEmployees(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodGet, "/api/employees", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp types.UsersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 14)
}

func TestAgentRequiresAuth(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodPost, "/api/engineering/devops", "", map[string]string{
		"message": "help",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAgentRejectsWrongRole(t *testing.T) {
	s := newTestServer()
	token := login(t, s, "sales@intimetec.com").Token

	w := doJSON(t, s, http.MethodPost, "/api/finance/budget", token, map[string]any{
		"taskId": "check-budget",
		"input":  map[string]string{"department": "engineering", "quarter": "q4"},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp types.AgentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, types.StatusError, resp.Status)
}

func TestAgentEnvelope(t *testing.T) {
	s := newTestServer()
	token := login(t, s, "dev@intimetec.com").Token

	w := doJSON(t, s, http.MethodPost, "/api/engineering/devops", token, map[string]string{
		"message": "Why is our Kubernetes pod crashing?",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp types.AgentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, types.StatusComplete, resp.Status)
	assert.NotEmpty(t, resp.Timestamp)
	assert.Contains(t, resp.Message, "diagnose your Kubernetes pod issue")
	assert.NotNil(t, resp.Data)
}

func TestAgentUnknownTask(t *testing.T) {
	s := newTestServer()
	token := login(t, s, "finance@intimetec.com").Token

	w := doJSON(t, s, http.MethodPost, "/api/finance/invoice", token, map[string]any{
		"taskId": "shred-invoice",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp types.AgentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Unknown task", resp.Message)
	assert.Equal(t, types.StatusError, resp.Status)
}

func TestAdminReachesEveryDepartment(t *testing.T) {
	s := newTestServer()
	token := login(t, s, "admin@intimetec.com").Token

	for _, path := range []string{
		"/api/hr/onboarding",
		"/api/marketing/social",
		"/api/sales/coach",
	} {
		w := doJSON(t, s, http.MethodPost, path, token, map[string]string{"message": "hello"})
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestExecutiveTreatedAsAdmin(t *testing.T) {
	s := newTestServer()
	token := login(t, s, "ceo@intimetec.com").Token

	w := doJSON(t, s, http.MethodPost, "/api/finance/report", token, map[string]any{
		"taskId": "generate-report",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestKnowledgeSourcesInEnvelope(t *testing.T) {
	s := newTestServer()
	token := login(t, s, "dev@intimetec.com").Token

	w := doJSON(t, s, http.MethodPost, "/api/engineering/knowledge", token, map[string]string{
		"message": "find the runbook",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp types.AgentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"internal-docs", "github", "confluence"}, resp.Sources)
}
