package client_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rajfnu/itt-ai/internal/client"
	"github.com/rajfnu/itt-ai/internal/config"
	"github.com/rajfnu/itt-ai/internal/directory"
	"github.com/rajfnu/itt-ai/internal/server"
	"github.com/rajfnu/itt-ai/internal/types"
)

func startPortal(t *testing.T) *client.Client {
	t.Helper()
	srv := server.NewServer(config.Config{AllowedOrigin: "*", LatencyScale: 0}, zap.NewNop())
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return client.New(ts.URL)
}

func TestLoginAndMe(t *testing.T) {
	c := startPortal(t)
	ctx := context.Background()

	user, err := c.Login(ctx, "dev@intimetec.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, types.RoleEngineer, user.Role)
	assert.NotEmpty(t, c.Token())

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, me.ID)
}

func TestLoginFailure(t *testing.T) {
	c := startPortal(t)

	_, err := c.Login(context.Background(), "ghost@intimetec.com", "pw")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials. User not found.", apiErr.Message)
}

func TestLogoutClearsToken(t *testing.T) {
	c := startPortal(t)
	ctx := context.Background()

	_, err := c.Login(ctx, "hr@intimetec.com", "pw")
	require.NoError(t, err)
	require.NoError(t, c.Logout(ctx))
	assert.Empty(t, c.Token())
}

func TestEmployees(t *testing.T) {
	c := startPortal(t)

	employees, err := c.Employees(context.Background())
	require.NoError(t, err)
	assert.Len(t, employees, 14)
}

func TestSendMessageThroughSession(t *testing.T) {
	c := startPortal(t)
	ctx := context.Background()

	_, err := c.Login(ctx, "sales@intimetec.com", "pw")
	require.NoError(t, err)

	agent := directory.AgentByID("sales-coach")
	require.NotNil(t, agent)

	s := client.NewSession(*agent, c, client.WithTimeline(1, 1))
	defer s.Close()

	require.NoError(t, s.Submit(ctx, "the price is too high"))
	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, client.StatusComplete, msgs[2].Status)
	assert.Equal(t, "Price", msgs[2].Data["objectionType"])
}

func TestSendMessageForbiddenRole(t *testing.T) {
	c := startPortal(t)
	ctx := context.Background()

	_, err := c.Login(ctx, "sales@intimetec.com", "pw")
	require.NoError(t, err)

	_, err = c.SendMessage(ctx, "/api/hr/onboarding", "start onboarding")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.StatusCode)
}

func TestRunTask(t *testing.T) {
	c := startPortal(t)
	ctx := context.Background()

	_, err := c.Login(ctx, "finance@intimetec.com", "pw")
	require.NoError(t, err)

	resp, err := c.RunTask(ctx, "/api/finance/budget", "check-budget", map[string]any{
		"department": "engineering",
		"quarter":    "q4",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, float64(42), resp.Data["utilizationRate"])
}

func TestRunTaskUnknown(t *testing.T) {
	c := startPortal(t)
	ctx := context.Background()

	_, err := c.Login(ctx, "finance@intimetec.com", "pw")
	require.NoError(t, err)

	_, err = c.RunTask(ctx, "/api/finance/budget", "burn-budget", nil)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "Unknown task", apiErr.Message)
}

func TestCredentialsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "credentials.json")
	store := client.NewCredentialsStore(path)

	creds, err := store.Read()
	require.NoError(t, err)
	assert.Nil(t, creds)

	err = store.Write(&client.Credentials{
		User:  &types.User{ID: "4", Name: "Alex Developer", Role: types.RoleEngineer},
		Token: "mock-jwt-token-4-1700000000000",
	})
	require.NoError(t, err)

	creds, err = store.Read()
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "4", creds.User.ID)
	assert.Equal(t, "mock-jwt-token-4-1700000000000", creds.Token)

	require.NoError(t, store.Clear())
	creds, err = store.Read()
	require.NoError(t, err)
	assert.Nil(t, creds)
}
