package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rajfnu/itt-ai/internal/directory"
	"github.com/rajfnu/itt-ai/internal/types"
)

const tokenPrefix = "Bearer mock-jwt-token-"

// MintToken issues a mock session token for the given user.
func MintToken(userID string) string {
	return fmt.Sprintf("mock-jwt-token-%s-%d", userID, time.Now().UnixMilli())
}

// userFromRequest resolves the Authorization header to a known user. The
// mock token embeds the user id as the fourth dash-separated part of the
// header ("Bearer mock", "jwt", "token", "<id>", "<ts>").
func userFromRequest(r *http.Request) (*types.User, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, tokenPrefix) {
		return nil, false
	}
	parts := strings.Split(auth, "-")
	if len(parts) < 4 {
		return nil, false
	}
	return directory.FindUserByID(parts[3]), true
}
