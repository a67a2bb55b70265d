// Package directory holds the static portal catalog: user accounts, the
// agent roster, and the navigation tree, plus the role filters that decide
// what each account gets to see.
package directory

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/rajfnu/itt-ai/internal/types"
)

//go:embed agents.yaml
var catalogYAML []byte

type catalog struct {
	Agents     []types.Agent   `yaml:"agents"`
	Navigation []types.NavItem `yaml:"navigation"`
}

var (
	// Agents and Navigation are decoded once at init and never mutated.
	Agents     []types.Agent
	Navigation []types.NavItem
)

func init() {
	var c catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		panic(fmt.Sprintf("directory: bad embedded catalog: %v", err))
	}
	Agents = c.Agents
	Navigation = c.Navigation
}

// RoleAllowed reports whether role appears in allowed. Executives ride on the
// admin entries, so they are treated as admin for visibility purposes.
func RoleAllowed(role types.Role, allowed []types.Role) bool {
	if role == types.RoleCEO || role == types.RoleCIO || role == types.RoleCOO {
		role = types.RoleAdmin
	}
	return slices.Contains(allowed, role)
}

// VisibleAgents returns the agents the given role may chat with.
func VisibleAgents(role types.Role) []types.Agent {
	var out []types.Agent
	for _, a := range Agents {
		if RoleAllowed(role, a.AllowedRoles) {
			out = append(out, a)
		}
	}
	return out
}

// VisibleNavigation returns the nav items the given role may see, in the
// fixed catalog order.
func VisibleNavigation(role types.Role) []types.NavItem {
	var out []types.NavItem
	for _, n := range Navigation {
		if RoleAllowed(role, n.Roles) {
			out = append(out, n)
		}
	}
	return out
}

// AgentByID returns nil when the id is not in the roster.
func AgentByID(id string) *types.Agent {
	for i := range Agents {
		if Agents[i].ID == id {
			a := Agents[i]
			return &a
		}
	}
	return nil
}

// AgentByEndpoint looks an agent up by its route path, e.g. "/api/hr/leave".
func AgentByEndpoint(endpoint string) *types.Agent {
	for i := range Agents {
		if Agents[i].Endpoint == endpoint {
			a := Agents[i]
			return &a
		}
	}
	return nil
}
