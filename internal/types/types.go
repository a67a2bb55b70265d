package types

// Role is the fixed set of portal roles. Agent visibility and server-side
// access checks are both driven by membership in an agent's AllowedRoles.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleCEO            Role = "ceo"
	RoleCIO            Role = "cio"
	RoleCOO            Role = "coo"
	RoleHRStaff        Role = "hr_staff"
	RoleFinanceStaff   Role = "finance_staff"
	RoleEngineer       Role = "engineer"
	RoleMarketingStaff Role = "marketing_staff"
	RoleSalesStaff     Role = "sales_staff"
)

type User struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Email      string `json:"email" yaml:"email"`
	Role       Role   `json:"role" yaml:"role"`
	Department string `json:"department" yaml:"department"`
	Avatar     string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// Agent is a department-scoped chat persona with a fixed endpoint and a
// canned-response catalog behind it. Defined once at process start, immutable.
type Agent struct {
	ID               string   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	Description      string   `json:"description" yaml:"description"`
	Endpoint         string   `json:"endpoint" yaml:"endpoint"`
	AllowedRoles     []Role   `json:"allowedRoles" yaml:"allowedRoles"`
	Department       string   `json:"department" yaml:"department"`
	Icon             string   `json:"icon" yaml:"icon"`
	Category         string   `json:"category" yaml:"category"`
	Capabilities     []string `json:"capabilities" yaml:"capabilities"`
	SuggestedPrompts []string `json:"suggestedPrompts" yaml:"suggestedPrompts"`
	Greeting         string   `json:"greeting" yaml:"greeting"`
}

type NavItem struct {
	Title      string `json:"title" yaml:"title"`
	Href       string `json:"href" yaml:"href"`
	Icon       string `json:"icon" yaml:"icon"`
	Roles      []Role `json:"roles" yaml:"roles"`
	Department string `json:"department,omitempty" yaml:"department,omitempty"`
}

// AgentRequest is the body of every department agent POST. Free-text agents
// send Message; task agents send TaskID plus Input.
type AgentRequest struct {
	Message string         `json:"message,omitempty"`
	TaskID  string         `json:"taskId,omitempty"`
	Input   map[string]any `json:"input,omitempty"`
}

// AgentResponse is the uniform envelope returned by every agent route.
type AgentResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data"`
	Sources   []string       `json:"sources,omitempty"`
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
}

const (
	StatusComplete = "complete"
	StatusError    = "error"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	User    *User  `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
}

// UserResponse wraps a single user (auth/me).
type UserResponse struct {
	Success bool   `json:"success"`
	Data    *User  `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// UsersResponse wraps the employee directory listing.
type UsersResponse struct {
	Success bool   `json:"success"`
	Data    []User `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse is the minimal success/message shape (logout).
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
