package agents

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rajfnu/itt-ai/internal/dispatch"
)

var (
	onboardNameRe = regexp.MustCompile(`for\s+([a-zA-Z\s]+?)(?:\s+joining|\s+starting|$)`)
	emailRe       = regexp.MustCompile(`([a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
)

func hrEndpoints() []*Endpoint {
	return []*Endpoint{
		{
			AgentID:   "hr-onboarding",
			Path:      "/api/hr/onboarding",
			Latency:   1200 * time.Millisecond,
			ErrorText: "Sorry, I encountered an error. Please try again.",
			Catalog: dispatch.Catalog{
				{Match: dispatch.Contains("start", "new", "initiate"), Respond: func(text string) dispatch.Reply {
					name := "New Employee"
					if m := onboardNameRe.FindStringSubmatch(text); m != nil {
						name = strings.TrimSpace(m[1])
					}
					r := replyWith("hr.onboarding.start", "{name}", name)
					r.Data["onboardingId"] = fmt.Sprintf("ONB-%d", time.Now().UnixMilli())
					r.Data["employee"] = name
					return r
				}},
				{Match: dispatch.Contains("status", "progress"), Respond: func(text string) dispatch.Reply {
					email := "employee@intimetec.com"
					if m := emailRe.FindStringSubmatch(text); m != nil {
						email = m[1]
					}
					r := replyWith("hr.onboarding.status", "{email}", email)
					r.Data["email"] = email
					return r
				}},
				{Match: dispatch.Contains("welcome", "packet"), Respond: func(string) dispatch.Reply {
					r := reply("hr.onboarding.packet")
					r.Data["packetId"] = fmt.Sprintf("WP-%d", time.Now().UnixMilli())
					return r
				}},
				{Match: dispatch.Contains("orientation", "schedule"), Respond: cannedRule("hr.onboarding.orientation")},
				{Match: dispatch.Always(), Respond: cannedRule("hr.onboarding.default")},
			},
		},
		{
			AgentID:   "hr-leave",
			Path:      "/api/hr/leave",
			Latency:   800 * time.Millisecond,
			ErrorText: "Internal server error",
			Tasks: dispatch.TaskTable{
				"check-leave-balance": func(input map[string]any) (dispatch.Reply, error) {
					email := dispatch.StringInput(input, "employeeEmail")
					return dispatch.Reply{
						Message: fmt.Sprintf("Leave balance retrieved for %s", email),
						Data: map[string]any{
							"employee": email,
							"balances": map[string]any{
								"vacation": map[string]any{"available": 12, "used": 8, "total": 20},
								"sick":     map[string]any{"available": 5, "used": 3, "total": 8},
								"personal": map[string]any{"available": 2, "used": 1, "total": 3},
							},
							"pendingRequests": 1,
							"nextAccrual":     "2024-02-01",
						},
					}, nil
				},
				"process-leave-request": func(input map[string]any) (dispatch.Reply, error) {
					return dispatch.Reply{
						Message: "Leave request submitted successfully. Awaiting manager approval.",
						Data: map[string]any{
							"requestId":     fmt.Sprintf("LV-%d", time.Now().UnixMilli()),
							"employee":      input["employeeEmail"],
							"leaveType":     input["leaveType"],
							"startDate":     input["startDate"],
							"endDate":       input["endDate"],
							"status":        "pending_approval",
							"approver":      "Sarah Johnson",
							"daysRequested": 3,
						},
					}, nil
				},
			},
		},
		{
			AgentID:   "hr-performance",
			Path:      "/api/hr/performance",
			Latency:   1000 * time.Millisecond,
			ErrorText: "Internal server error",
			AnyTask: fixedTask("Performance review task processed successfully", map[string]any{
				"reviewPeriod": "Q4 2024",
				"template":     "Standard Performance Review",
				"sections": []string{
					"Goals Achievement",
					"Core Competencies",
					"Development Areas",
					"Manager Feedback",
				},
				"dueDate": "2024-01-15",
			}),
		},
		{
			AgentID:   "hr-recruitment",
			Path:      "/api/hr/recruitment",
			Latency:   1200 * time.Millisecond,
			ErrorText: "Internal server error",
			AnyTask: fixedTask("Recruitment task processed successfully", map[string]any{
				"jobPostings": []map[string]any{
					{"id": "JP-001", "title": "Senior Developer", "applicants": 45, "status": "active"},
					{"id": "JP-002", "title": "UX Designer", "applicants": 28, "status": "active"},
				},
				"scheduledInterviews": 8,
				"pendingReviews":      12,
			}),
		},
		{
			AgentID:   "hr-policy",
			Path:      "/api/hr/policy",
			Latency:   800 * time.Millisecond,
			ErrorText: "Internal server error",
			AnyTask: fixedTask("Policy task processed successfully", map[string]any{
				"policies": []map[string]any{
					{"id": "POL-001", "name": "Remote Work Policy", "lastUpdated": "2024-01-01"},
					{"id": "POL-002", "name": "Travel Expense Policy", "lastUpdated": "2023-12-15"},
					{"id": "POL-003", "name": "Code of Conduct", "lastUpdated": "2023-11-01"},
				},
				"complianceRate": 95,
			}),
		},
	}
}
