// Package agents defines the 25 department endpoints and the canned
// responses behind them. Each endpoint is either conversational (a keyword
// rule catalog over the message text) or task-oriented (a task table keyed
// by taskId). The HTTP layer owns routing, latency simulation, and the
// response envelope; this package owns what gets said.
package agents

import (
	"time"

	"github.com/rajfnu/itt-ai/internal/dispatch"
	"github.com/rajfnu/itt-ai/internal/types"
)

// Endpoint is one agent route. Exactly one of Catalog or Tasks is set.
type Endpoint struct {
	AgentID string
	Path    string

	// Latency is the simulated processing delay, before scaling.
	Latency time.Duration

	Catalog dispatch.Catalog
	Tasks   dispatch.TaskTable

	// AnyTask, when set, handles task ids missing from Tasks instead of
	// failing with ErrUnknownTask.
	AnyTask func(taskID string, input map[string]any) dispatch.Reply

	// Sources is attached to every successful response from this endpoint.
	Sources []string

	// ErrorText is the user-facing message for an internal failure.
	ErrorText string
}

// Handle resolves a request to its canned reply.
func (e *Endpoint) Handle(req types.AgentRequest) (dispatch.Reply, error) {
	if e.Catalog != nil {
		r, err := dispatch.Dispatch(req.Message, e.Catalog)
		if err != nil {
			return r, err
		}
		if r.Sources == nil {
			r.Sources = e.Sources
		}
		return r, nil
	}
	if _, ok := e.Tasks[req.TaskID]; !ok && e.AnyTask != nil {
		input := req.Input
		if input == nil {
			input = map[string]any{}
		}
		return e.AnyTask(req.TaskID, input), nil
	}
	return e.Tasks.RunTask(req.TaskID, req.Input)
}

// All returns every agent endpoint, one per entry in the portal catalog.
func All() []*Endpoint {
	var out []*Endpoint
	out = append(out, hrEndpoints()...)
	out = append(out, financeEndpoints()...)
	out = append(out, marketingEndpoints()...)
	out = append(out, salesEndpoints()...)
	out = append(out, engineeringEndpoints()...)
	return out
}

// fixedTask builds an AnyTask handler that replies with a constant payload,
// echoing the task id and spreading the caller's input over the data.
func fixedTask(message string, data map[string]any) func(string, map[string]any) dispatch.Reply {
	return func(taskID string, input map[string]any) dispatch.Reply {
		merged := make(map[string]any, len(data)+len(input)+1)
		merged["taskId"] = taskID
		for k, v := range data {
			merged[k] = v
		}
		for k, v := range input {
			merged[k] = v
		}
		return dispatch.Reply{Message: message, Data: merged}
	}
}

func numberInput(input map[string]any, key string) float64 {
	switch v := input[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}
