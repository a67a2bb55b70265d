// Package dispatch implements the keyword-routed canned-response dispatcher
// shared by every department agent endpoint. A catalog is an ordered rule
// list: the first rule whose predicate matches the (lowercased) input wins,
// and the final rule of a well-formed catalog matches unconditionally so that
// dispatch is total over arbitrary input.
package dispatch

import (
	"errors"
	"strings"
)

var (
	// ErrNoRule indicates a malformed catalog missing its unconditional
	// default rule. It cannot occur for the catalogs defined in this repo.
	ErrNoRule = errors.New("dispatch: no rule matched")

	// ErrUnknownTask is returned by RunTask for an unrecognized task id.
	ErrUnknownTask = errors.New("dispatch: unknown task")
)

// Reply is a canned response: display text plus a structured payload.
type Reply struct {
	Message string
	Data    map[string]any
	Sources []string
}

// Rule pairs a predicate over normalized input text with a responder.
// Rules are deliberately non-exclusive; declaration order is the tie-break.
type Rule struct {
	Match   func(text string) bool
	Respond func(text string) Reply
}

// Catalog is an ordered rule list for one agent endpoint.
type Catalog []Rule

// Contains builds a predicate that is true when the input contains any of
// the given keywords. Keywords are matched as lowercase substrings.
func Contains(keywords ...string) func(string) bool {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	return func(text string) bool {
		for _, k := range lowered {
			if strings.Contains(text, k) {
				return true
			}
		}
		return false
	}
}

// Always is the default-rule predicate, guaranteeing totality.
func Always() func(string) bool {
	return func(string) bool { return true }
}

// Dispatch normalizes the free-text input and returns the first matching
// rule's reply. Empty or missing input still dispatches (it falls through to
// the default rule).
func Dispatch(text string, catalog Catalog) (Reply, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	for _, rule := range catalog {
		if rule.Match(normalized) {
			return rule.Respond(normalized), nil
		}
	}
	return Reply{}, ErrNoRule
}

// TaskFunc handles one named operation of a task-oriented endpoint.
type TaskFunc func(input map[string]any) (Reply, error)

// TaskTable maps task ids to their handlers.
type TaskTable map[string]TaskFunc

// RunTask looks up and runs the named task. A nil input is passed through as
// an empty map so task funcs never have to nil-check.
func (t TaskTable) RunTask(taskID string, input map[string]any) (Reply, error) {
	fn, ok := t[taskID]
	if !ok {
		return Reply{}, ErrUnknownTask
	}
	if input == nil {
		input = map[string]any{}
	}
	return fn(input)
}

// StringInput reads a string field from a task input map, empty when absent.
func StringInput(input map[string]any, key string) string {
	v, _ := input[key].(string)
	return v
}
