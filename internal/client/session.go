package client

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rajfnu/itt-ai/internal/types"
)

var (
	// ErrBusy is returned while a previous submit is still in flight.
	ErrBusy = errors.New("session: request in flight")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("session: closed")
	// ErrEmptyMessage is returned for blank input.
	ErrEmptyMessage = errors.New("session: empty message")
)

// Assistant message statuses. Thinking, searching and processing are
// cosmetic progress states; complete and error are terminal.
const (
	StatusThinking   = "thinking"
	StatusSearching  = "searching"
	StatusProcessing = "processing"
	StatusComplete   = "complete"
	StatusError      = "error"
)

const errorContent = "Sorry, I encountered an error. Please try again."

// ChatMessage is one entry in a session transcript.
type ChatMessage struct {
	ID        string         `json:"id"`
	Role      string         `json:"role"`
	Content   string         `json:"content"`
	Timestamp string         `json:"timestamp"`
	Status    string         `json:"status"`
	Data      map[string]any `json:"data,omitempty"`
	Sources   []string       `json:"sources,omitempty"`
}

// Messenger is the API surface a session needs; *Client satisfies it.
type Messenger interface {
	SendMessage(ctx context.Context, endpoint, message string) (*types.AgentResponse, error)
}

// Session is an append-only chat transcript bound to one agent. One submit
// may be in flight at a time; while it runs, the assistant placeholder walks
// a cosmetic thinking/searching/processing timeline that the real response
// overrides the moment it lands.
type Session struct {
	agent types.Agent
	api   Messenger

	ctx    context.Context
	cancel context.CancelFunc

	// Cosmetic timeline offsets; fixed in production, shrunk by tests.
	searchAfter  time.Duration
	processAfter time.Duration

	onStatus func(status string)

	mu     sync.Mutex
	msgs   []ChatMessage
	busy   bool
	closed bool
}

// SessionOption customizes a session.
type SessionOption func(*Session)

// WithStatusObserver registers a callback invoked on every assistant status
// change. Called without the session lock held.
func WithStatusObserver(fn func(status string)) SessionOption {
	return func(s *Session) { s.onStatus = fn }
}

// WithTimeline overrides the cosmetic status offsets.
func WithTimeline(searchAfter, processAfter time.Duration) SessionOption {
	return func(s *Session) {
		s.searchAfter = searchAfter
		s.processAfter = processAfter
	}
}

func NewSession(agent types.Agent, api Messenger, opts ...SessionOption) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		agent:        agent,
		api:          api,
		ctx:          ctx,
		cancel:       cancel,
		searchAfter:  500 * time.Millisecond,
		processAfter: 700 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	// The agent greets first, exactly as the portal chat does on mount.
	s.msgs = append(s.msgs, ChatMessage{
		ID:        "greeting",
		Role:      "assistant",
		Content:   agent.Greeting,
		Timestamp: now(),
		Status:    StatusComplete,
	})
	return s
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }

// Messages returns a copy of the transcript.
func (s *Session) Messages() []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ChatMessage, len(s.msgs))
	copy(out, s.msgs)
	return out
}

// Close cancels the session. In-flight work is abandoned and its late
// results are dropped rather than appended to a dead transcript.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()
}

// Submit sends one user message and blocks until the assistant reply is
// recorded. The transcript grows by exactly two messages per call.
func (s *Session) Submit(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.busy = true

	s.msgs = append(s.msgs, ChatMessage{
		ID:        uuid.NewString(),
		Role:      "user",
		Content:   text,
		Timestamp: now(),
		Status:    StatusComplete,
	})
	placeholderID := uuid.NewString()
	s.msgs = append(s.msgs, ChatMessage{
		ID:        placeholderID,
		Role:      "assistant",
		Timestamp: now(),
		Status:    StatusThinking,
	})
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	s.notify(StatusThinking)

	// Tie the request to both the caller's context and the session
	// lifetime, so Close interrupts a pending call.
	callCtx, cancelCall := context.WithCancel(ctx)
	defer cancelCall()
	stop := context.AfterFunc(s.ctx, cancelCall)
	defer stop()

	go s.runTimeline(callCtx, placeholderID)

	resp, err := s.api.SendMessage(callCtx, s.agent.Endpoint, text)
	cancelCall()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	var status string
	if err != nil {
		status = StatusError
		s.updateLocked(placeholderID, func(m *ChatMessage) {
			m.Content = errorContent
			m.Status = StatusError
		})
	} else {
		status = StatusComplete
		s.updateLocked(placeholderID, func(m *ChatMessage) {
			m.Content = resp.Message
			m.Status = StatusComplete
			m.Data = resp.Data
			m.Sources = resp.Sources
		})
	}
	s.mu.Unlock()

	s.notify(status)
	return err
}

// runTimeline advances the placeholder through the cosmetic statuses until
// the real response (or cancellation) stops it.
func (s *Session) runTimeline(ctx context.Context, id string) {
	if !s.sleepUnless(ctx, s.searchAfter) {
		return
	}
	s.setCosmetic(id, StatusSearching)
	if !s.sleepUnless(ctx, s.processAfter) {
		return
	}
	s.setCosmetic(id, StatusProcessing)
}

func (s *Session) sleepUnless(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// setCosmetic applies a progress status but never downgrades a terminal one.
func (s *Session) setCosmetic(id, status string) {
	s.mu.Lock()
	changed := false
	s.updateLocked(id, func(m *ChatMessage) {
		if m.Status == StatusComplete || m.Status == StatusError {
			return
		}
		m.Status = status
		changed = true
	})
	s.mu.Unlock()
	if changed {
		s.notify(status)
	}
}

func (s *Session) updateLocked(id string, fn func(*ChatMessage)) {
	for i := range s.msgs {
		if s.msgs[i].ID == id {
			fn(&s.msgs[i])
			return
		}
	}
}

func (s *Session) notify(status string) {
	if s.onStatus != nil {
		s.onStatus(status)
	}
}
