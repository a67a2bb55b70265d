package agents

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rajfnu/itt-ai/internal/dispatch"
)

//go:embed replies.yaml
var repliesYAML []byte

type cannedReply struct {
	Message string         `yaml:"message"`
	Data    map[string]any `yaml:"data"`
}

var canned map[string]cannedReply

func init() {
	if err := yaml.Unmarshal(repliesYAML, &canned); err != nil {
		panic(fmt.Sprintf("agents: bad embedded replies: %v", err))
	}
}

// reply returns the canned reply for key with a fresh copy of its data map,
// so callers can add request-derived fields without touching the catalog.
func reply(key string) dispatch.Reply {
	c, ok := canned[key]
	if !ok {
		panic("agents: missing canned reply " + key)
	}
	data := make(map[string]any, len(c.Data)+4)
	for k, v := range c.Data {
		data[k] = v
	}
	return dispatch.Reply{Message: c.Message, Data: data}
}

// replyWith is reply plus placeholder substitution in the message text.
// Pairs are old/new as accepted by strings.NewReplacer.
func replyWith(key string, pairs ...string) dispatch.Reply {
	r := reply(key)
	r.Message = strings.NewReplacer(pairs...).Replace(r.Message)
	return r
}

// cannedRule turns a canned reply into a rule responder that ignores the
// matched text.
func cannedRule(key string) func(string) dispatch.Reply {
	return func(string) dispatch.Reply { return reply(key) }
}
