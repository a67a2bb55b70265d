package agents

import (
	"fmt"
	"time"

	"github.com/rajfnu/itt-ai/internal/dispatch"
)

func salesEndpoints() []*Endpoint {
	return []*Endpoint{
		{
			AgentID:   "sales-capabilities",
			Path:      "/api/sales/capabilities",
			Latency:   1200 * time.Millisecond,
			ErrorText: "Sorry, I encountered an error processing your request.",
			Catalog: dispatch.Catalog{
				{Match: dispatch.Contains("ai", "ml", "machine learning"), Respond: cannedRule("sales.capabilities.aiml")},
				{Match: dispatch.Contains("cloud"), Respond: cannedRule("sales.capabilities.cloud")},
				{Match: dispatch.Contains("case stud"), Respond: cannedRule("sales.capabilities.casestudies")},
				{Match: dispatch.Always(), Respond: cannedRule("sales.capabilities.default")},
			},
		},
		{
			AgentID:   "sales-deck",
			Path:      "/api/sales/deck",
			Latency:   1500 * time.Millisecond,
			ErrorText: "Sorry, I encountered an error creating your deck.",
			Catalog: dispatch.Catalog{
				{Match: dispatch.Contains("fintech", "digital transformation"), Respond: func(string) dispatch.Reply {
					r := reply("sales.deck.fintech")
					r.Data["deckId"] = fmt.Sprintf("DECK-FIN-%d", time.Now().UnixMilli())
					return r
				}},
				{Match: dispatch.Contains("one-pager", "devops"), Respond: func(string) dispatch.Reply {
					r := reply("sales.deck.onepager")
					r.Data["documentId"] = fmt.Sprintf("OP-DEVOPS-%d", time.Now().UnixMilli())
					return r
				}},
				{Match: dispatch.Always(), Respond: cannedRule("sales.deck.default")},
			},
		},
		{
			AgentID:   "sales-rfp",
			Path:      "/api/sales/rfp",
			Latency:   1300 * time.Millisecond,
			ErrorText: "Sorry, I encountered an error processing your RFP request.",
			Catalog: dispatch.Catalog{
				{Match: dispatch.Contains("analyze", "requirement"), Respond: cannedRule("sales.rfp.analyze")},
				{Match: dispatch.Contains("technical approach", "draft"), Respond: cannedRule("sales.rfp.draft")},
				{Match: dispatch.Contains("past", "cloud migration"), Respond: cannedRule("sales.rfp.past")},
				{Match: dispatch.Always(), Respond: cannedRule("sales.rfp.default")},
			},
		},
		{
			AgentID:   "sales-rfp-search",
			Path:      "/api/sales/rfp-search",
			Latency:   1400 * time.Millisecond,
			ErrorText: "Sorry, I encountered an error searching for RFPs.",
			Catalog: dispatch.Catalog{
				{Match: dispatch.Contains("it modernization", "this week"), Respond: cannedRule("sales.rfpsearch.modernization")},
				{Match: dispatch.Contains("federal", "healthcare"), Respond: cannedRule("sales.rfpsearch.federal")},
				{Match: dispatch.Contains("alert", "set up"), Respond: cannedRule("sales.rfpsearch.alerts")},
				{Match: dispatch.Always(), Respond: cannedRule("sales.rfpsearch.default")},
			},
		},
		{
			AgentID:   "sales-coach",
			Path:      "/api/sales/coach",
			Latency:   1100 * time.Millisecond,
			ErrorText: "Sorry, I encountered an error. Let's try again.",
			Catalog: dispatch.Catalog{
				{Match: dispatch.Contains("expensive", "price", "cost"), Respond: cannedRule("sales.coach.price")},
				{Match: dispatch.Contains("strategy", "deal"), Respond: cannedRule("sales.coach.strategy")},
				{Match: dispatch.Contains("discovery", "question"), Respond: cannedRule("sales.coach.discovery")},
				{Match: dispatch.Contains("practice", "pitch"), Respond: cannedRule("sales.coach.practice")},
				{Match: dispatch.Always(), Respond: cannedRule("sales.coach.default")},
			},
		},
	}
}
