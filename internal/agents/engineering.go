package agents

import (
	"time"

	"github.com/rajfnu/itt-ai/internal/dispatch"
)

func engineeringEndpoints() []*Endpoint {
	return []*Endpoint{
		{
			AgentID:   "eng-training",
			Path:      "/api/engineering/training",
			Latency:   1000 * time.Millisecond,
			ErrorText: "Sorry, I encountered an error. Please try again.",
			Catalog: dispatch.Catalog{
				{Match: dispatch.Contains("cloud", "certification", "aws"), Respond: cannedRule("eng.training.cloud")},
				{Match: dispatch.Contains("kubernetes", "k8s"), Respond: cannedRule("eng.training.kubernetes")},
				{Match: dispatch.Contains("tech lead", "leadership"), Respond: cannedRule("eng.training.lead")},
				{Match: dispatch.Always(), Respond: cannedRule("eng.training.default")},
			},
		},
		{
			AgentID:   "eng-knowledge",
			Path:      "/api/engineering/knowledge",
			Latency:   1200 * time.Millisecond,
			ErrorText: "Sorry, I encountered an error searching the knowledge base.",
			Sources:   []string{"internal-docs", "github", "confluence"},
			Catalog: dispatch.Catalog{
				{Match: dispatch.Contains("authentication", "microservice"), Respond: cannedRule("eng.knowledge.auth")},
				{Match: dispatch.Contains("ci/cd", "pipeline"), Respond: cannedRule("eng.knowledge.cicd")},
				{Match: dispatch.Contains("coding standard", "react"), Respond: cannedRule("eng.knowledge.react")},
				{Match: dispatch.Always(), Respond: cannedRule("eng.knowledge.default")},
			},
		},
		{
			AgentID:   "eng-code-review",
			Path:      "/api/engineering/code-review",
			Latency:   1300 * time.Millisecond,
			ErrorText: "Sorry, I encountered an error reviewing the code.",
			Catalog: dispatch.Catalog{
				{Match: dispatch.Contains("function", "review"), Respond: cannedRule("eng.codereview.review")},
				{Match: dispatch.Contains("database", "query", "optimize"), Respond: cannedRule("eng.codereview.query")},
				{Match: dispatch.Contains("security", "vulnerab"), Respond: cannedRule("eng.codereview.security")},
				{Match: dispatch.Always(), Respond: cannedRule("eng.codereview.default")},
			},
		},
		{
			AgentID:   "eng-architecture",
			Path:      "/api/engineering/architecture",
			Latency:   1400 * time.Millisecond,
			ErrorText: "Sorry, I encountered an error. Please try again.",
			Catalog: dispatch.Catalog{
				{Match: dispatch.Contains("notification", "real-time"), Respond: cannedRule("eng.architecture.notifications")},
				{Match: dispatch.Contains("kafka", "rabbitmq"), Respond: cannedRule("eng.architecture.brokers")},
				{Match: dispatch.Contains("scale", "10x", "traffic"), Respond: cannedRule("eng.architecture.scale")},
				{Match: dispatch.Always(), Respond: cannedRule("eng.architecture.default")},
			},
		},
		{
			AgentID:   "eng-devops",
			Path:      "/api/engineering/devops",
			Latency:   1100 * time.Millisecond,
			ErrorText: "Sorry, I encountered an error. Please try again.",
			Catalog: dispatch.Catalog{
				{Match: dispatch.Contains("deployment", "debug", "fail"), Respond: cannedRule("eng.devops.deploy")},
				{Match: dispatch.Contains("github action", "workflow", "node"), Respond: cannedRule("eng.devops.workflow")},
				{Match: dispatch.Contains("kubernetes", "pod", "crash"), Respond: cannedRule("eng.devops.pods")},
				{Match: dispatch.Contains("docker", "build time"), Respond: cannedRule("eng.devops.docker")},
				{Match: dispatch.Always(), Respond: cannedRule("eng.devops.default")},
			},
		},
	}
}
