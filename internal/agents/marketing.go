package agents

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rajfnu/itt-ai/internal/dispatch"
)

// Content templates by content type. {topic} and {topicLower} are filled
// from the task input.
var contentTemplates = map[string]string{
	"blog": `# {topic}

In today's fast-paced business environment, {topicLower} has become more important than ever. This comprehensive guide will walk you through everything you need to know...

## Key Takeaways
- Point 1: Understanding the fundamentals
- Point 2: Best practices for implementation
- Point 3: Measuring success

## Conclusion
By following these strategies, your organization can stay ahead of the competition...`,
	"social": `🚀 Excited to share our latest insights on {topic}!

Key benefits:
✅ Increased efficiency
✅ Better ROI
✅ Competitive advantage

Learn more: [link]

#Business #Innovation #Growth`,
	"email": `Subject: Discover How {topic} Can Transform Your Business

Hi [First Name],

We know that {topicLower} is top of mind for leaders like you. That's why we've put together this exclusive guide...

What you'll learn:
• Strategy 1
• Strategy 2
• Strategy 3

[CTA Button: Get Started Today]

Best regards,
The InTimeTec Team`,
	"ad": `{topic} | Transform Your Business Today

Tired of [pain point]? Our solution helps you achieve [benefit] in just [timeframe].

✓ Feature 1
✓ Feature 2
✓ Feature 3

→ Start your free trial today`,
}

func generateContent(input map[string]any) (dispatch.Reply, error) {
	contentType := dispatch.StringInput(input, "contentType")
	topic := dispatch.StringInput(input, "topic")

	generated := "Content generated successfully"
	if tmpl, ok := contentTemplates[contentType]; ok {
		generated = strings.NewReplacer(
			"{topic}", topic,
			"{topicLower}", strings.ToLower(topic),
		).Replace(tmpl)
	}

	return dispatch.Reply{
		Message: fmt.Sprintf("%s content generated successfully", contentType),
		Data: map[string]any{
			"contentType":       contentType,
			"topic":             topic,
			"tone":              input["tone"],
			"generatedContent":  generated,
			"wordCount":         250,
			"readabilityScore":  72,
			"seoScore":          85,
			"suggestedHashtags": []string{"#Business", "#Innovation", "#Growth", "#Leadership"},
		},
	}, nil
}

func marketingEndpoints() []*Endpoint {
	return []*Endpoint{
		{
			AgentID:   "marketing-leads",
			Path:      "/api/marketing/leads",
			Latency:   1000 * time.Millisecond,
			ErrorText: "Internal server error",
			Tasks: dispatch.TaskTable{
				"create-lead": func(input map[string]any) (dispatch.Reply, error) {
					company := dispatch.StringInput(input, "companyName")
					return dispatch.Reply{
						Message: fmt.Sprintf("New lead created for %s. Assigned to sales team for follow-up.", company),
						Data: map[string]any{
							"leadId":      fmt.Sprintf("LEAD-%d", time.Now().UnixMilli()),
							"companyName": company,
							"contactName": input["contactName"],
							"email":       input["email"],
							"source":      input["source"],
							"status":      "new",
							"score":       0,
							"assignedTo":  "Lisa Martinez",
							"createdAt":   time.Now().UTC().Format(time.RFC3339),
							"nextAction":  "Initial outreach within 24 hours",
						},
					}, nil
				},
				"score-lead": func(input map[string]any) (dispatch.Reply, error) {
					return dispatch.Reply{
						Message: "Lead scored at 85/100 - Qualified as Hot Lead",
						Data: map[string]any{
							"leadEmail":   input["leadEmail"],
							"leadId":      "LEAD-12345",
							"companyName": "Tech Solutions Inc",
							"score":       85,
							"scoreBreakdown": map[string]any{
								"companySize": 20,
								"industry":    25,
								"engagement":  25,
								"budget":      15,
							},
							"qualification":      "Hot Lead",
							"recommendation":     "Schedule demo call immediately",
							"predictedCloseRate": 72,
						},
					}, nil
				},
			},
		},
		{
			AgentID:   "marketing-campaign",
			Path:      "/api/marketing/campaign",
			Latency:   1200 * time.Millisecond,
			ErrorText: "Internal server error",
			Tasks: dispatch.TaskTable{
				"create-campaign": func(input map[string]any) (dispatch.Reply, error) {
					name := dispatch.StringInput(input, "campaignName")
					budget := numberInput(input, "budget")
					return dispatch.Reply{
						Message: fmt.Sprintf("Campaign %q created successfully. Ready for launch.", name),
						Data: map[string]any{
							"campaignId":     fmt.Sprintf("CAMP-%d", time.Now().UnixMilli()),
							"campaignName":   name,
							"objective":      input["objective"],
							"budget":         input["budget"],
							"startDate":      input["startDate"],
							"endDate":        input["endDate"],
							"status":         "draft",
							"channels":       []string{"Email", "Social Media", "Display Ads"},
							"targetAudience": "B2B Decision Makers",
							"expectedReach":  int(math.Round(budget * 10)),
							"estimatedROI":   "3.5x",
						},
					}, nil
				},
			},
			AnyTask: fixedTask("Campaign task processed successfully", map[string]any{
				"activeCampaigns": []map[string]any{
					{"id": "CAMP-001", "name": "Q4 Product Launch", "status": "active", "performance": "exceeding"},
					{"id": "CAMP-002", "name": "Holiday Promotion", "status": "active", "performance": "on-track"},
				},
				"totalBudget": 50000,
				"spent":       32000,
			}),
		},
		{
			AgentID:   "marketing-content",
			Path:      "/api/marketing/content",
			Latency:   1500 * time.Millisecond,
			ErrorText: "Internal server error",
			Tasks: dispatch.TaskTable{
				"generate-content": generateContent,
			},
		},
		{
			AgentID:   "marketing-social",
			Path:      "/api/marketing/social",
			Latency:   900 * time.Millisecond,
			ErrorText: "Internal server error",
			AnyTask: fixedTask("Social media task processed successfully", map[string]any{
				"platforms":         []string{"LinkedIn", "Twitter", "Facebook", "Instagram"},
				"scheduledPosts":    12,
				"publishedThisWeek": 8,
				"engagement": map[string]any{
					"likes":    1250,
					"shares":   340,
					"comments": 89,
					"reach":    45000,
				},
				"topPerformingPost": map[string]any{
					"platform":   "LinkedIn",
					"content":    "Product announcement...",
					"engagement": 520,
				},
			}),
		},
		{
			AgentID:   "marketing-analytics",
			Path:      "/api/marketing/analytics",
			Latency:   1100 * time.Millisecond,
			ErrorText: "Internal server error",
			AnyTask: fixedTask("Marketing analytics report generated", map[string]any{
				"period": "Last 30 days",
				"kpis": map[string]any{
					"websiteVisits":      125000,
					"uniqueVisitors":     78000,
					"bounceRate":         42,
					"avgSessionDuration": "3:45",
					"conversionRate":     3.2,
				},
				"channelPerformance": []map[string]any{
					{"channel": "Organic Search", "visits": 45000, "conversions": 1200},
					{"channel": "Paid Search", "visits": 32000, "conversions": 890},
					{"channel": "Social Media", "visits": 28000, "conversions": 450},
					{"channel": "Email", "visits": 20000, "conversions": 680},
				},
				"topContent": []map[string]any{
					{"page": "/product-demo", "views": 8500},
					{"page": "/pricing", "views": 6200},
					{"page": "/blog/ai-trends", "views": 4800},
				},
				"roi": map[string]any{
					"spend":   25000,
					"revenue": 87500,
					"roi":     250,
				},
			}),
		},
	}
}
