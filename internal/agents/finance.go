package agents

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rajfnu/itt-ai/internal/dispatch"
)

type budgetLine struct {
	allocated float64
	spent     float64
	remaining float64
}

// Department budget table by department and quarter, both lowercase.
var budgetTable = map[string]map[string]budgetLine{
	"engineering": {
		"q1": {500000, 420000, 80000},
		"q2": {550000, 510000, 40000},
		"q3": {520000, 480000, 40000},
		"q4": {600000, 250000, 350000},
	},
	"hr": {
		"q1": {150000, 130000, 20000},
		"q2": {160000, 155000, 5000},
		"q3": {155000, 140000, 15000},
		"q4": {180000, 90000, 90000},
	},
	"finance": {
		"q1": {120000, 110000, 10000},
		"q2": {125000, 120000, 5000},
		"q3": {130000, 125000, 5000},
		"q4": {140000, 70000, 70000},
	},
	"marketing": {
		"q1": {300000, 280000, 20000},
		"q2": {350000, 340000, 10000},
		"q3": {320000, 290000, 30000},
		"q4": {400000, 180000, 220000},
	},
}

func checkBudget(input map[string]any) (dispatch.Reply, error) {
	department := dispatch.StringInput(input, "department")
	quarter := dispatch.StringInput(input, "quarter")

	dept := strings.ToLower(department)
	if dept == "" {
		dept = "engineering"
	}
	qtr := strings.ToLower(quarter)
	if qtr == "" {
		qtr = "q4"
	}

	line := budgetTable[dept][qtr]

	// Unfunded combinations report a zero utilization rather than blowing
	// up on the division.
	rate := 0
	if line.allocated > 0 {
		rate = int(math.Round(line.spent / line.allocated * 100))
	}

	alerts := []string{}
	if line.remaining < line.allocated*0.1 {
		alerts = append(alerts, "Budget nearly exhausted")
	}

	return dispatch.Reply{
		Message: fmt.Sprintf("Budget status for %s %s: %d%% utilized", department, quarter, rate),
		Data: map[string]any{
			"department":      department,
			"quarter":         quarter,
			"allocated":       line.allocated,
			"spent":           line.spent,
			"remaining":       line.remaining,
			"utilizationRate": rate,
			"forecast":        "On track",
			"alerts":          alerts,
		},
	}, nil
}

func financeEndpoints() []*Endpoint {
	return []*Endpoint{
		{
			AgentID:   "finance-invoice",
			Path:      "/api/finance/invoice",
			Latency:   1000 * time.Millisecond,
			ErrorText: "Internal server error",
			Tasks: dispatch.TaskTable{
				"process-invoice": func(input map[string]any) (dispatch.Reply, error) {
					number := dispatch.StringInput(input, "invoiceNumber")
					return dispatch.Reply{
						Message: fmt.Sprintf("Invoice %s submitted for approval. Amount: $%v", number, input["amount"]),
						Data: map[string]any{
							"invoiceId":     fmt.Sprintf("INV-%d", time.Now().UnixMilli()),
							"vendorName":    input["vendorName"],
							"invoiceNumber": number,
							"amount":        input["amount"],
							"dueDate":       input["dueDate"],
							"status":        "pending_approval",
							"approvalWorkflow": []map[string]any{
								{"step": 1, "approver": "Finance Manager", "status": "pending"},
								{"step": 2, "approver": "Department Head", "status": "waiting"},
							},
							"paymentScheduled": nil,
						},
					}, nil
				},
				"check-invoice-status": func(input map[string]any) (dispatch.Reply, error) {
					number := dispatch.StringInput(input, "invoiceNumber")
					return dispatch.Reply{
						Message: fmt.Sprintf("Invoice %s has been approved and scheduled for payment", number),
						Data: map[string]any{
							"invoiceNumber": number,
							"vendor":        "Acme Corp",
							"amount":        15000,
							"status":        "approved",
							"submittedDate": "2024-01-05",
							"approvedDate":  "2024-01-08",
							"paymentDate":   "2024-01-15",
							"paymentMethod": "ACH Transfer",
						},
					}, nil
				},
			},
		},
		{
			AgentID:   "finance-expense",
			Path:      "/api/finance/expense",
			Latency:   900 * time.Millisecond,
			ErrorText: "Internal server error",
			AnyTask: fixedTask("Expense task processed successfully", map[string]any{
				"expenseReports": []map[string]any{
					{"id": "EXP-001", "employee": "John Doe", "amount": 1250, "status": "pending"},
					{"id": "EXP-002", "employee": "Jane Smith", "amount": 890, "status": "approved"},
				},
				"monthlyTotal": 45000,
				"categorySummary": map[string]any{
					"travel":   18000,
					"meals":    5000,
					"supplies": 12000,
					"software": 10000,
				},
			}),
		},
		{
			AgentID:   "finance-budget",
			Path:      "/api/finance/budget",
			Latency:   1100 * time.Millisecond,
			ErrorText: "Internal server error",
			Tasks: dispatch.TaskTable{
				"check-budget": checkBudget,
			},
		},
		{
			AgentID:   "finance-payroll",
			Path:      "/api/finance/payroll",
			Latency:   1000 * time.Millisecond,
			ErrorText: "Internal server error",
			AnyTask: fixedTask("Payroll task processed successfully", map[string]any{
				"payrollPeriod":  "January 2024",
				"totalEmployees": 125,
				"grossPayroll":   875000,
				"deductions": map[string]any{
					"tax":        175000,
					"benefits":   45000,
					"retirement": 35000,
				},
				"netPayroll":  620000,
				"nextPayDate": "2024-01-31",
			}),
		},
		{
			AgentID:   "finance-report",
			Path:      "/api/finance/report",
			Latency:   1200 * time.Millisecond,
			ErrorText: "Internal server error",
			AnyTask: fixedTask("Financial report generated successfully", map[string]any{
				"reportType":   "Financial Summary",
				"period":       "Q4 2024",
				"revenue":      2500000,
				"expenses":     1800000,
				"netIncome":    700000,
				"profitMargin": 28,
				"yearOverYear": map[string]any{
					"revenueGrowth": 15,
					"expenseGrowth": 8,
					"profitGrowth":  22,
				},
			}),
		},
	}
}
