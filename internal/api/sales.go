package api

import (
	"context"
	"fmt"

	"github.com/2k1998/bwc-portal/internal/core"
)

// SalesSummary is the aggregate view for the current period.
type SalesSummary struct {
	TotalSales       core.Money `json:"total_sales"`
	TotalCommissions core.Money `json:"total_commissions"`
	EmployeeCount    int        `json:"employee_count"`
	PeriodStart      core.Date  `json:"period_start"`
	PeriodEnd        core.Date  `json:"period_end"`
}

// EmployeeCommission is one employee's commission summary.
type EmployeeCommission struct {
	UserID     int64      `json:"user_id"`
	Name       string     `json:"name"`
	Sales      core.Money `json:"sales"`
	Commission core.Money `json:"commission"`
}

// CommissionInput feeds the commission calculator.
type CommissionInput struct {
	UserID int64      `json:"user_id"`
	Sales  core.Money `json:"sales"`
	RuleID *int64     `json:"rule_id,omitempty"`
}

// CommissionResult is the calculator's answer.
type CommissionResult struct {
	Commission core.Money `json:"commission"`
	RuleID     int64      `json:"rule_id"`
}

// CommissionRule maps a sales threshold to a percentage rate.
type CommissionRule struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Threshold core.Money `json:"threshold"`
	RatePct   float64    `json:"rate_pct"`
	Active    bool       `json:"active"`
}

// CommissionRuleInput creates or updates a rule.
type CommissionRuleInput struct {
	Name      string     `json:"name"`
	Threshold core.Money `json:"threshold"`
	RatePct   float64    `json:"rate_pct"`
	Active    bool       `json:"active"`
}

// DashboardSummary fetches aggregate sales totals for the current period.
func (c *Client) DashboardSummary(ctx context.Context) (SalesSummary, error) {
	var s SalesSummary
	if err := c.get(ctx, "/sales/dashboard-summary", nil, &s); err != nil {
		return SalesSummary{}, err
	}
	return s, nil
}

// EmployeeCommissions fetches per-employee commission summaries.
func (c *Client) EmployeeCommissions(ctx context.Context) ([]EmployeeCommission, error) {
	var out []EmployeeCommission
	if err := c.get(ctx, "/sales/employee-commissions", nil, &out); err != nil {
		return nil, err
	}
	for _, ec := range out {
		if ec.UserID == 0 {
			return nil, &ShapeError{Endpoint: "/sales/employee-commissions", Field: "user_id"}
		}
	}
	return out, nil
}

// CalculateCommission asks the backend to compute a commission.
func (c *Client) CalculateCommission(ctx context.Context, input CommissionInput) (CommissionResult, error) {
	var out CommissionResult
	if err := c.post(ctx, "/sales/calculate-commission", input, &out); err != nil {
		return CommissionResult{}, err
	}
	return out, nil
}

// ListCommissionRules fetches the configured rules.
func (c *Client) ListCommissionRules(ctx context.Context) ([]CommissionRule, error) {
	var rules []CommissionRule
	if err := c.get(ctx, "/sales/commission-rules", nil, &rules); err != nil {
		return nil, err
	}
	for _, r := range rules {
		if r.ID == 0 {
			return nil, &ShapeError{Endpoint: "/sales/commission-rules", Field: "id"}
		}
		if r.Name == "" {
			return nil, &ShapeError{Endpoint: "/sales/commission-rules", Field: "name"}
		}
	}
	return rules, nil
}

// CreateCommissionRule adds a rule.
func (c *Client) CreateCommissionRule(ctx context.Context, input CommissionRuleInput) (CommissionRule, error) {
	var r CommissionRule
	if err := c.post(ctx, "/sales/commission-rules", input, &r); err != nil {
		return CommissionRule{}, err
	}
	return r, nil
}

// UpdateCommissionRule replaces a rule.
func (c *Client) UpdateCommissionRule(ctx context.Context, id int64, input CommissionRuleInput) (CommissionRule, error) {
	var r CommissionRule
	if err := c.put(ctx, fmt.Sprintf("/sales/commission-rules/%d", id), input, &r); err != nil {
		return CommissionRule{}, err
	}
	return r, nil
}
