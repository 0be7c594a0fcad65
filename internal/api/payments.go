package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/2k1998/bwc-portal/internal/core"
)

// PaymentInput is the payload for creating or replacing a payment.
type PaymentInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Amount      core.Money `json:"amount"`
	Status      string     `json:"status"`
	DueDate     string     `json:"due_date"`
}

// ListPayments fetches payments, optionally limited and filtered by
// status. limit <= 0 and statusFilter == "" mean no constraint.
func (c *Client) ListPayments(ctx context.Context, limit int, statusFilter string) ([]core.Payment, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if statusFilter != "" {
		query.Set("status_filter", statusFilter)
	}
	var payments []core.Payment
	if err := c.get(ctx, "/payments", query, &payments); err != nil {
		return nil, err
	}
	for _, p := range payments {
		if err := checkPayment("/payments", p); err != nil {
			return nil, err
		}
	}
	return payments, nil
}

// GetPayment fetches one payment by id.
func (c *Client) GetPayment(ctx context.Context, id int64) (core.Payment, error) {
	var p core.Payment
	path := fmt.Sprintf("/payments/%d", id)
	if err := c.get(ctx, path, nil, &p); err != nil {
		return core.Payment{}, err
	}
	if err := checkPayment(path, p); err != nil {
		return core.Payment{}, err
	}
	return p, nil
}

// CreatePayment creates a payment and returns the stored record.
func (c *Client) CreatePayment(ctx context.Context, input PaymentInput) (core.Payment, error) {
	var p core.Payment
	if err := c.post(ctx, "/payments", input, &p); err != nil {
		return core.Payment{}, err
	}
	if err := checkPayment("/payments", p); err != nil {
		return core.Payment{}, err
	}
	return p, nil
}

// UpdatePayment replaces a payment.
func (c *Client) UpdatePayment(ctx context.Context, id int64, input PaymentInput) (core.Payment, error) {
	var p core.Payment
	path := fmt.Sprintf("/payments/%d", id)
	if err := c.put(ctx, path, input, &p); err != nil {
		return core.Payment{}, err
	}
	if err := checkPayment(path, p); err != nil {
		return core.Payment{}, err
	}
	return p, nil
}

// DeletePayment removes a payment. The backend answers 204 on success.
func (c *Client) DeletePayment(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/payments/%d", id))
}

// UpdatePaymentStatus patches only the status field.
func (c *Client) UpdatePaymentStatus(ctx context.Context, id int64, status core.PaymentStatus) error {
	body := map[string]string{"status": string(status)}
	return c.patch(ctx, fmt.Sprintf("/payments/%d/status", id), body, nil)
}
