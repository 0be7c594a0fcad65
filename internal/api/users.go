package api

import (
	"context"
	"fmt"

	"github.com/2k1998/bwc-portal/internal/core"
)

// ListUsers fetches every portal account for the admin view.
func (c *Client) ListUsers(ctx context.Context) ([]core.User, error) {
	var users []core.User
	if err := c.get(ctx, "/users", nil, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		if err := checkUser("/users", u); err != nil {
			return nil, err
		}
	}
	return users, nil
}

// CurrentUser fetches the account behind the session token.
func (c *Client) CurrentUser(ctx context.Context) (core.User, error) {
	var u core.User
	if err := c.get(ctx, "/users/me", nil, &u); err != nil {
		return core.User{}, err
	}
	if err := checkUser("/users/me", u); err != nil {
		return core.User{}, err
	}
	return u, nil
}

// UpdateUserRole changes another user's role. Callers must consult the
// policy package first; the backend enforces the same rule server-side.
func (c *Client) UpdateUserRole(ctx context.Context, id int64, role core.Role) error {
	body := map[string]string{"role": string(role)}
	return c.patch(ctx, fmt.Sprintf("/users/%d/role", id), body, nil)
}

// SetUserActive toggles another user's active flag.
func (c *Client) SetUserActive(ctx context.Context, id int64, active bool) error {
	body := map[string]bool{"is_active": active}
	return c.patch(ctx, fmt.Sprintf("/users/%d/active", id), body, nil)
}

// DeleteUser removes an account. Same contract as the other admin
// mutations: policy first, backend enforces too.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/users/%d", id))
}

// ListCompanies fetches client companies for filters and forms.
func (c *Client) ListCompanies(ctx context.Context) ([]core.Company, error) {
	var companies []core.Company
	if err := c.get(ctx, "/companies", nil, &companies); err != nil {
		return nil, err
	}
	for _, co := range companies {
		if err := checkCompany("/companies", co); err != nil {
			return nil, err
		}
	}
	return companies, nil
}
