package api

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/2k1998/bwc-portal/internal/core"
)

// Reference bundles the lookup data forms and filters need.
type Reference struct {
	Companies []core.Company
	Users     []core.User
}

// FetchReference loads companies and users concurrently. The result is
// all-or-nothing: if either request fails the whole fetch fails, so
// callers never render a form with half its lookups missing.
func (c *Client) FetchReference(ctx context.Context) (Reference, error) {
	var ref Reference
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		companies, err := c.ListCompanies(gctx)
		if err != nil {
			return err
		}
		ref.Companies = companies
		return nil
	})
	g.Go(func() error {
		users, err := c.ListUsers(gctx)
		if err != nil {
			return err
		}
		ref.Users = users
		return nil
	})

	if err := g.Wait(); err != nil {
		return Reference{}, err
	}
	return ref, nil
}

// DashboardData bundles the inputs of the dashboard aggregation.
type DashboardData struct {
	Tasks    []core.Task
	Payments []core.Payment
}

// FetchDashboardData loads tasks and pending payments concurrently with
// the same all-or-nothing join semantics as FetchReference.
func (c *Client) FetchDashboardData(ctx context.Context) (DashboardData, error) {
	var data DashboardData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		tasks, err := c.ListTasks(gctx)
		if err != nil {
			return err
		}
		data.Tasks = tasks
		return nil
	})
	g.Go(func() error {
		payments, err := c.ListPayments(gctx, 0, "")
		if err != nil {
			return err
		}
		data.Payments = payments
		return nil
	})

	if err := g.Wait(); err != nil {
		return DashboardData{}, err
	}
	return data, nil
}
