package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/2k1998/bwc-portal/internal/core"
)

// ListProjects fetches projects matching the composed filter parameters
// (see the query package). Passing nil lists everything with the default
// sort applied server-side.
func (c *Client) ListProjects(ctx context.Context, params url.Values) ([]core.Project, error) {
	var projects []core.Project
	if err := c.get(ctx, "/projects", params, &projects); err != nil {
		return nil, err
	}
	for _, p := range projects {
		if err := checkProject("/projects", p); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

// GetProject fetches one project by id.
func (c *Client) GetProject(ctx context.Context, id int64) (core.Project, error) {
	var p core.Project
	path := fmt.Sprintf("/projects/%d", id)
	if err := c.get(ctx, path, nil, &p); err != nil {
		return core.Project{}, err
	}
	if err := checkProject(path, p); err != nil {
		return core.Project{}, err
	}
	return p, nil
}

// CreateProject submits a draft payload built by the form package and
// returns the stored project.
func (c *Client) CreateProject(ctx context.Context, payload map[string]any) (core.Project, error) {
	var p core.Project
	if err := c.post(ctx, "/projects", payload, &p); err != nil {
		return core.Project{}, err
	}
	if err := checkProject("/projects", p); err != nil {
		return core.Project{}, err
	}
	return p, nil
}

// UpdateProject replaces a project with the given draft payload.
func (c *Client) UpdateProject(ctx context.Context, id int64, payload map[string]any) (core.Project, error) {
	var p core.Project
	path := fmt.Sprintf("/projects/%d", id)
	if err := c.put(ctx, path, payload, &p); err != nil {
		return core.Project{}, err
	}
	if err := checkProject(path, p); err != nil {
		return core.Project{}, err
	}
	return p, nil
}

// AddProjectStatusUpdate posts a progress/status note to a project.
func (c *Client) AddProjectStatusUpdate(ctx context.Context, id int64, payload map[string]any) error {
	return c.post(ctx, fmt.Sprintf("/projects/%d/status-update", id), payload, nil)
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/projects/%d", id))
}
