package api

import (
	"context"
	"fmt"

	"github.com/2k1998/bwc-portal/internal/core"
)

// ListTasks fetches the caller's tasks for dashboard categorization.
func (c *Client) ListTasks(ctx context.Context) ([]core.Task, error) {
	var tasks []core.Task
	if err := c.get(ctx, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if err := checkTask("/tasks", t); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

// UpdateTaskStatus patches a task's workflow status. Tasks are mutated
// only through this call; categorization stays read-side.
func (c *Client) UpdateTaskStatus(ctx context.Context, id int64, status core.TaskStatus) error {
	body := map[string]string{"status": string(status)}
	return c.patch(ctx, fmt.Sprintf("/tasks/%d/status", id), body, nil)
}
