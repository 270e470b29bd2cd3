package market

import (
	"context"
	"fmt"

	"github.com/me/manyas/pkg/model"
)

// Apply submits an application to a job opening.
func (c *Client) Apply(ctx context.Context, in model.ApplicationInput) error {
	if err := c.api.Post(ctx, "/applications", in, nil); err != nil {
		return fmt.Errorf("apply to job %d: %w", in.JobOpeningID, err)
	}
	return nil
}

// MyApplications lists the logged-in creator's applications.
func (c *Client) MyApplications(ctx context.Context) ([]model.Application, error) {
	var out []model.Application
	if err := c.api.Get(ctx, "/applications/me", &out); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return out, nil
}

// WithdrawApplication deletes one of the creator's applications.
func (c *Client) WithdrawApplication(ctx context.Context, id int64) error {
	if err := c.api.Delete(ctx, fmt.Sprintf("/applications/%d", id), nil); err != nil {
		return fmt.Errorf("withdraw application %d: %w", id, err)
	}
	return nil
}

// SetApplicationStatus accepts or rejects an application.
func (c *Client) SetApplicationStatus(ctx context.Context, id int64, status model.ApplicationStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid application status %q", status)
	}
	body := map[string]model.ApplicationStatus{"status": status}
	if err := c.api.Put(ctx, fmt.Sprintf("/applications/%d/status", id), body, nil); err != nil {
		return fmt.Errorf("set application %d status: %w", id, err)
	}
	return nil
}
