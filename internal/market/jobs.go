package market

import (
	"context"
	"fmt"

	"github.com/me/manyas/pkg/model"
)

// Jobs lists public job openings matching f.
func (c *Client) Jobs(ctx context.Context, f model.JobFilter) ([]model.Job, error) {
	var out []model.Job
	if err := c.api.Get(ctx, "/jobs"+query(f), &out); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return out, nil
}

// Job fetches one job opening.
func (c *Client) Job(ctx context.Context, id int64) (*model.Job, error) {
	var out model.Job
	if err := c.api.Get(ctx, fmt.Sprintf("/jobs/%d", id), &out); err != nil {
		return nil, fmt.Errorf("get job %d: %w", id, err)
	}
	return &out, nil
}

// MyJobs lists the job openings of the logged-in company.
func (c *Client) MyJobs(ctx context.Context) ([]model.Job, error) {
	var out []model.Job
	if err := c.api.Get(ctx, "/companies/jobs/me", &out); err != nil {
		return nil, fmt.Errorf("list company jobs: %w", err)
	}
	return out, nil
}

// CreateJob publishes a new job opening.
func (c *Client) CreateJob(ctx context.Context, in model.JobInput) error {
	if in.Status == "" {
		in.Status = model.JobOpen
	}
	if err := c.api.Post(ctx, "/companies/jobs", in, nil); err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	return nil
}

// UpdateJob replaces a job opening.
func (c *Client) UpdateJob(ctx context.Context, id int64, in model.JobInput) error {
	if err := c.api.Put(ctx, fmt.Sprintf("/companies/jobs/%d", id), in, nil); err != nil {
		return fmt.Errorf("update job %d: %w", id, err)
	}
	return nil
}

// DeleteJob removes a job opening.
func (c *Client) DeleteJob(ctx context.Context, id int64) error {
	if err := c.api.Delete(ctx, fmt.Sprintf("/companies/jobs/%d", id), nil); err != nil {
		return fmt.Errorf("delete job %d: %w", id, err)
	}
	return nil
}

// SetJobStatus moves a job to status. The API only accepts full updates,
// so the current job is fetched and written back.
func (c *Client) SetJobStatus(ctx context.Context, id int64, status model.JobStatus) error {
	job, err := c.Job(ctx, id)
	if err != nil {
		return err
	}
	in := job.Input()
	in.Status = status
	return c.UpdateJob(ctx, id, in)
}

// JobApplications lists the applications received by a job opening.
func (c *Client) JobApplications(ctx context.Context, jobID int64) ([]model.Application, error) {
	var out []model.Application
	if err := c.api.Get(ctx, fmt.Sprintf("/companies/jobs/%d/applications", jobID), &out); err != nil {
		return nil, fmt.Errorf("list applications of job %d: %w", jobID, err)
	}
	return out, nil
}
