package market

import (
	"context"
	"sync"

	"github.com/me/manyas/pkg/model"
	"golang.org/x/sync/errgroup"
)

// RecentLimit is the number of jobs shown on a dashboard.
const RecentLimit = 5

// fanout bounds concurrent per-job application fetches.
const fanout = 4

// CompanyDashboard summarizes a company's activity.
type CompanyDashboard struct {
	ActiveJobs        int
	TotalApplications int
	RecentJobs        []model.Job
	// Incomplete counts jobs whose applications could not be fetched and
	// are missing from TotalApplications.
	Incomplete int
}

// CreatorDashboard summarizes a creator's activity.
type CreatorDashboard struct {
	Applications   int
	PortfolioItems int
	OpenJobs       int
	RecentJobs     []model.Job
}

// CompanyDashboard loads the company's jobs and sums their applications.
// Only a failure to list the jobs is an error; a job whose applications
// cannot be fetched is counted in Incomplete.
func (c *Client) CompanyDashboard(ctx context.Context) (*CompanyDashboard, error) {
	jobs, err := c.MyJobs(ctx)
	if err != nil {
		return nil, err
	}

	d := &CompanyDashboard{RecentJobs: head(jobs, RecentLimit)}
	for _, j := range jobs {
		if j.Status == model.JobOpen {
			d.ActiveJobs++
		}
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(fanout)
	for _, j := range jobs {
		g.Go(func() error {
			apps, err := c.JobApplications(ctx, j.ID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				d.Incomplete++
				return nil
			}
			d.TotalApplications += len(apps)
			return nil
		})
	}
	_ = g.Wait()

	return d, nil
}

// CreatorDashboard loads the creator's applications, portfolio and the
// open jobs concurrently. Any failure fails the whole dashboard.
func (c *Client) CreatorDashboard(ctx context.Context) (*CreatorDashboard, error) {
	var (
		apps      []model.Application
		portfolio []model.PortfolioItem
		jobs      []model.Job
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		apps, err = c.MyApplications(gctx)
		return err
	})
	g.Go(func() (err error) {
		portfolio, err = c.MyPortfolio(gctx)
		return err
	})
	g.Go(func() (err error) {
		jobs, err = c.Jobs(gctx, model.JobFilter{Status: model.JobOpen})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &CreatorDashboard{
		Applications:   len(apps),
		PortfolioItems: len(portfolio),
		OpenJobs:       len(jobs),
		RecentJobs:     head(jobs, RecentLimit),
	}, nil
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
