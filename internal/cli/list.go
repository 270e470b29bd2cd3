package cli

import (
	"fmt"
	"io"

	"github.com/me/manyas/internal/market"
	"github.com/me/manyas/pkg/model"
	"github.com/spf13/cobra"
)

func money(a *model.Amount) string {
	if a == nil {
		return "-"
	}
	return a.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func newJobsCmd() *cobra.Command {
	var filter model.JobFilter

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List job openings",
		Long: "Creators see open jobs, optionally filtered by --category and --search.\n" +
			"Companies see their own jobs in every status.",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := checkedSession(cmd.Context())
			user, ok := st.User()
			if !ok {
				return errNotSignedIn
			}
			m := market.New(api)

			var jobs []model.Job
			var err error
			switch user.Role {
			case model.RoleCompany:
				jobs, err = m.MyJobs(cmd.Context())
			default:
				filter.Status = model.JobOpen
				jobs, err = m.Jobs(cmd.Context(), filter)
			}
			if err != nil {
				return fmt.Errorf("list jobs: %w", err)
			}
			printJobs(cmd.OutOrStdout(), jobs)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Category, "category", "", "Category ID")
	cmd.Flags().StringVar(&filter.Search, "search", "", "Search text")
	return cmd
}

func printJobs(w io.Writer, jobs []model.Job) {
	if len(jobs) == 0 {
		fmt.Fprintln(w, "No jobs found.")
		return
	}
	fmt.Fprintf(w, "%-6s  %-12s  %-14s  %-20s  %s\n", "ID", "STATUS", "BUDGET", "COMPANY", "TITLE")
	fmt.Fprintf(w, "%-6s  %-12s  %-14s  %-20s  %s\n", "--", "------", "------", "-------", "-----")
	for _, j := range jobs {
		fmt.Fprintf(w, "%-6d  %-12s  %-14s  %-20s  %s\n",
			j.ID, j.Status, money(j.Budget), truncate(j.CompanyName, 20), j.Title)
	}
}

func newApplicationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "applications",
		Short: "List your applications (creators)",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := requireRole(cmd.Context(), model.RoleCreator)
			if err != nil {
				return err
			}
			apps, err := m.MyApplications(cmd.Context())
			if err != nil {
				return fmt.Errorf("list applications: %w", err)
			}

			w := cmd.OutOrStdout()
			if len(apps) == 0 {
				fmt.Fprintln(w, "No applications found.")
				return nil
			}
			fmt.Fprintf(w, "%-6s  %-10s  %-14s  %-20s  %s\n", "ID", "STATUS", "PROPOSED", "COMPANY", "JOB")
			fmt.Fprintf(w, "%-6s  %-10s  %-14s  %-20s  %s\n", "--", "------", "--------", "-------", "---")
			for _, a := range apps {
				fmt.Fprintf(w, "%-6d  %-10s  %-14s  %-20s  %s\n",
					a.ID, a.Status, money(a.ProposedBudget), truncate(a.CompanyName, 20), a.JobTitle)
			}
			return nil
		},
	}
}

func newPortfolioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "portfolio",
		Short: "List your portfolio items (creators)",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := requireRole(cmd.Context(), model.RoleCreator)
			if err != nil {
				return err
			}
			items, err := m.MyPortfolio(cmd.Context())
			if err != nil {
				return fmt.Errorf("list portfolio: %w", err)
			}

			w := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(w, "Portfolio is empty.")
				return nil
			}
			fmt.Fprintf(w, "%-6s  %-6s  %-30s  %s\n", "ID", "TYPE", "TITLE", "URL")
			fmt.Fprintf(w, "%-6s  %-6s  %-30s  %s\n", "--", "----", "-----", "---")
			for _, it := range items {
				fmt.Fprintf(w, "%-6d  %-6s  %-30s  %s\n", it.ID, it.FileType, truncate(it.Title, 30), it.FileURL)
			}
			return nil
		},
	}
}
