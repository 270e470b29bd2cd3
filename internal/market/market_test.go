package market

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/me/manyas/internal/apiclient"
	"github.com/me/manyas/internal/logging"
	"github.com/me/manyas/pkg/model"
)

type recorded struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// fakeAPI answers with canned JSON per "METHOD /path" and records calls.
type fakeAPI struct {
	mu        sync.Mutex
	calls     []recorded
	responses map[string]string
	failures  map[string]int
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	key := r.Method + " " + r.URL.Path

	f.mu.Lock()
	f.calls = append(f.calls, recorded{r.Method, r.URL.Path, r.URL.RawQuery, string(body)})
	status, failed := f.failures[key]
	resp, ok := f.responses[key]
	f.mu.Unlock()

	if failed {
		w.WriteHeader(status)
		w.Write([]byte(`{"error":"boom"}`))
		return
	}
	if !ok {
		resp = `{}`
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(resp))
}

func (f *fakeAPI) find(method, path string) (recorded, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c.Method == method && c.Path == path {
			return c, true
		}
	}
	return recorded{}, false
}

func newTestClient(t *testing.T, f *fakeAPI) *Client {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return New(apiclient.New(srv.URL, nil, logging.Discard()))
}

func TestJobs_FilterQuery(t *testing.T) {
	tests := []struct {
		name   string
		filter model.JobFilter
		want   string
	}{
		{"empty", model.JobFilter{}, ""},
		{"status only", model.JobFilter{Status: model.JobOpen}, "status=open"},
		{"all", model.JobFilter{Category: "3", Search: "logo design", Status: model.JobOpen}, "category=3&search=logo+design&status=open"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeAPI{responses: map[string]string{"GET /jobs": `[]`}}
			c := newTestClient(t, f)

			if _, err := c.Jobs(context.Background(), tt.filter); err != nil {
				t.Fatalf("Jobs: %v", err)
			}
			call, _ := f.find(http.MethodGet, "/jobs")
			if call.Query != tt.want {
				t.Errorf("query = %q, want %q", call.Query, tt.want)
			}
		})
	}
}

func TestJob_DecodesStringBudget(t *testing.T) {
	f := &fakeAPI{responses: map[string]string{
		"GET /jobs/4": `{"id":4,"title":"Logo","budget":"1500.00","status":"open","category_id":2}`,
	}}
	job, err := newTestClient(t, f).Job(context.Background(), 4)
	if err != nil {
		t.Fatalf("Job: %v", err)
	}
	if job.Budget == nil || float64(*job.Budget) != 1500 {
		t.Errorf("Budget = %v, want 1500", job.Budget)
	}
	if job.CategoryID == nil || *job.CategoryID != 2 {
		t.Errorf("CategoryID = %v, want 2", job.CategoryID)
	}
}

func TestSetJobStatus_FetchesThenPuts(t *testing.T) {
	f := &fakeAPI{responses: map[string]string{
		"GET /jobs/9": `{"id":9,"title":"Video","description":"d","budget":300,"status":"open"}`,
	}}
	c := newTestClient(t, f)

	if err := c.SetJobStatus(context.Background(), 9, model.JobClosed); err != nil {
		t.Fatalf("SetJobStatus: %v", err)
	}

	put, ok := f.find(http.MethodPut, "/companies/jobs/9")
	if !ok {
		t.Fatal("no PUT /companies/jobs/9")
	}
	var body model.JobInput
	if err := json.Unmarshal([]byte(put.Body), &body); err != nil {
		t.Fatalf("decode PUT body: %v", err)
	}
	if body.Status != model.JobClosed || body.Title != "Video" {
		t.Errorf("PUT body = %+v, want title Video status closed", body)
	}
	if body.Budget == nil || float64(*body.Budget) != 300 {
		t.Errorf("PUT budget = %v, want 300", body.Budget)
	}
}

func TestSetJobStatus_FetchFailureSkipsUpdate(t *testing.T) {
	f := &fakeAPI{failures: map[string]int{"GET /jobs/9": http.StatusNotFound}}
	c := newTestClient(t, f)

	err := c.SetJobStatus(context.Background(), 9, model.JobClosed)
	if !apiclient.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
	if _, ok := f.find(http.MethodPut, "/companies/jobs/9"); ok {
		t.Error("PUT sent after failed fetch")
	}
}

func TestCreateJob_DefaultsToOpen(t *testing.T) {
	f := &fakeAPI{}
	c := newTestClient(t, f)

	if err := c.CreateJob(context.Background(), model.JobInput{Title: "Foto"}); err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	call, _ := f.find(http.MethodPost, "/companies/jobs")
	if !strings.Contains(call.Body, `"status":"open"`) {
		t.Errorf("body = %s, want status open", call.Body)
	}
}

func TestApplicationEndpoints(t *testing.T) {
	f := &fakeAPI{responses: map[string]string{
		"GET /applications/me": `[{"id":1,"job_opening_id":4,"status":"pending","job_title":"Logo"}]`,
	}}
	c := newTestClient(t, f)
	ctx := context.Background()

	budget := model.Amount(250)
	if err := c.Apply(ctx, model.ApplicationInput{JobOpeningID: 4, CoverLetter: "hola", ProposedBudget: &budget}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	post, _ := f.find(http.MethodPost, "/applications")
	if !strings.Contains(post.Body, `"job_opening_id":4`) || !strings.Contains(post.Body, `"proposed_budget":250`) {
		t.Errorf("apply body = %s", post.Body)
	}

	apps, err := c.MyApplications(ctx)
	if err != nil || len(apps) != 1 || apps[0].Status != model.ApplicationPending {
		t.Fatalf("MyApplications = %+v, %v", apps, err)
	}

	if err := c.SetApplicationStatus(ctx, 1, model.ApplicationAccepted); err != nil {
		t.Fatalf("SetApplicationStatus: %v", err)
	}
	put, _ := f.find(http.MethodPut, "/applications/1/status")
	if put.Body != `{"status":"accepted"}` {
		t.Errorf("status body = %s", put.Body)
	}

	if err := c.SetApplicationStatus(ctx, 1, "maybe"); err == nil {
		t.Error("invalid status accepted")
	}

	if err := c.WithdrawApplication(ctx, 1); err != nil {
		t.Fatalf("WithdrawApplication: %v", err)
	}
	if _, ok := f.find(http.MethodDelete, "/applications/1"); !ok {
		t.Error("no DELETE /applications/1")
	}
}

func TestCreatorEndpoints(t *testing.T) {
	f := &fakeAPI{responses: map[string]string{
		"GET /creators/search": `[{"id":3,"name":"Ana"}]`,
		"GET /creators/3":      `{"id":3,"name":"Ana","categories":[{"id":2,"name":"Diseño"}],"portfolio":[{"id":1,"title":"x","file_url":"u","file_type":"video"}]}`,
	}}
	c := newTestClient(t, f)
	ctx := context.Background()

	if _, err := c.SearchCreators(ctx, model.JobFilter{Category: "2", Status: model.JobOpen}); err != nil {
		t.Fatalf("SearchCreators: %v", err)
	}
	search, _ := f.find(http.MethodGet, "/creators/search")
	if search.Query != "category=2" {
		t.Errorf("search query = %q, want category=2", search.Query)
	}

	cr, err := c.Creator(ctx, 3)
	if err != nil {
		t.Fatalf("Creator: %v", err)
	}
	if !cr.HasCategory(2) || len(cr.Portfolio) != 1 || cr.Portfolio[0].FileType != model.PortfolioVideo {
		t.Errorf("Creator = %+v", cr)
	}

	if err := c.AddCategory(ctx, 5); err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	add, _ := f.find(http.MethodPost, "/creators/categories")
	if add.Body != `{"category_id":5}` {
		t.Errorf("add category body = %s", add.Body)
	}
	if err := c.RemoveCategory(ctx, 5); err != nil {
		t.Fatalf("RemoveCategory: %v", err)
	}
	if _, ok := f.find(http.MethodDelete, "/creators/categories/5"); !ok {
		t.Error("no DELETE /creators/categories/5")
	}

	if err := c.AddPortfolioItem(ctx, model.PortfolioInput{Title: "p", FileURL: "u"}); err != nil {
		t.Fatalf("AddPortfolioItem: %v", err)
	}
	port, _ := f.find(http.MethodPost, "/creators/portfolio")
	if !strings.Contains(port.Body, `"file_type":"image"`) {
		t.Errorf("portfolio body = %s, want default image", port.Body)
	}
}

func TestCompanyDashboard_ToleratesPerJobFailures(t *testing.T) {
	f := &fakeAPI{
		responses: map[string]string{
			"GET /companies/jobs/me": `[
				{"id":1,"status":"open"},{"id":2,"status":"closed"},{"id":3,"status":"open"},
				{"id":4,"status":"in_progress"},{"id":5,"status":"open"},{"id":6,"status":"open"}
			]`,
			"GET /companies/jobs/1/applications": `[{"id":10},{"id":11}]`,
			"GET /companies/jobs/2/applications": `[{"id":12}]`,
			"GET /companies/jobs/4/applications": `[]`,
			"GET /companies/jobs/5/applications": `[{"id":13}]`,
			"GET /companies/jobs/6/applications": `[{"id":14},{"id":15},{"id":16}]`,
		},
		failures: map[string]int{"GET /companies/jobs/3/applications": http.StatusInternalServerError},
	}

	d, err := newTestClient(t, f).CompanyDashboard(context.Background())
	if err != nil {
		t.Fatalf("CompanyDashboard: %v", err)
	}
	if d.ActiveJobs != 4 {
		t.Errorf("ActiveJobs = %d, want 4", d.ActiveJobs)
	}
	if d.TotalApplications != 7 {
		t.Errorf("TotalApplications = %d, want 7", d.TotalApplications)
	}
	if d.Incomplete != 1 {
		t.Errorf("Incomplete = %d, want 1", d.Incomplete)
	}
	if len(d.RecentJobs) != RecentLimit || d.RecentJobs[0].ID != 1 {
		t.Errorf("RecentJobs = %+v", d.RecentJobs)
	}
}

func TestCompanyDashboard_JobListFailure(t *testing.T) {
	f := &fakeAPI{failures: map[string]int{"GET /companies/jobs/me": http.StatusUnauthorized}}
	if _, err := newTestClient(t, f).CompanyDashboard(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestCreatorDashboard(t *testing.T) {
	f := &fakeAPI{responses: map[string]string{
		"GET /applications/me":       `[{"id":1},{"id":2}]`,
		"GET /creators/portfolio/me": `[{"id":1}]`,
		"GET /jobs":                  `[{"id":1},{"id":2},{"id":3},{"id":4},{"id":5},{"id":6},{"id":7}]`,
	}}

	d, err := newTestClient(t, f).CreatorDashboard(context.Background())
	if err != nil {
		t.Fatalf("CreatorDashboard: %v", err)
	}
	if d.Applications != 2 || d.PortfolioItems != 1 || d.OpenJobs != 7 {
		t.Errorf("dashboard = %+v", d)
	}
	if len(d.RecentJobs) != RecentLimit {
		t.Errorf("len(RecentJobs) = %d, want %d", len(d.RecentJobs), RecentLimit)
	}
	jobs, _ := f.find(http.MethodGet, "/jobs")
	if jobs.Query != "status=open" {
		t.Errorf("jobs query = %q, want status=open", jobs.Query)
	}
}

func TestCreatorDashboard_AnyFailureFails(t *testing.T) {
	f := &fakeAPI{
		responses: map[string]string{"GET /applications/me": `[]`, "GET /jobs": `[]`},
		failures:  map[string]int{"GET /creators/portfolio/me": http.StatusInternalServerError},
	}
	if _, err := newTestClient(t, f).CreatorDashboard(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
