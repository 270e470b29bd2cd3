package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
)

// JobStatus is the lifecycle state of a job opening.
type JobStatus string

const (
	JobOpen       JobStatus = "open"
	JobInProgress JobStatus = "in_progress"
	JobClosed     JobStatus = "closed"
)

// JobStatuses lists the statuses a company can move a job to, in display order.
var JobStatuses = []JobStatus{JobOpen, JobInProgress, JobClosed}

// Label returns the Spanish display label for the status.
func (s JobStatus) Label() string {
	switch s {
	case JobInProgress:
		return "En Progreso"
	case JobClosed:
		return "Cerrada"
	default:
		return "Abierta"
	}
}

// Job is a job opening posted by a company.
type Job struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Requirements       string    `json:"requirements,omitempty"`
	Budget             *Amount   `json:"budget,omitempty"`
	Deadline           string    `json:"deadline,omitempty"`
	Status             JobStatus `json:"status"`
	CategoryID         *int64    `json:"category_id,omitempty"`
	CategoryName       string    `json:"category_name,omitempty"`
	CompanyName        string    `json:"company_name,omitempty"`
	CompanyDescription string    `json:"company_description,omitempty"`
	LogoURL            string    `json:"logo_url,omitempty"`
	CreatedAt          string    `json:"created_at,omitempty"`
}

// JobInput is the body of POST and PUT /companies/jobs.
type JobInput struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Budget       *Amount   `json:"budget"`
	Deadline     string    `json:"deadline,omitempty"`
	CategoryID   *int64    `json:"category_id"`
	Status       JobStatus `json:"status"`
}

// Input converts a fetched job back into an update body.
func (j *Job) Input() JobInput {
	return JobInput{
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Budget:       j.Budget,
		Deadline:     j.Deadline,
		CategoryID:   j.CategoryID,
		Status:       j.Status,
	}
}

// JobFilter narrows GET /jobs and GET /creators/search.
type JobFilter struct {
	Category string
	Search   string
	Status   JobStatus
}

// Amount is a money value. The API serializes decimals either as JSON
// numbers or as strings, so both are accepted.
type Amount float64

// UnmarshalJSON accepts 1500, 1500.5, "1500.00" and null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		data = []byte(s)
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("amount %q: %w", data, err)
	}
	*a = Amount(f)
	return nil
}

// String formats the amount as dollars with thousands separators and
// two decimals, e.g. "$1,500.00".
func (a Amount) String() string {
	return "$" + humanize.FormatFloat("#,###.##", float64(a))
}

// ParseAmount parses a form value into an Amount. Empty input yields nil.
func ParseAmount(s string) (*Amount, error) {
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	a := Amount(f)
	return &a, nil
}
