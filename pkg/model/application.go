package model

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Valid reports whether s is a status a company may set.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// Label returns the Spanish display label for the status.
func (s ApplicationStatus) Label() string {
	switch s {
	case ApplicationAccepted:
		return "Aceptada"
	case ApplicationRejected:
		return "Rechazada"
	default:
		return "Pendiente"
	}
}

// Application is a creator's application to a job opening. The joined
// job, company and creator fields depend on which endpoint returned it.
type Application struct {
	ID             int64             `json:"id"`
	JobOpeningID   int64             `json:"job_opening_id"`
	CreatorID      int64             `json:"creator_id,omitempty"`
	Status         ApplicationStatus `json:"status"`
	CoverLetter    string            `json:"cover_letter,omitempty"`
	ProposedBudget *Amount           `json:"proposed_budget,omitempty"`
	CreatedAt      string            `json:"created_at,omitempty"`

	JobTitle     string  `json:"job_title,omitempty"`
	JobBudget    *Amount `json:"job_budget,omitempty"`
	CategoryName string  `json:"category_name,omitempty"`
	CompanyName  string  `json:"company_name,omitempty"`
	CreatorName  string  `json:"creator_name,omitempty"`
	ProfileImage string  `json:"profile_image,omitempty"`
	Bio          string  `json:"bio,omitempty"`
}

// ApplicationInput is the body of POST /applications.
type ApplicationInput struct {
	JobOpeningID   int64   `json:"job_opening_id"`
	CoverLetter    string  `json:"cover_letter"`
	ProposedBudget *Amount `json:"proposed_budget"`
}
