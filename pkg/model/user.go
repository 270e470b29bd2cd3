package model

// Role identifies which side of the marketplace a user belongs to.
type Role string

const (
	// RoleCreator produces content and applies to job openings.
	RoleCreator Role = "creator"
	// RoleCompany posts job openings and reviews applications.
	RoleCompany Role = "company"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleCreator || r == RoleCompany
}

// DashboardPath returns the root of the role's dashboard.
func (r Role) DashboardPath() string {
	return "/dashboard/" + string(r)
}

// Label returns the panel subtitle shown for the role.
func (r Role) Label() string {
	switch r {
	case RoleCreator:
		return "Panel de Creador"
	case RoleCompany:
		return "Panel de Empresa"
	default:
		return ""
	}
}

// User is the identity returned by the login and profile endpoints.
// Profile holds the role-specific record and is only present on
// GET /auth/profile responses.
type User struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Role    Role     `json:"role"`
	Profile *Profile `json:"profile,omitempty"`
}

// Profile is the union of the creator and company profile fields.
// Only the fields of the user's role are populated by the API.
type Profile struct {
	ID       int64  `json:"id,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`

	// Creator fields
	Bio                  string `json:"bio,omitempty"`
	PortfolioDescription string `json:"portfolio_description,omitempty"`
	ProfileImage         string `json:"profile_image,omitempty"`

	// Company fields
	CompanyName string `json:"company_name,omitempty"`
	Description string `json:"description,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Website     string `json:"website,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
}

// CreatorProfileInput is the body of PUT /creators/profile.
type CreatorProfileInput struct {
	Bio                  string `json:"bio"`
	Phone                string `json:"phone"`
	Location             string `json:"location"`
	PortfolioDescription string `json:"portfolio_description"`
	ProfileImage         string `json:"profile_image"`
}

// CompanyProfileInput is the body of PUT /companies/profile.
type CompanyProfileInput struct {
	CompanyName string `json:"company_name"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	Website     string `json:"website"`
	LogoURL     string `json:"logo_url"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
}

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// Registration is the body of POST /auth/register.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// LoginResponse is the body returned by POST /auth/login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
