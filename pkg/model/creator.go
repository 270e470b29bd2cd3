package model

// Category is a creative discipline used to tag jobs and creators.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PortfolioKind is the media type of a portfolio item.
type PortfolioKind string

const (
	PortfolioImage PortfolioKind = "image"
	PortfolioVideo PortfolioKind = "video"
)

// PortfolioItem is a single piece of work in a creator's portfolio.
type PortfolioItem struct {
	ID           int64         `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	FileURL      string        `json:"file_url"`
	FileType     PortfolioKind `json:"file_type"`
	ThumbnailURL string        `json:"thumbnail_url,omitempty"`
	CreatedAt    string        `json:"created_at,omitempty"`
}

// PortfolioInput is the body of POST /creators/portfolio.
type PortfolioInput struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	FileURL      string        `json:"file_url"`
	FileType     PortfolioKind `json:"file_type"`
	ThumbnailURL string        `json:"thumbnail_url"`
}

// Creator is the public creator record returned by search and detail
// endpoints. Portfolio and Categories are only filled on detail.
type Creator struct {
	ID                   int64           `json:"id"`
	Name                 string          `json:"name"`
	Email                string          `json:"email,omitempty"`
	Bio                  string          `json:"bio,omitempty"`
	Phone                string          `json:"phone,omitempty"`
	Location             string          `json:"location,omitempty"`
	ProfileImage         string          `json:"profile_image,omitempty"`
	PortfolioDescription string          `json:"portfolio_description,omitempty"`
	Categories           []Category      `json:"categories,omitempty"`
	Portfolio            []PortfolioItem `json:"portfolio,omitempty"`
}

// HasCategory reports whether the creator is tagged with the category.
func (c *Creator) HasCategory(id int64) bool {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return true
		}
	}
	return false
}
