package market

import (
	"context"
	"fmt"

	"github.com/me/manyas/pkg/model"
)

// MyPortfolio lists the logged-in creator's portfolio.
func (c *Client) MyPortfolio(ctx context.Context) ([]model.PortfolioItem, error) {
	var out []model.PortfolioItem
	if err := c.api.Get(ctx, "/creators/portfolio/me", &out); err != nil {
		return nil, fmt.Errorf("list portfolio: %w", err)
	}
	return out, nil
}

// AddPortfolioItem adds a piece of work to the creator's portfolio.
func (c *Client) AddPortfolioItem(ctx context.Context, in model.PortfolioInput) error {
	if in.FileType == "" {
		in.FileType = model.PortfolioImage
	}
	if err := c.api.Post(ctx, "/creators/portfolio", in, nil); err != nil {
		return fmt.Errorf("add portfolio item: %w", err)
	}
	return nil
}

// DeletePortfolioItem removes a portfolio item.
func (c *Client) DeletePortfolioItem(ctx context.Context, id int64) error {
	if err := c.api.Delete(ctx, fmt.Sprintf("/creators/portfolio/%d", id), nil); err != nil {
		return fmt.Errorf("delete portfolio item %d: %w", id, err)
	}
	return nil
}

// SearchCreators lists creators by category and free-text search. The
// Status field of f is ignored.
func (c *Client) SearchCreators(ctx context.Context, f model.JobFilter) ([]model.Creator, error) {
	f.Status = ""
	var out []model.Creator
	if err := c.api.Get(ctx, "/creators/search"+query(f), &out); err != nil {
		return nil, fmt.Errorf("search creators: %w", err)
	}
	return out, nil
}

// Creator fetches a creator with categories and portfolio.
func (c *Client) Creator(ctx context.Context, id int64) (*model.Creator, error) {
	var out model.Creator
	if err := c.api.Get(ctx, fmt.Sprintf("/creators/%d", id), &out); err != nil {
		return nil, fmt.Errorf("get creator %d: %w", id, err)
	}
	return &out, nil
}

// UpdateCreatorProfile saves the logged-in creator's profile.
func (c *Client) UpdateCreatorProfile(ctx context.Context, in model.CreatorProfileInput) error {
	if err := c.api.Put(ctx, "/creators/profile", in, nil); err != nil {
		return fmt.Errorf("update creator profile: %w", err)
	}
	return nil
}

// AddCategory tags the logged-in creator with a category.
func (c *Client) AddCategory(ctx context.Context, categoryID int64) error {
	body := map[string]int64{"category_id": categoryID}
	if err := c.api.Post(ctx, "/creators/categories", body, nil); err != nil {
		return fmt.Errorf("add category %d: %w", categoryID, err)
	}
	return nil
}

// RemoveCategory untags the logged-in creator.
func (c *Client) RemoveCategory(ctx context.Context, categoryID int64) error {
	if err := c.api.Delete(ctx, fmt.Sprintf("/creators/categories/%d", categoryID), nil); err != nil {
		return fmt.Errorf("remove category %d: %w", categoryID, err)
	}
	return nil
}

// UpdateCompanyProfile saves the logged-in company's profile.
func (c *Client) UpdateCompanyProfile(ctx context.Context, in model.CompanyProfileInput) error {
	if err := c.api.Put(ctx, "/companies/profile", in, nil); err != nil {
		return fmt.Errorf("update company profile: %w", err)
	}
	return nil
}
