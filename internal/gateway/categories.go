package gateway

import (
	"context"

	"github.com/Sharma7422/fintrack/internal/model"
)

// CategoryDraft is the payload for creating or renaming a category.
type CategoryDraft struct {
	Name string           `json:"name"`
	Type model.RecordType `json:"type"`
}

// Categories fetches the combined category and tag lists.
func (c *Client) Categories(ctx context.Context) (*model.CategorySet, error) {
	var set model.CategorySet
	if err := c.get(ctx, "/categories-tags", nil, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

// AddCategory creates a category.
func (c *Client) AddCategory(ctx context.Context, draft CategoryDraft) (*model.Category, error) {
	var category model.Category
	if err := c.post(ctx, "/categories-tags/category", draft, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames the category with the given identity. The backend
// takes the identity in the body rather than the path.
func (c *Client) UpdateCategory(ctx context.Context, id, name string) (*model.Category, error) {
	body := map[string]string{"id": id, "name": name}
	var category model.Category
	if err := c.put(ctx, "/categories-tags/category", body, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes the category with the given identity.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.delete(ctx, "/categories-tags/category", map[string]string{"id": id})
}

// AddTag creates a tag.
func (c *Client) AddTag(ctx context.Context, name string) (*model.Tag, error) {
	var tag model.Tag
	if err := c.post(ctx, "/categories-tags/tag", map[string]string{"name": name}, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes the tag with the given identity.
func (c *Client) DeleteTag(ctx context.Context, id string) error {
	return c.delete(ctx, "/categories-tags/tag", map[string]string{"id": id})
}
