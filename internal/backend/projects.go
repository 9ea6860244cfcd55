package backend

import (
	"context"
	"net/http"
	"net/url"

	projects "github.com/tech0-step3/portal-web/internal/projects/domain"
)

// ListProjects fetches every project. An empty collection is returned as a
// non-nil empty slice with a nil error; failures always return an *Error.
func (c *Client) ListProjects(ctx context.Context) ([]projects.Project, error) {
	var items []projects.Project
	if err := c.do(ctx, "list_projects", http.MethodGet, "/api/projects", nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []projects.Project{}
	}
	return items, nil
}

// GetProject fetches a single project; a missing project matches ErrNotFound.
func (c *Client) GetProject(ctx context.Context, id string) (projects.Project, error) {
	var p projects.Project
	if err := c.do(ctx, "get_project", http.MethodGet, "/api/projects/"+url.PathEscape(id), nil, &p); err != nil {
		return projects.Project{}, err
	}
	return p, nil
}
