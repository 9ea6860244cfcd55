package backend

import (
	"context"
	"net/http"
	"net/url"

	users "github.com/tech0-step3/portal-web/internal/users/domain"
)

func (c *Client) ListUsers(ctx context.Context) ([]users.User, error) {
	var items []users.User
	if err := c.do(ctx, "list_users", http.MethodGet, "/api/users", nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []users.User{}
	}
	return items, nil
}

// GetUser fetches a single user; a missing user matches ErrNotFound.
func (c *Client) GetUser(ctx context.Context, id string) (users.User, error) {
	var u users.User
	if err := c.do(ctx, "get_user", http.MethodGet, userPath(id), nil, &u); err != nil {
		return users.User{}, err
	}
	return u, nil
}

// UpdateUser sends a partial update. Any 2xx response counts as success and
// the response body is ignored.
func (c *Client) UpdateUser(ctx context.Context, id string, patch users.Patch) error {
	return c.do(ctx, "update_user", http.MethodPut, userPath(id), patch, nil)
}

func userPath(id string) string {
	return "/api/users/" + url.PathEscape(id)
}
