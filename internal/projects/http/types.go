package http

import (
	"context"

	"github.com/tech0-step3/portal-web/internal/projects/domain"
)

// Source is the read side of the business API the project pages need.
type Source interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id string) (domain.Project, error)
}

// Handler bundles the dependencies for the project pages.
type Handler struct {
	source Source
}

func New(source Source) *Handler {
	return &Handler{source: source}
}
