package http

import (
	"context"

	"github.com/tech0-step3/portal-web/internal/users/domain"
	"github.com/tech0-step3/portal-web/internal/users/form"
)

// Source is the part of the business API the user pages need.
type Source interface {
	form.Updater
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
}

// Handler bundles the dependencies for the user pages.
type Handler struct {
	source Source
}

func New(source Source) *Handler {
	return &Handler{source: source}
}

// formView is what the user_detail template renders.
type formView struct {
	State     string
	Displayed domain.User
	Draft     domain.User
}

func viewOf(f *form.Form) formView {
	return formView{
		State:     f.State().String(),
		Displayed: f.Displayed(),
		Draft:     f.Draft(),
	}
}
