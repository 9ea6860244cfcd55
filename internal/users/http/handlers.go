package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/tech0-step3/portal-web/internal/backend"
	"github.com/tech0-step3/portal-web/internal/logging"
	"github.com/tech0-step3/portal-web/internal/users/domain"
	"github.com/tech0-step3/portal-web/internal/users/form"
	"github.com/tech0-step3/portal-web/internal/web"
)

const (
	currentPath      = "/users"
	listFailedNotice = "登録者一覧を取得できませんでした。時間をおいて再度お試しください。"
	saveFailedNotice = "保存に失敗しました。時間をおいて再度お試しください。"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.source.ListUsers(c.Request.Context())

	page := web.Page{Title: "登録者一覧", CurrentPath: currentPath, Data: items}
	if err != nil {
		logging.FromContext(c.Request.Context()).Error("user list unavailable, rendering empty list", "error", err)
		page.Data = []domain.User{}
		page.Notice = listFailedNotice
	}

	web.Render(c, http.StatusOK, "users_list", page)
}

// detail shows a user; ?mode=edit opens the form seeded from the fetched record.
func (h *Handler) detail(c *gin.Context) {
	id := c.Param("id")

	u, err := h.source.GetUser(c.Request.Context(), id)
	if err != nil {
		logger := logging.FromContext(c.Request.Context())
		if errors.Is(err, backend.ErrNotFound) {
			logger.Info("user not found", "user_id", id)
		} else {
			logger.Error("user lookup failed, rendering not found", "user_id", id, "error", err)
		}
		web.NotFound(c, currentPath)
		return
	}

	f := form.New(u)
	if c.Query("mode") == "edit" {
		_ = f.Edit()
	}
	h.render(c, f, "")
}

// submit drives the edit form. The committed record travels with the page
// in hidden fields, so edit and cancel never touch the backend and save only
// issues the update.
func (h *Handler) submit(c *gin.Context) {
	committed := domain.User{
		ID:         c.Param("id"),
		Name:       c.PostForm("committed_name"),
		Email:      c.PostForm("committed_email"),
		Prefecture: c.PostForm("committed_prefecture"),
	}
	f := form.New(committed)

	switch c.PostForm("action") {
	case "edit":
		_ = f.Edit()
		h.render(c, f, "")

	case "cancel":
		_ = f.Edit()
		_ = f.Cancel()
		h.render(c, f, "")

	case "save":
		_ = f.Edit()
		for _, field := range form.Fields {
			_ = f.Set(field, c.PostForm(string(field)))
		}
		if err := f.Save(c.Request.Context(), h.source); err != nil {
			logging.FromContext(c.Request.Context()).Warn("user save failed, keeping edits",
				"user_id", committed.ID, "state", f.State().String(), "error", err)
			h.render(c, f, saveFailedNotice)
			return
		}
		h.render(c, f, "")

	default:
		c.Redirect(http.StatusSeeOther, "/users/"+url.PathEscape(committed.ID))
	}
}

func (h *Handler) render(c *gin.Context, f *form.Form, notice string) {
	web.Render(c, http.StatusOK, "user_detail", web.Page{
		Title:       f.Displayed().Name,
		CurrentPath: currentPath,
		Notice:      notice,
		Data:        viewOf(f),
	})
}
