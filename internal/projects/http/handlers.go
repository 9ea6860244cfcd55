package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tech0-step3/portal-web/internal/backend"
	"github.com/tech0-step3/portal-web/internal/logging"
	"github.com/tech0-step3/portal-web/internal/projects/domain"
	"github.com/tech0-step3/portal-web/internal/web"
)

const (
	currentPath      = "/projects"
	listFailedNotice = "案件一覧を取得できませんでした。時間をおいて再度お試しください。"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.source.ListProjects(c.Request.Context())

	logger := logging.FromContext(c.Request.Context())
	page := web.Page{Title: "案件一覧", CurrentPath: currentPath, Data: items}
	if err != nil {
		logger.Error("project list unavailable, rendering empty list", "error", err)
		page.Data = []domain.Project{}
		page.Notice = listFailedNotice
	}
	for _, p := range items {
		if !p.Status.Known() {
			logger.Warn("project has unknown status", "project_id", p.ID, "status", string(p.Status))
		}
	}

	web.Render(c, http.StatusOK, "projects_list", page)
}

func (h *Handler) detail(c *gin.Context) {
	id := c.Param("id")

	p, err := h.source.GetProject(c.Request.Context(), id)
	if err != nil {
		logger := logging.FromContext(c.Request.Context())
		if errors.Is(err, backend.ErrNotFound) {
			logger.Info("project not found", "project_id", id)
		} else {
			logger.Error("project lookup failed, rendering not found", "project_id", id, "error", err)
		}
		web.NotFound(c, currentPath)
		return
	}

	web.Render(c, http.StatusOK, "project_detail", web.Page{Title: p.Name, CurrentPath: currentPath, Data: p})
}
