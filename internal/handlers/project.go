package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetProjects: GET /projects?project_id=N: один проект или, без параметра, всё портфолио.
func (h *Handler) GetProjects(c *gin.Context) {
	idStr, ok := c.GetQuery("project_id")
	if !ok || idStr == "" {
		projects, err := h.portfolio.List(c.Request.Context())
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, projects)
		return
	}

	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid project_id: " + idStr})
		return
	}

	project, err := h.portfolio.Get(c.Request.Context(), uint(id))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}
