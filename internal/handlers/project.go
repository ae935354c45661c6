package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vlourenco/solarapi/internal/services"
	"github.com/vlourenco/solarapi/pkg/response"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{
		projectService: services.NewProjectService(db),
	}
}

// List returns filtered, paginated projects.
// GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	var req services.ProjectListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.Page < 1 {
		req.Page = 1
	}

	projects, total, err := h.projectService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(projects) == 0 {
		response.NoContent(c)
		return
	}

	page := response.NewPage(projects, c.Request.URL.Path, req.Page, services.ProjectPageSize, total)
	response.Paginated(c, page)
}

// GetByID returns a project with its client and equipment.
// GET /projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c)
		return
	}

	project, err := h.projectService.Show(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, project)
}

// Create creates a project and its equipment association.
// POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req services.ProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.projectService.Create(&req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "New project created!")
}

// Update replaces all project fields and its full equipment set.
// PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c)
		return
	}

	var req services.ProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.projectService.Update(uint(id), &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Project updated!")
}

// Delete soft-deletes a project.
// DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c)
		return
	}

	if err := h.projectService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Project deleted!")
}
