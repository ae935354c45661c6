package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vlourenco/solarapi/internal/services"
	"github.com/vlourenco/solarapi/pkg/response"
	"gorm.io/gorm"
)

type InstallationTypeHandler struct {
	installTypeService *services.InstallationTypeService
}

func NewInstallationTypeHandler(db *gorm.DB) *InstallationTypeHandler {
	return &InstallationTypeHandler{
		installTypeService: services.NewInstallationTypeService(db),
	}
}

// List returns paginated installation types.
// GET /install_type
func (h *InstallationTypeHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	types, total, err := h.installTypeService.List(page)
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(types) == 0 {
		response.NoContent(c)
		return
	}

	response.Paginated(c, response.NewPage(types, c.Request.URL.Path, page, services.DefaultPageSize, total))
}

// GetByID returns an installation type.
// GET /install_type/:id
func (h *InstallationTypeHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c)
		return
	}

	installType, err := h.installTypeService.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, installType)
}

// Create adds an installation type.
// POST /install_type
func (h *InstallationTypeHandler) Create(c *gin.Context) {
	var req services.ItemRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.installTypeService.Create(&req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "New installation type created!")
}

// Update renames an installation type.
// PUT /install_type/:id
func (h *InstallationTypeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c)
		return
	}

	var req services.ItemRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.installTypeService.Update(uint(id), &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Installation type updated!")
}

// Delete removes an installation type. Storage-level FK cascade hard-deletes
// dependent projects; see InstallationTypeService.Delete.
// DELETE /install_type/:id
func (h *InstallationTypeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c)
		return
	}

	if err := h.installTypeService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Installation type deleted!")
}
