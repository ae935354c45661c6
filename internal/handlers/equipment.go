package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vlourenco/solarapi/internal/services"
	"github.com/vlourenco/solarapi/pkg/response"
	"gorm.io/gorm"
)

type EquipmentHandler struct {
	equipmentService *services.EquipmentService
}

func NewEquipmentHandler(db *gorm.DB) *EquipmentHandler {
	return &EquipmentHandler{
		equipmentService: services.NewEquipmentService(db),
	}
}

// List returns paginated catalog equipment.
// GET /equipment
func (h *EquipmentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	equipment, total, err := h.equipmentService.List(page)
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(equipment) == 0 {
		response.NoContent(c)
		return
	}

	response.Paginated(c, response.NewPage(equipment, c.Request.URL.Path, page, services.DefaultPageSize, total))
}

// GetByID returns a catalog item.
// GET /equipment/:id
func (h *EquipmentHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c)
		return
	}

	equipment, err := h.equipmentService.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, equipment)
}

// Create adds a catalog item.
// POST /equipment
func (h *EquipmentHandler) Create(c *gin.Context) {
	var req services.ItemRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.equipmentService.Create(&req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "New equipment created!")
}

// Update renames a catalog item.
// PUT /equipment/:id
func (h *EquipmentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c)
		return
	}

	var req services.ItemRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.equipmentService.Update(uint(id), &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Equipment updated!")
}

// Delete removes a catalog item.
// DELETE /equipment/:id
func (h *EquipmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c)
		return
	}

	if err := h.equipmentService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Equipment deleted!")
}
