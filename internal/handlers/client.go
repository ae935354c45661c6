package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vlourenco/solarapi/internal/services"
	"github.com/vlourenco/solarapi/pkg/response"
	"gorm.io/gorm"
)

type ClientHandler struct {
	clientService *services.ClientService
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{
		clientService: services.NewClientService(db),
	}
}

// List returns paginated clients.
// GET /client
func (h *ClientHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	clients, total, err := h.clientService.List(page)
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(clients) == 0 {
		response.NoContent(c)
		return
	}

	response.Paginated(c, response.NewPage(clients, c.Request.URL.Path, page, services.DefaultPageSize, total))
}

// GetByID returns a client.
// GET /client/:id
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c)
		return
	}

	client, err := h.clientService.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, client)
}

// Create creates a client.
// POST /client
func (h *ClientHandler) Create(c *gin.Context) {
	var req services.ClientRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.clientService.Create(&req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "New client created!")
}

// Update replaces all client fields.
// PUT /client/:id
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c)
		return
	}

	var req services.ClientRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.clientService.Update(uint(id), &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Client updated!")
}

// Delete soft-deletes the client's projects, then removes the client.
// DELETE /client/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c)
		return
	}

	if err := h.clientService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Client deleted!")
}
