package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appinventory "github.com/tastehunt/backend/internal/application/inventory"
	"github.com/tastehunt/backend/internal/domain/identity"
	"github.com/tastehunt/backend/internal/interfaces/http/dto"
	"github.com/tastehunt/backend/internal/interfaces/http/middleware"
)

// AdjustQuantityRequest is the stock adjustment body
type AdjustQuantityRequest struct {
	Delta int64 `json:"delta" binding:"required"`
}

// InventoryHandler handles stock item HTTP requests
type InventoryHandler struct {
	BaseHandler
	inventoryService *appinventory.Service
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *appinventory.Service) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// RegisterRoutes registers inventory routes on the given group
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/inventory")
	{
		// Every authenticated role can read stock levels; mutation is split
		// between staff (catalog upkeep) and chef (consumption adjustments).
		items.GET("", h.List)
		items.GET("/:id", h.Get)
		items.POST("", middleware.RequireView(identity.ResourceInventory), h.Create)
		items.DELETE("/:id", middleware.RequireView(identity.ResourceInventory), h.Delete)
		items.PATCH("/:id/quantity", middleware.RequireRole("chef", "staff", "admin"), h.Adjust)
	}
}

// Create creates a new stock item
func (h *InventoryHandler) Create(c *gin.Context) {
	var input appinventory.CreateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.Create(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// List returns all stock items
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.inventoryService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Get returns a single stock item
func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	item, err := h.inventoryService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Adjust changes the stock quantity by a signed delta
func (h *InventoryHandler) Adjust(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.Adjust(c.Request.Context(), id, req.Delta)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete removes a stock item
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.inventoryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *InventoryHandler) bindID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid item ID")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return uuid.Nil, false
	}
	return id, true
}
