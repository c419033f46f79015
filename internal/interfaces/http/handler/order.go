package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apporder "github.com/tastehunt/backend/internal/application/order"
	"github.com/tastehunt/backend/internal/domain/order"
	"github.com/tastehunt/backend/internal/interfaces/http/dto"
	"github.com/tastehunt/backend/internal/interfaces/http/middleware"
)

// UpdateStatusRequest is the order status update body
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending preparing completed"`
}

// UpdatePaymentStatusRequest is the payment status update body
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required,oneof=unpaid paid"`
}

// OrderHandler handles order lifecycle HTTP requests
type OrderHandler struct {
	BaseHandler
	orderService *apporder.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *apporder.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// RegisterRoutes registers order routes on the given group
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("", middleware.RequireRole("staff", "cashier", "admin"), h.Create)
		orders.GET("", h.List)
		orders.GET("/:id", h.Get)
		orders.PATCH("/:id/status", h.UpdateStatus)
		orders.PATCH("/:id/payment", middleware.RequireRole("cashier", "admin"), h.UpdatePayment)
	}
}

// Create creates a new order
func (h *OrderHandler) Create(c *gin.Context) {
	var input apporder.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	caller, ok := middleware.GetCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	created, err := h.orderService.Create(c.Request.Context(), input, caller.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, created)
}

// List returns orders visible to the caller. Chefs only see orders
// assigned to them.
func (h *OrderHandler) List(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orders, err := h.orderService.List(c.Request.Context(), caller)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// Get returns a single order by ID
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	found, err := h.orderService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, found)
}

// UpdateStatus advances the preparation status of an order
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	caller, ok := middleware.GetCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	updated, err := h.orderService.UpdateStatus(c.Request.Context(), id, order.Status(req.Status), caller)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, updated)
}

// UpdatePayment updates the payment status of an order
func (h *OrderHandler) UpdatePayment(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.orderService.UpdatePaymentStatus(c.Request.Context(), id, order.PaymentStatus(req.PaymentStatus))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, updated)
}

// bindID binds and parses the :id path parameter
func (h *OrderHandler) bindID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid order ID")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return uuid.Nil, false
	}
	return id, true
}
