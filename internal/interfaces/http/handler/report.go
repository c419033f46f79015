package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appreport "github.com/tastehunt/backend/internal/application/report"
	"github.com/tastehunt/backend/internal/domain/identity"
	"github.com/tastehunt/backend/internal/interfaces/http/dto"
	"github.com/tastehunt/backend/internal/interfaces/http/middleware"
)

// ReportHandler handles analytics and report document HTTP requests
type ReportHandler struct {
	BaseHandler
	dashboards *appreport.DashboardService
	documents  *appreport.DocumentService
}

// NewReportHandler creates a new report handler
func NewReportHandler(dashboards *appreport.DashboardService, documents *appreport.DocumentService) *ReportHandler {
	return &ReportHandler{
		dashboards: dashboards,
		documents:  documents,
	}
}

// RegisterRoutes registers report routes on the given group
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", middleware.RequireView(identity.ResourceDashboardStats), h.DashboardStats)
		reports.GET("/quantity-by-time", middleware.RequireView(identity.ResourceQuantityByTime), h.QuantityByTime)
		reports.GET("/top-items", middleware.RequireView(identity.ResourceTopItems), h.TopItems)
		reports.GET("/summary", middleware.RequireView(identity.ResourceOrderSummary), h.Summary)
		reports.GET("/orders/:range", middleware.RequireView(identity.ResourcePeriodReport), h.PeriodReport)
	}

	orders := rg.Group("/orders")
	{
		orders.GET("/:id/receipt", middleware.RequireView(identity.ResourceReceipt), h.Receipt)
	}
}

// DashboardStats returns per-granularity series with summary stats
func (h *ReportHandler) DashboardStats(c *gin.Context) {
	stats, err := h.dashboards.DashboardStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// QuantityByTime returns per-granularity order counts
func (h *ReportHandler) QuantityByTime(c *gin.Context) {
	counts, err := h.dashboards.QuantityByTime(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, counts)
}

// TopItems returns the best selling items per granularity
func (h *ReportHandler) TopItems(c *gin.Context) {
	items, err := h.dashboards.TopItemsByTime(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Summary returns all-time order totals
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.dashboards.Summary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// Receipt renders a printable receipt PDF for a single order
func (h *ReportHandler) Receipt(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}
	orderID, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	doc, err := h.documents.RenderReceipt(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.sendDocument(c, doc)
}

// PeriodReport renders an order report PDF for a named range.
// Chefs receive a report restricted to their own orders.
func (h *ReportHandler) PeriodReport(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	doc, err := h.documents.RenderPeriodReport(c.Request.Context(), c.Param("range"), caller)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.sendDocument(c, doc)
}

// sendDocument writes a rendered document as a file download
func (h *ReportHandler) sendDocument(c *gin.Context, doc *appreport.RenderedDocument) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(200, doc.ContentType, doc.Data)
}
