package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tastehunt/backend/internal/domain/identity"
	"github.com/tastehunt/backend/internal/domain/order"
	"github.com/tastehunt/backend/internal/domain/report"
	"github.com/tastehunt/backend/internal/domain/shared"
	"github.com/tastehunt/backend/internal/infrastructure/printing"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const restaurantTitle = "Taste Hunt Restaurant"

// RenderedDocument is a finished PDF ready to be sent or archived.
type RenderedDocument struct {
	Filename    string
	ContentType string
	Data        []byte
}

// DocumentService renders order receipts and period reports as PDFs.
type DocumentService struct {
	orders    order.Repository
	snapshots order.SnapshotSource
	renderer  printing.PDFRenderer
	clock     report.Clock
	logger    *zap.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(
	orders order.Repository,
	snapshots order.SnapshotSource,
	renderer printing.PDFRenderer,
	clock report.Clock,
	logger *zap.Logger,
) *DocumentService {
	return &DocumentService{
		orders:    orders,
		snapshots: snapshots,
		renderer:  renderer,
		clock:     clock,
		logger:    logger,
	}
}

// RenderReceipt renders the receipt PDF for a single order. An order whose
// item payload cannot be parsed yields no receipt at all.
func (s *DocumentService) RenderReceipt(ctx context.Context, orderID uuid.UUID) (*RenderedDocument, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if o == nil {
		return nil, shared.ErrNotFound
	}

	items, err := o.ParseItems()
	if err != nil {
		s.logger.Warn("Receipt items unreadable",
			zap.String("order_id", o.ID.String()),
			zap.Error(err),
		)
		return nil, shared.ErrMalformedItems
	}

	doc := printing.NewDocument(restaurantTitle, printing.PaperSizeReceipt80)
	doc.AddHeading("Order Receipt").
		AddLine(fmt.Sprintf("Order ID: %s", o.ID)).
		AddLine(fmt.Sprintf("Date: %s", o.CreatedAt.Format("2006-01-02 15:04"))).
		AddLine(fmt.Sprintf("Customer: %s", o.CustomerName)).
		AddDivider()

	for i, item := range items {
		doc.AddLine(receiptLine(i+1, item))
	}

	doc.AddDivider().
		AddLine(fmt.Sprintf("Payment Status: %s", o.PaymentStatus)).
		AddTotal(fmt.Sprintf("Total: %s", money(o.TotalPrice)))

	data, err := doc.Finalize(ctx, s.renderer)
	if err != nil {
		return nil, err
	}

	return &RenderedDocument{
		Filename:    fmt.Sprintf("order-receipt-%s.pdf", o.ID),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

// RenderPeriodReport renders the order report for a named range. Chefs only
// see their own assigned orders; the revenue total is included for cashiers
// only. An empty result set is an error, not an empty PDF.
func (s *DocumentService) RenderPeriodReport(ctx context.Context, rangeToken string, caller identity.Caller) (*RenderedDocument, error) {
	now := s.clock.Now()
	start, err := report.ReportRangeStart(now, rangeToken)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("order-report-%s.pdf", rangeToken)
	return s.renderRange(ctx, start, now, rangeToken, caller, filename)
}

// RenderDailyReport renders the order report covering one full calendar day.
// Used by the nightly archiver, which runs after the day has closed.
func (s *DocumentService) RenderDailyReport(ctx context.Context, day time.Time, caller identity.Caller) (*RenderedDocument, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)

	filename := fmt.Sprintf("order-report-%s.pdf", start.Format("2006-01-02"))
	return s.renderRange(ctx, start, end, start.Format("2006-01-02"), caller, filename)
}

func (s *DocumentService) renderRange(ctx context.Context, start, end time.Time, rangeLabel string, caller identity.Caller, filename string) (*RenderedDocument, error) {
	var chefID *uuid.UUID
	if caller.Role == identity.RoleChef {
		id := caller.ID
		chefID = &id
	}

	orders, err := s.snapshots.FetchRange(ctx, start, end, chefID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, shared.ErrNotFound
	}

	doc := printing.NewDocument(restaurantTitle, printing.PaperSizeA4)
	doc.AddHeading(fmt.Sprintf("Order Report (%s)", rangeLabel)).
		AddLine(fmt.Sprintf("From: %s", start.Format("2006-01-02"))).
		AddLine(fmt.Sprintf("To: %s", end.Format("2006-01-02"))).
		AddLine(fmt.Sprintf("Orders: %d", len(orders))).
		AddDivider()

	revenue := decimal.Zero
	for i, o := range orders {
		doc.AddLine(fmt.Sprintf("%d. Order %s - %s - Customer: %s - Payment Status: %s - Total: %s",
			i+1, o.ID, o.CreatedAt.Format("2006-01-02 15:04"), o.CustomerName, o.PaymentStatus, money(o.TotalPrice)))
		revenue = revenue.Add(o.TotalPrice)
	}

	if caller.Role == identity.RoleCashier {
		doc.AddDivider().
			AddTotal(fmt.Sprintf("Total Revenue: %s", money(revenue)))
	}

	data, err := doc.Finalize(ctx, s.renderer)
	if err != nil {
		return nil, err
	}

	return &RenderedDocument{
		Filename:    filename,
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

// receiptLine formats one receipt item line. The spacing around the price
// comma is part of the established receipt layout.
func receiptLine(position int, item order.Item) string {
	return fmt.Sprintf("%d. %s - Quantity: %d, Price: %s , Total: %s",
		position, item.Name, item.Quantity, money(item.Price), money(item.Subtotal()))
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
