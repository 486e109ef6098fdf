package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daftar-app/daftar/internal/application/dto"
	"github.com/daftar-app/daftar/internal/application/ports"
	"github.com/daftar-app/daftar/internal/domain"
	"github.com/daftar-app/daftar/internal/domain/calendar"
	"github.com/daftar-app/daftar/internal/domain/entity"
	"github.com/daftar-app/daftar/internal/domain/inventory"
	"github.com/daftar-app/daftar/internal/domain/repository"
)

// InvoiceUseCase covers both invoice collections. Sales invoices are gated by
// a stock sufficiency check derived from the full invoice log; input invoices
// are not.
type InvoiceUseCase struct {
	store repository.Ledger
	pdf   ports.InvoicePDFGenerator
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(store repository.Ledger, pdf ports.InvoicePDFGenerator) *InvoiceUseCase {
	return &InvoiceUseCase{store: store, pdf: pdf}
}

// Create records a new invoice of the given kind. The whole invoice is
// accepted or rejected as a unit: an invalid date, a bad line or (for sales)
// insufficient stock leaves the ledger untouched, including any products the
// invoice would have created inline.
func (uc *InvoiceUseCase) Create(kind string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if kind != entity.InvoiceKindInput && kind != entity.InvoiceKindSales {
		return nil, domain.ErrInvalidInput
	}
	if !calendar.Validate(in.Date) {
		return nil, domain.ErrInvalidDate
	}
	lines, pending, err := uc.buildLines(kind, in.Lines)
	if err != nil {
		return nil, err
	}

	if kind == entity.InvoiceKindSales {
		if err := uc.checkStock(lines, ""); err != nil {
			return nil, err
		}
	}
	if err := uc.commitPending(pending); err != nil {
		return nil, err
	}

	invoice := &entity.Invoice{
		ID:        uuid.New().String(),
		Date:      in.Date,
		Lines:     lines,
		CreatedAt: time.Now(),
	}
	sumTotals(invoice)
	if err := uc.store.CreateInvoice(kind, invoice); err != nil {
		return nil, err
	}
	resp := dto.NewInvoiceResponse(kind, invoice)
	return &resp, nil
}

// GetByID fetches one invoice regardless of kind. Unknown ids return
// (nil, nil).
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	kind, invoice, err := uc.findInvoice(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	resp := dto.NewInvoiceResponse(kind, invoice)
	return &resp, nil
}

// Update replaces the date and lines of an existing invoice. For a sales
// invoice the sufficiency check counts stock as if the invoice being edited
// did not exist, so shrinking or repricing its own lines always passes.
func (uc *InvoiceUseCase) Update(id string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	kind, invoice, err := uc.findInvoice(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	if !calendar.Validate(in.Date) {
		return nil, domain.ErrInvalidDate
	}
	lines, pending, err := uc.buildLines(kind, in.Lines)
	if err != nil {
		return nil, err
	}

	if kind == entity.InvoiceKindSales {
		if err := uc.checkStock(lines, id); err != nil {
			return nil, err
		}
	}
	if err := uc.commitPending(pending); err != nil {
		return nil, err
	}

	now := time.Now()
	invoice.Date = in.Date
	invoice.Lines = lines
	invoice.UpdatedAt = &now
	sumTotals(invoice)
	if err := uc.store.UpdateInvoice(kind, invoice); err != nil {
		return nil, err
	}
	resp := dto.NewInvoiceResponse(kind, invoice)
	return &resp, nil
}

// Delete removes an invoice. Deleting an input invoice can drive derived
// stock negative; the report shows the inconsistency instead of hiding it.
func (uc *InvoiceUseCase) Delete(id string) error {
	return uc.store.DeleteInvoice(id)
}

// List returns all invoices of one kind, most recent first.
func (uc *InvoiceUseCase) List(kind string) (*dto.InvoiceListResponse, error) {
	if kind != entity.InvoiceKindInput && kind != entity.InvoiceKindSales {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.store.ListInvoices(kind)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for i := range list {
		items = append(items, dto.NewInvoiceResponse(kind, &list[i]))
	}
	return &dto.InvoiceListResponse{Kind: kind, Items: items}, nil
}

// RenderPDF produces the printable sheet for one invoice. Unknown ids return
// (nil, nil).
func (uc *InvoiceUseCase) RenderPDF(id string) ([]byte, error) {
	kind, invoice, err := uc.findInvoice(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	longDate := invoice.Date
	if y, m, d, ok := calendar.Parse(invoice.Date); ok {
		if g, err := calendar.ToGregorian(y, m, d); err == nil {
			if jd, err := calendar.ToJalali(g.Year, g.Month, g.Day); err == nil {
				longDate = calendar.FormatLong(jd)
			}
		}
	}
	return uc.pdf.Generate(ports.InvoicePDF{Kind: kind, Invoice: invoice, LongDate: longDate})
}

// findInvoice looks up an invoice by id, mapping the store's not-found error
// to the (nil, nil) convention used across the use cases.
func (uc *InvoiceUseCase) findInvoice(id string) (string, *entity.Invoice, error) {
	kind, invoice, err := uc.store.GetInvoiceByID(id)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, err
	}
	return kind, invoice, nil
}

// buildLines validates request lines and resolves each one to a product.
// Products named inline are returned unpersisted in pending; nothing is
// written until every line has validated. Money fields are derived here so
// stored invoices are always internally consistent.
func (uc *InvoiceUseCase) buildLines(kind string, in []dto.InvoiceLineRequest) (lines []entity.InvoiceLine, pending []*entity.Product, err error) {
	if len(in) == 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	lines = make([]entity.InvoiceLine, 0, len(in))
	for _, req := range in {
		if req.Quantity <= 0 || req.UnitPrice.IsNegative() {
			return nil, nil, domain.ErrInvalidInput
		}
		product, created, err := uc.resolveProduct(kind, req)
		if err != nil {
			return nil, nil, err
		}
		if created {
			pending = append(pending, product)
		}
		line := entity.InvoiceLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    req.Quantity,
			UnitPrice:   req.UnitPrice,
			Description: strings.TrimSpace(req.Description),
		}
		if kind == entity.InvoiceKindSales {
			inventory.LineTotals(&line, product.PurchasePrice)
		} else {
			line.TotalPrice = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		}
		lines = append(lines, line)
	}
	return lines, pending, nil
}

// resolveProduct returns the referenced product. An input line may instead
// name a new product, which is returned unpersisted (created=true) so the
// caller commits it only once the whole invoice is accepted. Sales lines must
// reference the catalog: a product created inline has no stock, so a sale
// from it could never pass the sufficiency check anyway. The unit price of an
// input line doubles as the initial purchase price of the created product.
func (uc *InvoiceUseCase) resolveProduct(kind string, req dto.InvoiceLineRequest) (product *entity.Product, created bool, err error) {
	name := strings.TrimSpace(req.NewProductName)
	switch {
	case req.ProductID != "" && name != "":
		return nil, false, domain.ErrInvalidInput
	case req.ProductID != "":
		product, err := uc.store.GetProductByID(req.ProductID)
		if err != nil {
			return nil, false, err
		}
		if product == nil {
			return nil, false, domain.ErrNotFound
		}
		return product, false, nil
	case name != "":
		if kind != entity.InvoiceKindInput {
			return nil, false, fmt.Errorf("sales lines cannot create products: %w", domain.ErrInvalidInput)
		}
		return &entity.Product{
			ID:            uuid.New().String(),
			Name:          name,
			PurchasePrice: req.UnitPrice,
			CreatedAt:     time.Now(),
		}, true, nil
	default:
		return nil, false, domain.ErrInvalidInput
	}
}

// commitPending persists products named inline, after the invoice has passed
// every check.
func (uc *InvoiceUseCase) commitPending(pending []*entity.Product) error {
	for _, product := range pending {
		if err := uc.store.CreateProduct(product); err != nil {
			return err
		}
	}
	return nil
}

// checkStock derives current inventory and verifies the requested lines fit.
// excludeInvoiceID backs out the lines of the invoice being edited before the
// check, so an update competes only against the rest of the log.
func (uc *InvoiceUseCase) checkStock(lines []entity.InvoiceLine, excludeInvoiceID string) error {
	doc, err := uc.store.Snapshot()
	if err != nil {
		return err
	}
	inv := inventory.Compute(doc.Products, doc.InputInvoices, doc.SalesInvoices)
	if excludeInvoiceID != "" {
		for _, sales := range doc.SalesInvoices {
			if sales.ID != excludeInvoiceID {
				continue
			}
			for _, line := range sales.Lines {
				if e, ok := inv[line.ProductID]; ok {
					e.TotalOutput -= line.Quantity
					e.CurrentStock += line.Quantity
				}
			}
		}
	}
	return inventory.CheckSufficiency(inv, lines)
}

func sumTotals(invoice *entity.Invoice) {
	total := decimal.Zero
	profit := decimal.Zero
	for _, line := range invoice.Lines {
		total = total.Add(line.TotalPrice)
		profit = profit.Add(line.Profit)
	}
	invoice.TotalAmount = total
	invoice.TotalProfit = profit
}
