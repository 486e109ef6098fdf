// Package pdf renders a printable invoice sheet with Maroto v2.
//
// A5 layout:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: kind + short id     │  Persian date  │
//	│  ─────────────────────────────────────────────│
//	│  TABLE: Qty | Product | Unit price | Total    │
//	│  ─────────────────────────────────────────────│
//	│  TOTALS: amount (+ profit on sales invoices)  │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/daftar-app/daftar/internal/application/ports"
	"github.com/daftar-app/daftar/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 94, Blue: 74}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Compile-time check that the generator implements the port.
var _ ports.InvoicePDFGenerator = (*MarotoInvoiceGenerator)(nil)

// MarotoInvoiceGenerator implements ports.InvoicePDFGenerator using Maroto v2.
type MarotoInvoiceGenerator struct{}

// NewMarotoInvoiceGenerator builds the generator.
func NewMarotoInvoiceGenerator() *MarotoInvoiceGenerator { return &MarotoInvoiceGenerator{} }

// Generate renders the invoice and returns the PDF bytes.
func (g *MarotoInvoiceGenerator) Generate(in ports.InvoicePDF) ([]byte, error) {
	if in.Invoice == nil {
		return nil, fmt.Errorf("pdf: invoice is required")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(in))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range lineRows(in.Invoice.Lines) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(in)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func kindTitle(kind string) string {
	if kind == entity.InvoiceKindSales {
		return "فاکتور فروش"
	}
	return "فاکتور ورودی"
}

// headerRow: invoice kind and short id on one side, transaction date on the
// other.
func headerRow(in ports.InvoicePDF) core.Row {
	shortID := in.Invoice.ID
	if len(shortID) > 6 {
		shortID = shortID[len(shortID)-6:]
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New(kindTitle(in.Kind), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(shortID, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(in.LongDate, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(in.Invoice.Date, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 8,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("تعداد", 2, align.Center),
		h("محصول", 5, align.Right),
		h("قیمت واحد", 2, align.Right),
		h("جمع", 3, align.Right),
	)
}

func lineRows(lines []entity.InvoiceLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(2).Add(text.New(
				money(l.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(3).Add(text.New(
				money(l.TotalPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}
	return result
}

func totalsRows(in ports.InvoicePDF) []core.Row {
	rows := []core.Row{
		row.New(8).Add(
			col.New(8).Add(text.New("جمع کل", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			})),
			col.New(4).Add(text.New(money(in.Invoice.TotalAmount), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1, Color: colorPrimary,
			})),
		),
	}
	if in.Kind == entity.InvoiceKindSales {
		rows = append(rows, row.New(7).Add(
			col.New(8).Add(text.New("سود", props.Text{
				Size: 9, Align: align.Right, Top: 1, Color: colorGray,
			})),
			col.New(4).Add(text.New(money(in.Invoice.TotalProfit), props.Text{
				Size: 9, Align: align.Right, Top: 1, Color: colorGray,
			})),
		))
	}
	return rows
}

func money(d decimal.Decimal) string {
	return d.StringFixed(0)
}
