package ports

import "github.com/daftar-app/daftar/internal/domain/entity"

// InvoicePDF describes the data the PDF renderer needs beyond the invoice
// itself: the kind (input/sales) and the long-form Persian date, which only
// the calendar layer can produce.
type InvoicePDF struct {
	Kind     string
	Invoice  *entity.Invoice
	LongDate string
}

// InvoicePDFGenerator renders a printable representation of one invoice.
type InvoicePDFGenerator interface {
	Generate(in InvoicePDF) ([]byte, error)
}
