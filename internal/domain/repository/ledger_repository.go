package repository

import (
	"github.com/daftar-app/daftar/internal/domain/entity"
)

// ProductRepository is the persistence port for Product. GetProductByID
// returns (nil, nil) for an unknown id; callers check before use instead of
// handling a panic. There is no delete: products referenced from invoice
// history are never removed.
type ProductRepository interface {
	CreateProduct(product *entity.Product) error
	GetProductByID(id string) (*entity.Product, error)
	UpdateProduct(product *entity.Product) error
	ListProducts() ([]entity.Product, error)
}

// InvoiceRepository is the persistence port for both invoice collections.
// kind is entity.InvoiceKindInput or entity.InvoiceKindSales. Lists are
// returned most-recent-created-first.
type InvoiceRepository interface {
	CreateInvoice(kind string, invoice *entity.Invoice) error
	GetInvoiceByID(id string) (kind string, invoice *entity.Invoice, err error)
	UpdateInvoice(kind string, invoice *entity.Invoice) error
	DeleteInvoice(id string) error
	ListInvoices(kind string) ([]entity.Invoice, error)
}

// SettingsRepository reads and writes the user preferences stored inside the
// ledger document.
type SettingsRepository interface {
	GetSettings() (entity.Settings, error)
	UpdateSettings(s entity.Settings) error
}

// SnapshotRepository exposes the whole-document contract used by export,
// import and remote sync. Serialize produces a complete, self-consistent
// snapshot; Deserialize replaces the entire state atomically or rejects the
// payload in full (domain.ErrInvalidSnapshot) leaving prior state untouched.
type SnapshotRepository interface {
	Serialize() ([]byte, error)
	Deserialize(data []byte) error
	// Snapshot returns a deep copy of the current document for read-only
	// derivations (the inventory engine folds over it).
	Snapshot() (*entity.Document, error)
	// Subscribe registers a change-notification hook invoked after every
	// successful mutation, so an attached UI can re-render. Hooks run outside
	// the store's internal locking and may read back from the store.
	Subscribe(fn func())
}

// Ledger is the full store contract, the union of the ports above. The
// jsonfile store implements it; use cases depend only on the slice they need.
type Ledger interface {
	ProductRepository
	InvoiceRepository
	SettingsRepository
	SnapshotRepository
}
