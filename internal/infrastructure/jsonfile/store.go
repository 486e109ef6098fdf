// Package jsonfile implements the ledger persistence ports on top of a
// single pretty-printed JSON document. The whole document is the unit of
// persistence: every mutation rewrites the file in full, and import/sync
// replace the in-memory state atomically or not at all.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/daftar-app/daftar/internal/domain"
	"github.com/daftar-app/daftar/internal/domain/entity"
	"github.com/daftar-app/daftar/internal/domain/repository"
)

// Compile-time checks that Store satisfies the ledger ports.
var (
	_ repository.ProductRepository  = (*Store)(nil)
	_ repository.InvoiceRepository  = (*Store)(nil)
	_ repository.SettingsRepository = (*Store)(nil)
	_ repository.SnapshotRepository = (*Store)(nil)
)

// Store holds the authoritative ledger document in memory and mirrors it to
// a JSON file after every mutation. All access goes through one mutex; the
// ledger is single-user and operations run to completion before returning.
type Store struct {
	mu          sync.Mutex
	path        string
	doc         *entity.Document
	subscribers []func()
	collator    *collate.Collator
}

// New opens the store at path, loading an existing document or starting an
// empty ledger if the file does not exist yet.
func New(path string) (*Store, error) {
	s := &Store{
		path:     path,
		doc:      entity.NewDocument(),
		collator: collate.New(language.Persian),
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		doc, err := decodeDocument(data)
		if err != nil {
			return nil, fmt.Errorf("jsonfile: load %s: %w", path, err)
		}
		s.doc = doc
	case os.IsNotExist(err):
		// First run: the file is created on the first mutation.
	default:
		return nil, fmt.Errorf("jsonfile: read %s: %w", path, err)
	}

	return s, nil
}

// ── Products ──────────────────────────────────────────────────────────────────

// CreateProduct appends a product and persists the document.
func (s *Store) CreateProduct(product *entity.Product) error {
	return s.mutate(func() error {
		s.doc.Products = append(s.doc.Products, *product)
		return nil
	})
}

// GetProductByID returns (nil, nil) when the id is unknown.
func (s *Store) GetProductByID(id string) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Products {
		if s.doc.Products[i].ID == id {
			p := s.doc.Products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// UpdateProduct replaces the stored product with the same id.
func (s *Store) UpdateProduct(product *entity.Product) error {
	return s.mutate(func() error {
		for i := range s.doc.Products {
			if s.doc.Products[i].ID == product.ID {
				s.doc.Products[i] = *product
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// ListProducts returns all products ordered by name using Persian collation,
// the locale-aware ordering a Persian-speaking user expects.
func (s *Store) ListProducts() ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Product, len(s.doc.Products))
	copy(out, s.doc.Products)
	sort.SliceStable(out, func(i, j int) bool {
		return s.collator.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out, nil
}

// ── Invoices ──────────────────────────────────────────────────────────────────

func (s *Store) collection(kind string) (*[]entity.Invoice, error) {
	switch kind {
	case entity.InvoiceKindInput:
		return &s.doc.InputInvoices, nil
	case entity.InvoiceKindSales:
		return &s.doc.SalesInvoices, nil
	default:
		return nil, fmt.Errorf("jsonfile: unknown invoice kind %q: %w", kind, domain.ErrInvalidInput)
	}
}

// CreateInvoice appends an invoice to the collection of the given kind.
func (s *Store) CreateInvoice(kind string, invoice *entity.Invoice) error {
	return s.mutate(func() error {
		col, err := s.collection(kind)
		if err != nil {
			return err
		}
		*col = append(*col, cloneInvoice(invoice))
		return nil
	})
}

// GetInvoiceByID searches both collections and reports which one held the id.
func (s *Store) GetInvoiceByID(id string) (string, *entity.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, kind := range []string{entity.InvoiceKindInput, entity.InvoiceKindSales} {
		col, _ := s.collection(kind)
		for i := range *col {
			if (*col)[i].ID == id {
				inv := cloneInvoice(&(*col)[i])
				return kind, &inv, nil
			}
		}
	}
	return "", nil, domain.ErrNotFound
}

// UpdateInvoice replaces the stored invoice with the same id.
func (s *Store) UpdateInvoice(kind string, invoice *entity.Invoice) error {
	return s.mutate(func() error {
		col, err := s.collection(kind)
		if err != nil {
			return err
		}
		for i := range *col {
			if (*col)[i].ID == invoice.ID {
				(*col)[i] = cloneInvoice(invoice)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// DeleteInvoice removes the invoice from whichever collection holds it.
func (s *Store) DeleteInvoice(id string) error {
	return s.mutate(func() error {
		for _, kind := range []string{entity.InvoiceKindInput, entity.InvoiceKindSales} {
			col, _ := s.collection(kind)
			for i := range *col {
				if (*col)[i].ID == id {
					*col = append((*col)[:i], (*col)[i+1:]...)
					return nil
				}
			}
		}
		return domain.ErrNotFound
	})
}

// ListInvoices returns the collection most-recent-created-first.
func (s *Store) ListInvoices(kind string) ([]entity.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.collection(kind)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Invoice, 0, len(*col))
	for i := range *col {
		out = append(out, cloneInvoice(&(*col)[i]))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// ── Settings ──────────────────────────────────────────────────────────────────

func (s *Store) GetSettings() (entity.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Settings, nil
}

func (s *Store) UpdateSettings(settings entity.Settings) error {
	return s.mutate(func() error {
		s.doc.Settings = settings
		return nil
	})
}

// ── Whole-document snapshot ───────────────────────────────────────────────────

// Serialize returns the complete current state as pretty-printed JSON. The
// output is byte-for-byte what export and remote sync transmit.
func (s *Store) Serialize() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.MarshalIndent(s.doc, "", "  ")
}

// Deserialize validates and adopts a whole-document snapshot. A payload
// missing any of the three collections is rejected in full and the prior
// state is retained; there is no partial adoption.
func (s *Store) Deserialize(data []byte) error {
	doc, err := decodeDocument(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	prev := s.doc
	s.doc = doc
	err = s.commit()
	if err != nil {
		s.doc = prev
	}
	subs := s.subscriberSnapshotLocked()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	for _, fn := range subs {
		fn()
	}
	return nil
}

// Snapshot returns a deep copy of the document for read-only derivations.
func (s *Store) Snapshot() (*entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(s.doc)
	if err != nil {
		return nil, err
	}
	var copied entity.Document
	if err := json.Unmarshal(data, &copied); err != nil {
		return nil, err
	}
	normalize(&copied)
	return &copied, nil
}

// Subscribe registers a hook run after every successful mutation. Hooks fire
// outside the store lock, so a subscriber may call back into the store.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// ── Internals ─────────────────────────────────────────────────────────────────

// mutate applies fn to the document and persists it, all under the lock, then
// fires change notifications after the lock is released.
func (s *Store) mutate(fn func() error) error {
	s.mu.Lock()
	err := fn()
	if err == nil {
		err = s.commit()
	}
	subs := s.subscriberSnapshotLocked()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	for _, cb := range subs {
		cb()
	}
	return nil
}

func (s *Store) subscriberSnapshotLocked() []func() {
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	return subs
}

// commit persists the document. Callers hold the mutex. The write is atomic:
// a temp file in the same directory is renamed over the target, so a crash
// never leaves a half-written ledger.
func (s *Store) commit() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".daftar-*.json")
	if err != nil {
		return fmt.Errorf("jsonfile: temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("jsonfile: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("jsonfile: close: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("jsonfile: rename: %w", err)
	}
	return nil
}

// decodeDocument parses a snapshot and enforces the structural contract: the
// three collection keys must all be present. Absence of any is a format
// error, not an empty collection.
func decodeDocument(data []byte) (*entity.Document, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("jsonfile: parse snapshot: %w", err)
	}
	for _, key := range []string{"products", "inputInvoices", "salesInvoices"} {
		raw, ok := probe[key]
		if !ok || string(raw) == "null" {
			return nil, fmt.Errorf("jsonfile: missing collection %q: %w", key, domain.ErrInvalidSnapshot)
		}
	}

	var doc entity.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("jsonfile: decode snapshot: %w", err)
	}
	normalize(&doc)
	return &doc, nil
}

// normalize keeps collections non-nil so serialized snapshots always carry
// all three keys.
func normalize(doc *entity.Document) {
	if doc.Products == nil {
		doc.Products = []entity.Product{}
	}
	if doc.InputInvoices == nil {
		doc.InputInvoices = []entity.Invoice{}
	}
	if doc.SalesInvoices == nil {
		doc.SalesInvoices = []entity.Invoice{}
	}
}

func cloneInvoice(inv *entity.Invoice) entity.Invoice {
	out := *inv
	out.Lines = make([]entity.InvoiceLine, len(inv.Lines))
	copy(out.Lines, inv.Lines)
	return out
}
