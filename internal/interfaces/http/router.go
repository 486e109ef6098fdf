package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/daftar-app/daftar/internal/application/usecase"
)

// RouterDeps carries the use cases the router wires up.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	InvoiceUC   *usecase.InvoiceUseCase
	InventoryUC *usecase.InventoryUseCase
	BackupUC    *usecase.BackupUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Kind-scoped routes are registered before the id-scoped ones; the regex
	// constraint lets "input"/"sales" match here and everything else fall
	// through to :id.
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/:kind<regex(input|sales)>", invoiceHandler.Create)
	invoices.Get("/:kind<regex(input|sales)>", invoiceHandler.List)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	api.Get("/inventory", inventoryHandler.Report)

	backup := api.Group("/backup")
	backupHandler := NewBackupHandler(deps.BackupUC)
	backup.Get("/export", backupHandler.Export)
	backup.Post("/import", backupHandler.Import)
	backup.Post("/sync/push", backupHandler.Push)
	backup.Post("/sync/pull", backupHandler.Pull)

	settings := api.Group("/settings")
	settings.Get("/", backupHandler.GetSettings)
	settings.Put("/", backupHandler.UpdateSettings)

	cal := api.Group("/calendar")
	calendarHandler := NewCalendarHandler()
	cal.Get("/today", calendarHandler.Today)
	cal.Get("/validate", calendarHandler.Validate)
}
