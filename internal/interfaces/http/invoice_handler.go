package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/daftar-app/daftar/internal/application/dto"
	"github.com/daftar-app/daftar/internal/application/usecase"
	"github.com/daftar-app/daftar/internal/domain/entity"
)

// InvoiceHandler serves both invoice collections. The kind comes from the
// route ("input" or "sales"); id-addressed routes work for either kind.
type InvoiceHandler struct {
	uc *usecase.InvoiceUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

func invoiceKind(c *fiber.Ctx) (string, bool) {
	kind := c.Params("kind")
	return kind, kind == entity.InvoiceKindInput || kind == entity.InvoiceKindSales
}

// Create godoc
// @Summary      Create invoice
// @Description  Records an input (stock received) or sales invoice. Sales are rejected with 409 when stock is insufficient.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        kind  path  string  true  "input or sales"
// @Param        body  body  dto.CreateInvoiceRequest  true  "Invoice data"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invoices/{kind} [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	kind, ok := invoiceKind(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invoice kind must be input or sales"})
	}
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(kind, in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List invoices of one kind, most recent first
// @Tags         invoices
// @Produce      json
// @Param        kind  path  string  true  "input or sales"
// @Success      200   {object}  dto.InvoiceListResponse
// @Router       /api/invoices/{kind} [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	kind, ok := invoiceKind(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invoice kind must be input or sales"})
	}
	out, err := h.uc.List(kind)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get invoice by id
// @Tags         invoices
// @Produce      json
// @Param        id   path  string  true  "Invoice id"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "invoice")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Replace the date and lines of an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Invoice id"
// @Param        body  body  dto.CreateInvoiceRequest  true  "New invoice content"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "invoice")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete invoice
// @Tags         invoices
// @Param        id  path  string  true  "Invoice id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      Render a printable PDF of the invoice
// @Tags         invoices
// @Produce      application/pdf
// @Param        id  path  string  true  "Invoice id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	data, err := h.uc.RenderPDF(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if data == nil {
		return notFound(c, "invoice")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="invoice-`+c.Params("id")+`.pdf"`)
	return c.Send(data)
}
