package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/daftar-app/daftar/internal/application/dto"
	"github.com/daftar-app/daftar/internal/application/usecase"
)

// BackupHandler serves export/import, GitHub sync and settings.
type BackupHandler struct {
	uc *usecase.BackupUseCase
}

// NewBackupHandler builds the handler.
func NewBackupHandler(uc *usecase.BackupUseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export godoc
// @Summary      Download the complete ledger as a JSON file
// @Tags         backup
// @Produce      json
// @Success      200  {file}  binary
// @Router       /api/backup/export [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	data, err := h.uc.Export()
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="accounting-data.json"`)
	return c.Send(data)
}

// Import godoc
// @Summary      Replace the entire ledger with an uploaded snapshot
// @Description  The payload must be a complete document; partial or malformed snapshots are rejected with 422 and the current ledger survives.
// @Tags         backup
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ImportResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/backup/import [post]
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	out, err := h.uc.Import(c.Body())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Push godoc
// @Summary      Upload the current snapshot to the configured GitHub repository
// @Tags         backup
// @Produce      json
// @Success      200  {object}  dto.SyncResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/backup/sync/push [post]
func (h *BackupHandler) Push(c *fiber.Ctx) error {
	out, err := h.uc.Push(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Pull godoc
// @Summary      Fetch the remote snapshot and adopt it as the local ledger
// @Tags         backup
// @Produce      json
// @Success      200  {object}  dto.ImportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/backup/sync/pull [post]
func (h *BackupHandler) Pull(c *fiber.Ctx) error {
	out, err := h.uc.Pull(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetSettings godoc
// @Summary      Read stored preferences
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *BackupHandler) GetSettings(c *fiber.Ctx) error {
	out, err := h.uc.GetSettings()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateSettings godoc
// @Summary      Patch stored preferences
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "Fields to update"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *BackupHandler) UpdateSettings(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateSettings(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
