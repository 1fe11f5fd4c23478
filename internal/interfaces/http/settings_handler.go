package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/dto"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/settings"
)

// maxTemplateImageBytes caps uploads sent to the vision model.
const maxTemplateImageBytes = 8 << 20

// SettingsHandler handles the invoice template settings.
type SettingsHandler struct {
	uc *settings.TemplateUseCase
}

// NewSettingsHandler builds the settings handler.
func NewSettingsHandler(uc *settings.TemplateUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetTemplate godoc
// @Summary      The owner's invoice template with normalized mapping
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.TemplateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settings/template [get]
func (h *SettingsHandler) GetTemplate(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetOwnerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AnalyzeTemplate godoc
// @Summary      Analyze an uploaded template image with the vision model
// @Tags         settings
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "template image"
// @Success      200  {object}  dto.AnalyzeTemplateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/settings/template/analyze [post]
func (h *SettingsHandler) AnalyzeTemplate(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_IMAGE", Message: "image file is required"})
	}
	if fileHeader.Size > maxTemplateImageBytes {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMAGE_TOO_LARGE", Message: "image exceeds 8 MB"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IMAGE", Message: "cannot read image"})
	}
	defer f.Close()
	image, err := io.ReadAll(io.LimitReader(f, maxTemplateImageBytes))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IMAGE", Message: "cannot read image"})
	}

	out, err := h.uc.Analyze(c.Context(), image, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SaveTemplate godoc
// @Summary      Save the owner's invoice template
// @Tags         settings
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  dto.SaveTemplateRequest  true  "html and mapping"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/settings/template [post]
func (h *SettingsHandler) SaveTemplate(c *fiber.Ctx) error {
	var in dto.SaveTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if err := h.uc.Save(GetOwnerID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
