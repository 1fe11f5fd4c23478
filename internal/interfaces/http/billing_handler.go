package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/billing"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/dto"
)

// BillingHandler handles bill generation and history.
type BillingHandler struct {
	generate *billing.GenerateBillUseCase
	history  *billing.HistoryUseCase
}

// NewBillingHandler builds the billing handler.
func NewBillingHandler(generate *billing.GenerateBillUseCase, history *billing.HistoryUseCase) *BillingHandler {
	return &BillingHandler{generate: generate, history: history}
}

// Generate godoc
// @Summary      Generate a bill
// @Description  Deducts stock, assigns the next invoice number, renders the PDF and logs the income entry.
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.GenerateBillRequest  true  "customer and cart"
// @Success      201   {object}  dto.GenerateBillResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/billing/generate [post]
func (h *BillingHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateBillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.generate.Execute(c.Context(), GetOwnerID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Bill history, grouped by day
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.BillHistoryGroup
// @Router       /api/billing/history [get]
func (h *BillingHandler) History(c *fiber.Ctx) error {
	out, err := h.history.Grouped(GetOwnerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      One stored bill with its items
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "sale ID"
// @Success      200  {object}  dto.BillResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/billing/{id} [get]
func (h *BillingHandler) Get(c *fiber.Ctx) error {
	out, err := h.history.Get(GetOwnerID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Download godoc
// @Summary      Download the bill PDF
// @Tags         billing
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "sale ID"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/billing/{id}/download [get]
func (h *BillingHandler) Download(c *fiber.Ctx) error {
	path, filename, err := h.history.Download(GetOwnerID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Download(path, filename)
}

// Delete godoc
// @Summary      Delete a bill and its PDF (owner only)
// @Tags         billing
// @Security     BearerAuth
// @Param        id  path  string  true  "sale ID"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/billing/{id} [delete]
func (h *BillingHandler) Delete(c *fiber.Ctx) error {
	if err := h.history.Delete(GetOwnerID(c), GetRole(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
