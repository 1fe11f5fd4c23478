package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/dto"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/stock"
)

// StockHandler handles inventory endpoints.
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler builds the stock handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// AddOrUpdate godoc
// @Summary      Add stock or restock an existing item
// @Description  Quantity is a delta; product identity is the case-insensitive (product_name, company_name) pair.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AddOrUpdateStockRequest  true  "item"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/add-or-update [post]
func (h *StockHandler) AddOrUpdate(c *fiber.Ctx) error {
	var in dto.AddOrUpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.AddOrUpdate(GetOwnerID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List inventory
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.StockResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetOwnerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete an inventory item (owner only)
// @Tags         stock
// @Security     BearerAuth
// @Param        id  path  string  true  "stock ID"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetOwnerID(c), GetRole(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Companies godoc
// @Summary      Company names for the add-stock form
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        business_type  query  string  false  "pharmacy, grocery, electronics"
// @Success      200  {array}  string
// @Router       /api/stock/companies [get]
func (h *StockHandler) Companies(c *fiber.Ctx) error {
	out, err := h.uc.Companies(GetOwnerID(c), c.Query("business_type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Suggestions godoc
// @Summary      Product autocomplete suggestions
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        business_type  query  string  false  "pharmacy, grocery, electronics"
// @Param        company        query  string  false  "filter by company name"
// @Success      200  {array}  dto.ProductSuggestion
// @Router       /api/stock/suggestions [get]
func (h *StockHandler) Suggestions(c *fiber.Ctx) error {
	out, err := h.uc.Suggestions(GetOwnerID(c), c.Query("business_type"), c.Query("company"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
