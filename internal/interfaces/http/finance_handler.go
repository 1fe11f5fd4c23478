package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/dto"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/finance"
)

// FinanceHandler handles the day-book and the finance summary.
type FinanceHandler struct {
	uc *finance.UseCase
}

// NewFinanceHandler builds the finance handler.
func NewFinanceHandler(uc *finance.UseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// List godoc
// @Summary      List transactions
// @Description  Filter by date (YYYY-MM-DD) or month (YYYY-MM); defaults to today.
// @Tags         finance
// @Produce      json
// @Security     BearerAuth
// @Param        date   query  string  false  "calendar day"
// @Param        month  query  string  false  "calendar month"
// @Param        limit  query  int     false  "max rows"
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/transactions [get]
func (h *FinanceHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	out, err := h.uc.List(GetOwnerID(c), c.Query("date"), c.Query("month"), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Record a transaction
// @Tags         finance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateTransactionRequest  true  "entry"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *FinanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Create(GetOwnerID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Delete a transaction and reverse its balance effect
// @Tags         finance
// @Security     BearerAuth
// @Param        id  path  string  true  "transaction ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [delete]
func (h *FinanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetOwnerID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Summary godoc
// @Summary      Daily and monthly income/expense summary
// @Tags         finance
// @Produce      json
// @Security     BearerAuth
// @Param        month  query  string  false  "YYYY-MM, defaults to the current month"
// @Success      200  {object}  dto.FinanceSummaryResponse
// @Router       /api/finance/summary [get]
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(GetOwnerID(c), c.Query("month"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
