// Package cart implements the point-of-sale cart: line merging against
// available stock, discount arithmetic and the billing session lifecycle.
package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain"
)

// Line is one cart entry. Its total is always Quantity x UnitPrice.
type Line struct {
	StockID      string
	ProductName  string
	Quantity     int64
	UnitPrice    decimal.Decimal
	CustomFields map[string]string
}

// Total returns the line amount.
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Cart holds the lines and discount of a bill being built.
type Cart struct {
	lines    []Line
	discount decimal.Decimal
}

// New returns an empty cart with zero discount.
func New() *Cart {
	return &Cart{discount: decimal.Zero}
}

// Add puts a line in the cart, enforcing available stock. A line for the
// same stock item is merged: quantities add up and the incoming unit price
// replaces the stored one (last write wins). The stock check covers the
// merged quantity, so two adds of 3 against 5 available fail on the second.
func (c *Cart) Add(line Line, available int64) error {
	if line.StockID == "" || line.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	for i := range c.lines {
		if c.lines[i].StockID != line.StockID {
			continue
		}
		merged := c.lines[i].Quantity + line.Quantity
		if merged > available {
			return fmt.Errorf("%w: only %d available", domain.ErrInsufficientStock, available)
		}
		c.lines[i].Quantity = merged
		c.lines[i].UnitPrice = line.UnitPrice
		if line.CustomFields != nil {
			c.lines[i].CustomFields = line.CustomFields
		}
		return nil
	}
	if line.Quantity > available {
		return fmt.Errorf("%w: only %d available", domain.ErrInsufficientStock, available)
	}
	c.lines = append(c.lines, line)
	return nil
}

// Remove drops the line at index i.
func (c *Cart) Remove(i int) error {
	if i < 0 || i >= len(c.lines) {
		return domain.ErrInvalidInput
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return nil
}

// SetDiscount stores the bill discount. Negative input is clamped to zero.
func (c *Cart) SetDiscount(d decimal.Decimal) {
	if d.IsNegative() {
		d = decimal.Zero
	}
	c.discount = d
}

// Discount returns the stored discount.
func (c *Cart) Discount() decimal.Decimal {
	return c.discount
}

// Subtotal is the sum of all line totals.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

// Total is the payable amount: subtotal minus discount, floored at zero.
func (c *Cart) Total() decimal.Decimal {
	t := c.Subtotal().Sub(c.discount)
	if t.IsNegative() {
		return decimal.Zero
	}
	return t
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clear removes every line and resets the discount.
func (c *Cart) Clear() {
	c.lines = nil
	c.discount = decimal.Zero
}
