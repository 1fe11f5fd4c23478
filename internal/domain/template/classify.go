package template

import "strings"

// ColumnKind is the billing concept a template column maps to.
type ColumnKind int

const (
	KindCustom ColumnKind = iota // no known concept, becomes a free-text line field
	KindQuantity
	KindPrice
	KindProduct
	KindAmount // derived column, display only
)

func (k ColumnKind) String() string {
	switch k {
	case KindQuantity:
		return "qty"
	case KindPrice:
		return "price"
	case KindProduct:
		return "product"
	case KindAmount:
		return "amount"
	}
	return "custom"
}

// Classify maps a single column to a concept using ordered heuristics over
// the lowercased name and label. The order matters: quantity wins over
// price, price over product, and amount is checked last because "total"
// labels would otherwise shadow "amount" price columns.
func Classify(f Field) ColumnKind {
	nm := strings.ToLower(f.Name)
	lb := strings.ToLower(f.Label)

	switch {
	case strings.Contains(nm, "qty") || strings.Contains(nm, "quantity") ||
		strings.Contains(lb, "pc") || strings.Contains(lb, "quantity"):
		return KindQuantity
	case strings.Contains(nm, "rate") || strings.Contains(nm, "price") ||
		(strings.Contains(lb, "amount") && !strings.Contains(lb, "total")) ||
		strings.Contains(lb, "rate"):
		return KindPrice
	case strings.Contains(nm, "product") || strings.Contains(nm, "particular") ||
		strings.Contains(nm, "description") || strings.Contains(lb, "particular"):
		return KindProduct
	case strings.Contains(nm, "amount") || strings.Contains(nm, "total") ||
		strings.Contains(lb, "total"):
		return KindAmount
	}
	return KindCustom
}

// Columns is the result of classifying an item table: at most one column per
// concept, every leftover column kept as a custom field in original order.
type Columns struct {
	Product *Field
	Price   *Field
	Qty     *Field
	Amount  *Field
	Custom  []Field
}

// ClassifyColumns assigns each concept to the first matching column. A
// column whose concept is already taken falls through to the remaining
// concepts in the same priority order, and ends up custom if none is free.
func ClassifyColumns(cols []Field) Columns {
	var out Columns
	for i := range cols {
		f := cols[i]
		nm := strings.ToLower(f.Name)
		lb := strings.ToLower(f.Label)

		switch {
		case out.Qty == nil &&
			(strings.Contains(nm, "qty") || strings.Contains(nm, "quantity") ||
				strings.Contains(lb, "pc") || strings.Contains(lb, "quantity")):
			out.Qty = &cols[i]
		case out.Price == nil &&
			(strings.Contains(nm, "rate") || strings.Contains(nm, "price") ||
				(strings.Contains(lb, "amount") && !strings.Contains(lb, "total")) ||
				strings.Contains(lb, "rate")):
			out.Price = &cols[i]
		case out.Product == nil &&
			(strings.Contains(nm, "product") || strings.Contains(nm, "particular") ||
				strings.Contains(nm, "description") || strings.Contains(lb, "particular")):
			out.Product = &cols[i]
		case out.Amount == nil &&
			(strings.Contains(nm, "amount") || strings.Contains(nm, "total") ||
				strings.Contains(lb, "total")):
			out.Amount = &cols[i]
		default:
			out.Custom = append(out.Custom, cols[i])
		}
	}
	return out
}

// InputColumns returns the columns a cashier types into: product, price,
// quantity and the custom ones. The amount column is excluded, its value is
// always derived as quantity x price.
func (c Columns) InputColumns() []Field {
	out := make([]Field, 0, 3+len(c.Custom))
	for _, f := range []*Field{c.Product, c.Price, c.Qty} {
		if f != nil {
			out = append(out, *f)
		}
	}
	out = append(out, c.Custom...)
	return out
}

// Labels are the display names for the bill entry form.
type Labels struct {
	Product string
	Price   string
	Qty     string
	Amount  string
}

// DefaultLabels used when the mapping does not override them.
var DefaultLabels = Labels{
	Product: "Product Name",
	Price:   "Price (Unit)",
	Qty:     "Quantity",
	Amount:  "Total",
}

// DisplayLabels resolves the form labels from the classified columns,
// falling back to the defaults for anything unmapped or unlabeled.
func (c Columns) DisplayLabels() Labels {
	l := DefaultLabels
	if c.Product != nil && c.Product.Label != "" {
		l.Product = c.Product.Label
	}
	if c.Price != nil && c.Price.Label != "" {
		l.Price = c.Price.Label
	}
	if c.Qty != nil && c.Qty.Label != "" {
		l.Qty = c.Qty.Label
	}
	if c.Amount != nil && c.Amount.Label != "" {
		l.Amount = c.Amount.Label
	}
	return l
}
