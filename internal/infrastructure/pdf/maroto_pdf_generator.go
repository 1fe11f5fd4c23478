// Package pdf renders retail bill PDFs with Maroto v2.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Business name + address + phone (centered)          │
//	│  Date (left)                       S. No: INV-... (right)    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: customer name + phone                              │
//	│  TABLE: Product | Price | Qty | Total (labels per template)  │
//	│  TOTALS: Subtotal / Discount / GRAND TOTAL                   │
//	│  Amount in words                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/ports"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/template"
)

var _ ports.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorTeal  = &props.Color{Red: 0, Green: 105, Blue: 92}
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorBlack = &props.Color{Red: 30, Green: 30, Blue: 30}
)

var titleCaser = cases.Title(language.English)

// MarotoPDFGenerator implements ports.InvoicePDFGenerator using Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// Generate renders the bill and returns its bytes.
func (g *MarotoPDFGenerator) Generate(bill ports.BillForPDF) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+bill.InvoiceNumber, true).
		WithAuthor(bill.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(bill))
	m.AddRows(line.NewRow(1, props.Line{Color: colorTeal, Thickness: 0.6}))
	m.AddRows(metaRow(bill))
	m.AddRows(billToRow(bill))
	m.AddRows(line.NewRow(1, props.Line{Color: colorTeal, Thickness: 0.3}))

	labels := bill.Labels
	if labels == (template.Labels{}) {
		labels = template.DefaultLabels
	}
	m.AddRows(tableHeaderRow(labels))
	for _, r := range tableItemRows(bill) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorTeal, Thickness: 0.3}))
	m.AddRows(totalsRow(bill))
	m.AddRows(amountInWordsRow(bill.AmountInWords))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: business identity centered across the page.
func headerRow(bill ports.BillForPDF) core.Row {
	contact := bill.BusinessAddress
	if bill.BusinessPhone != "" {
		if contact != "" {
			contact += "   |   "
		}
		contact += "Ph: " + bill.BusinessPhone
	}
	return row.New(18).Add(
		col.New(12).Add(
			text.New(strings.ToUpper(bill.BusinessName), props.Text{
				Style: fontstyle.Bold, Size: 15, Align: align.Center, Color: colorTeal, Top: 1,
			}),
			text.New(contact, props.Text{
				Size: 8, Align: align.Center, Top: 10, Color: colorGray,
			}),
		),
	)
}

// metaRow: date on the left, serial number on the right.
func metaRow(bill ports.BillForPDF) core.Row {
	return row.New(8).Add(
		col.New(6).Add(text.New("Date: "+bill.Date, props.Text{Size: 9, Top: 2})),
		col.New(6).Add(text.New("S. No: "+bill.InvoiceNumber, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
		})),
	)
}

// billToRow: customer block.
func billToRow(bill ports.BillForPDF) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorTeal, Top: 1,
			}),
			text.New(titleCaser.String(bill.CustomerName), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Ph: %s   |   Payment: %s",
				bill.CustomerPhone, strings.ToUpper(bill.PaymentMethod),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: the column labels come from the owner's template mapping.
func tableHeaderRow(labels template.Labels) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorTeal, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h(labels.Product, 5, align.Left),
		h(labels.Price, 2, align.Right),
		h(labels.Qty, 2, align.Center),
		h(labels.Amount, 3, align.Right),
	)
}

// tableItemRows: one row per sale line.
func tableItemRows(bill ports.BillForPDF) []core.Row {
	result := make([]core.Row, 0, len(bill.Items))
	for _, it := range bill.Items {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorBlack},
			)),
			col.New(2).Add(text.New(
				"Rs "+formatMoney(it.UnitPrice.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				"Rs "+formatMoney(it.TotalPrice.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: subtotal, discount and grand total aligned right.
func totalsRow(bill ports.BillForPDF) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorTeal, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorTeal, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			label("Discount:"),
			grandLabel("GRAND TOTAL:"),
		),
		col.New(4).Add(
			value("Rs "+formatMoney(bill.Subtotal.StringFixed(2))),
			value("Rs "+formatMoney(bill.Discount.StringFixed(2))),
			grandValue("Rs "+formatMoney(bill.GrandTotal.StringFixed(2))),
		),
	)
}

// amountInWordsRow: the spelled-out total beneath the figures.
func amountInWordsRow(words string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Amount in words: "+words, props.Text{
			Style: fontstyle.Italic, Size: 8, Top: 2, Color: colorGray,
		}),
	))
}

func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Thank you for your business!", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center,
			Color: colorTeal, Top: 4,
		}),
	))
}

// formatMoney inserts Indian-style digit grouping into a fixed-point string.
// "1234567.00" becomes "12,34,567.00": the last three integer digits group
// together, the rest group in pairs.
func formatMoney(s string) string {
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	n := len(intPart)
	if n <= 3 {
		return intPart + frac
	}
	buf := make([]byte, 0, n+n/2)
	head := intPart[:n-3]
	for i, c := range []byte(head) {
		if i > 0 && (len(head)-i)%2 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	buf = append(buf, ',')
	buf = append(buf, intPart[n-3:]...)
	return string(buf) + frac
}
