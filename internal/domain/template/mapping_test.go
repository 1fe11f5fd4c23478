package template_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/template"
)

const sampleMapping = `{
	"header_fields": [
		{"name": "customer_name", "label": "Name", "box_2d": [100, 200, 300, 400]},
		{"name": "date", "label": "Date", "box_2d": [50, 700, 120, 950]}
	],
	"item_table": {
		"box_2d": [400, 50, 900, 950],
		"columns": [
			{"name": "particulars", "label": "Particulars", "box_2d": [400, 50, 900, 450]},
			{"name": "qty", "label": "Pcs", "box_2d": [400, 450, 900, 600]},
			{"name": "rate", "label": "Rate", "box_2d": [400, 600, 900, 750]},
			{"name": "total", "label": "Total", "box_2d": [400, 750, 900, 950]}
		]
	}
}`

func TestParse_StructuredObject(t *testing.T) {
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(sampleMapping), &raw))

	m, err := template.Parse(raw)
	require.NoError(t, err)
	require.NotNil(t, m)
	require.Len(t, m.HeaderFields, 2)
	assert.Equal(t, "customer_name", m.HeaderFields[0].Name)
	assert.Equal(t, template.Box{100, 200, 300, 400}, m.HeaderFields[0].Box)
	require.NotNil(t, m.ItemTable)
	assert.Len(t, m.ItemTable.Columns, 4)
}

func TestParse_JSONString(t *testing.T) {
	m, err := template.Parse(sampleMapping)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Len(t, m.HeaderFields, 2)
}

func TestParse_DoubleEncodedString(t *testing.T) {
	// Older rows store the mapping JSON-encoded inside a JSON string.
	double, err := json.Marshal(sampleMapping)
	require.NoError(t, err)

	m, err := template.Parse(json.RawMessage(double))
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Len(t, m.HeaderFields, 2)
	require.NotNil(t, m.ItemTable)
	assert.Equal(t, "qty", m.ItemTable.Columns[1].Name)
}

func TestParse_MalformedString(t *testing.T) {
	m, err := template.Parse("{not json")
	assert.Nil(t, m)
	assert.ErrorIs(t, err, domain.ErrMalformedMapping)
}

func TestParse_EmptyValues(t *testing.T) {
	for _, raw := range []any{nil, "", []byte(nil), json.RawMessage(nil)} {
		m, err := template.Parse(raw)
		assert.NoError(t, err)
		assert.Nil(t, m)
	}
}

func TestClassify_Vectors(t *testing.T) {
	cases := []struct {
		name, label string
		want        template.ColumnKind
	}{
		{"qty", "Pcs", template.KindQuantity},
		{"quantity", "", template.KindQuantity},
		{"col2", "No. of Pcs", template.KindQuantity},
		{"rate", "Rate", template.KindPrice},
		{"unit_price", "", template.KindPrice},
		{"col3", "Amount", template.KindPrice},       // "amount" label without "total" means unit price
		{"col4", "Total Amount", template.KindAmount}, // "total" pushes it to the derived column
		{"particulars", "", template.KindProduct},
		{"description", "", template.KindProduct},
		{"col1", "Particulars", template.KindProduct},
		{"amount", "", template.KindAmount},
		{"total", "", template.KindAmount},
		{"col5", "Grand Total", template.KindAmount},
		{"serial", "S.No", template.KindCustom},
	}
	for _, tc := range cases {
		got := template.Classify(template.Field{Name: tc.name, Label: tc.label})
		assert.Equal(t, tc.want, got, "name=%q label=%q", tc.name, tc.label)
	}
}

func TestClassify_QuantityWinsOverPrice(t *testing.T) {
	// A column matching both concepts takes the higher-priority one.
	got := template.Classify(template.Field{Name: "qty_rate", Label: ""})
	assert.Equal(t, template.KindQuantity, got)
}

func TestClassifyColumns_AssignsEachConceptOnce(t *testing.T) {
	cols := []template.Field{
		{Name: "particulars", Label: "Particulars"},
		{Name: "qty", Label: "Pcs"},
		{Name: "qty2", Label: "Quantity"}, // second quantity-like column stays custom
		{Name: "rate", Label: "Rate"},
		{Name: "total", Label: "Total"},
	}
	c := template.ClassifyColumns(cols)

	require.NotNil(t, c.Product)
	require.NotNil(t, c.Qty)
	require.NotNil(t, c.Price)
	require.NotNil(t, c.Amount)
	assert.Equal(t, "qty", c.Qty.Name)
	require.Len(t, c.Custom, 1)
	assert.Equal(t, "qty2", c.Custom[0].Name)
}

func TestClassifyColumns_AmountExcludedFromInput(t *testing.T) {
	cols := []template.Field{
		{Name: "particulars"},
		{Name: "qty"},
		{Name: "rate"},
		{Name: "total"},
		{Name: "serial", Label: "S.No"},
	}
	in := template.ClassifyColumns(cols).InputColumns()

	names := make([]string, 0, len(in))
	for _, f := range in {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"particulars", "rate", "qty", "serial"}, names)
	assert.NotContains(t, names, "total")
}

func TestDisplayLabels_Defaults(t *testing.T) {
	l := template.ClassifyColumns(nil).DisplayLabels()
	assert.Equal(t, template.Labels{
		Product: "Product Name",
		Price:   "Price (Unit)",
		Qty:     "Quantity",
		Amount:  "Total",
	}, l)
}

func TestDisplayLabels_FromMapping(t *testing.T) {
	m, err := template.Parse(sampleMapping)
	require.NoError(t, err)

	l := template.ClassifyColumns(m.ItemTable.Columns).DisplayLabels()
	assert.Equal(t, "Particulars", l.Product)
	assert.Equal(t, "Rate", l.Price)
	assert.Equal(t, "Pcs", l.Qty)
	assert.Equal(t, "Total", l.Amount)
}
