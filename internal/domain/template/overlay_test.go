package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/template"
)

func TestOverlayRect_Vector(t *testing.T) {
	r := template.OverlayRect(template.Box{100, 200, 300, 400})
	assert.Equal(t, template.Rect{Top: 10, Left: 20, Height: 20, Width: 20}, r)
}

func TestOverlayRect_ClampsOutOfRange(t *testing.T) {
	r := template.OverlayRect(template.Box{-50, 0, 1200, 1000})
	assert.Equal(t, template.Rect{Top: 0, Left: 0, Height: 100, Width: 100}, r)
}

func TestOverlayRect_InvertedBoxCollapses(t *testing.T) {
	r := template.OverlayRect(template.Box{300, 400, 100, 200})
	assert.Equal(t, 0.0, r.Height)
	assert.Equal(t, 0.0, r.Width)
	assert.Equal(t, 30.0, r.Top)
	assert.Equal(t, 40.0, r.Left)
}

func TestOverlays_HeaderFieldsBeforeColumns(t *testing.T) {
	m, err := template.Parse(sampleMapping)
	require.NoError(t, err)

	ov := template.Overlays(m)
	require.Len(t, ov, 6)
	assert.Equal(t, "customer_name", ov[0].Name)
	assert.Equal(t, "date", ov[1].Name)
	assert.Equal(t, "particulars", ov[2].Name)
	assert.Equal(t, "total", ov[5].Name)

	assert.Equal(t, template.Rect{Top: 10, Left: 20, Height: 20, Width: 20}, ov[0].Rect)
}

func TestOverlays_NilMapping(t *testing.T) {
	assert.Nil(t, template.Overlays(nil))
}
