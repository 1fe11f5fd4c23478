package template

// Rect is an overlay box in percentages of the rendered template image.
// Callers position these against the image box, not the page, so the
// geometry holds at any container aspect ratio.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
}

// Overlay is one labeled region to draw over the template preview.
type Overlay struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Rect  Rect   `json:"rect"`
}

// OverlayRect converts a 0-1000 normalized box to percentage geometry.
// Coordinates are clamped to [0, 1000] first; an inverted box collapses to
// zero height or width instead of going negative.
func OverlayRect(box Box) Rect {
	ymin := clamp(box[0])
	xmin := clamp(box[1])
	ymax := clamp(box[2])
	xmax := clamp(box[3])
	if ymax < ymin {
		ymax = ymin
	}
	if xmax < xmin {
		xmax = xmin
	}
	return Rect{
		Top:    ymin / 10,
		Left:   xmin / 10,
		Height: (ymax - ymin) / 10,
		Width:  (xmax - xmin) / 10,
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1000 {
		return 1000
	}
	return v
}

// Overlays flattens a mapping into drawable regions: header fields first in
// their stored order, then the item table columns.
func Overlays(m *Mapping) []Overlay {
	if m == nil {
		return nil
	}
	out := make([]Overlay, 0, len(m.HeaderFields))
	for _, f := range m.HeaderFields {
		out = append(out, Overlay{Name: f.Name, Label: f.Label, Rect: OverlayRect(f.Box)})
	}
	if m.ItemTable != nil {
		for _, f := range m.ItemTable.Columns {
			out = append(out, Overlay{Name: f.Name, Label: f.Label, Rect: OverlayRect(f.Box)})
		}
	}
	return out
}
