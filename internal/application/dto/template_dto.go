package dto

import (
	"encoding/json"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/template"
)

// SaveTemplateRequest body for POST /api/settings/template/save. Mapping is
// kept raw so both object and double-encoded string forms are accepted.
type SaveTemplateRequest struct {
	HTML    string          `json:"html"`
	Mapping json.RawMessage `json:"mapping,omitempty"`
}

// TemplateResponse the stored template with its normalized mapping.
type TemplateResponse struct {
	HTML    string             `json:"html"`
	Mapping *template.Mapping  `json:"mapping,omitempty"`
	Labels  template.Labels    `json:"labels"`
	Fields  []template.Field   `json:"input_columns,omitempty"`
	Rects   []template.Overlay `json:"overlays,omitempty"`
}

// AnalyzeTemplateResponse result of the vision upload: a preview of the
// uploaded image plus the detected mapping and overlay geometry.
type AnalyzeTemplateResponse struct {
	PreviewBase64 string             `json:"preview_base64"`
	Mapping       *template.Mapping  `json:"mapping"`
	Overlays      []template.Overlay `json:"overlays"`
}
