package ports

import (
	"context"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/template"
)

// TemplateAnalyzer is the outbound port for the vision model that detects
// invoice fields on an uploaded template image. The context should carry a
// timeout, the call goes to an external API.
type TemplateAnalyzer interface {
	AnalyzeTemplate(ctx context.Context, image []byte, mimeType string) (*template.Mapping, error)
}
