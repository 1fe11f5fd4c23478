// Package settings contains the invoice template use case: vision analysis
// of uploaded template images, persistence and normalized reads.
package settings

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/dto"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/ports"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/repository"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/template"
	"github.com/aryaman2519/My-Bussiness-Manager/pkg/logger"
)

const analyzeTimeout = 30 * time.Second

// TemplateUseCase manages the owner's invoice template.
type TemplateUseCase struct {
	templateRepo repository.TemplateRepository
	analyzer     ports.TemplateAnalyzer
	log          *logger.Logger
}

// NewTemplateUseCase builds the template use case.
func NewTemplateUseCase(templateRepo repository.TemplateRepository, analyzer ports.TemplateAnalyzer, log *logger.Logger) *TemplateUseCase {
	return &TemplateUseCase{templateRepo: templateRepo, analyzer: analyzer, log: log}
}

// Get returns the owner's template with the mapping normalized: labels,
// input columns and overlay rects derived for the caller. Staff read the
// owner's template through the owner scope. A malformed stored mapping is
// logged and the template is returned without one.
func (uc *TemplateUseCase) Get(ownerID string) (*dto.TemplateResponse, error) {
	tpl, err := uc.templateRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, domain.ErrNotFound
	}

	out := &dto.TemplateResponse{HTML: tpl.HTML, Labels: template.DefaultLabels}
	m, err := template.Parse(tpl.Mapping)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedMapping) {
			uc.log.Warn().Err(err).Str("owner_id", ownerID).Msg("stored template mapping unreadable")
			return out, nil
		}
		return nil, err
	}
	if m == nil {
		return out, nil
	}

	out.Mapping = m
	out.Rects = template.Overlays(m)
	if m.ItemTable != nil {
		cols := template.ClassifyColumns(m.ItemTable.Columns)
		out.Labels = cols.DisplayLabels()
		out.Fields = cols.InputColumns()
	}
	return out, nil
}

// Analyze sends an uploaded template image to the vision model and returns
// the detected mapping with its overlay geometry and an image preview.
func (uc *TemplateUseCase) Analyze(ctx context.Context, image []byte, mimeType string) (*dto.AnalyzeTemplateResponse, error) {
	if len(image) == 0 {
		return nil, domain.ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, analyzeTimeout)
	defer cancel()

	m, err := uc.analyzer.AnalyzeTemplate(ctx, image, mimeType)
	if err != nil {
		return nil, err
	}
	return &dto.AnalyzeTemplateResponse{
		PreviewBase64: base64.StdEncoding.EncodeToString(image),
		Mapping:       m,
		Overlays:      template.Overlays(m),
	}, nil
}

// Save upserts the owner's template. The mapping is validated first so a
// bad payload never reaches the database; saving without a mapping is fine.
func (uc *TemplateUseCase) Save(ownerID string, in dto.SaveTemplateRequest) error {
	if in.HTML == "" {
		return domain.ErrInvalidInput
	}
	if _, err := template.Parse(in.Mapping); err != nil {
		return err
	}
	now := time.Now()
	return uc.templateRepo.Save(&entity.InvoiceTemplate{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		HTML:      in.HTML,
		Mapping:   string(in.Mapping),
		CreatedAt: now,
		UpdatedAt: now,
	})
}
