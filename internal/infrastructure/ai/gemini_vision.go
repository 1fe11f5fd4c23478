// Package ai adapts Google Gemini for invoice template analysis.
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/ports"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/template"
)

var _ ports.TemplateAnalyzer = (*GeminiVision)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// visionPrompt defines the model's role and the output contract.
	// response_mime_type=application/json forces pure JSON back, so no
	// markdown fence stripping is needed.
	visionPrompt = `You are an expert at reading printed bill and invoice layouts.
Given an image of a blank invoice template, locate every fill-in area and return ONLY a JSON object (no extra text) with this exact structure:
{
  "header_fields": [
    {"name": "<snake_case identifier>", "label": "<label printed on the template>", "box_2d": [ymin, xmin, ymax, xmax]}
  ],
  "item_table": {
    "box_2d": [ymin, xmin, ymax, xmax],
    "columns": [
      {"name": "<snake_case identifier>", "label": "<column heading>", "box_2d": [ymin, xmin, ymax, xmax]}
    ]
  }
}

Rules:
- box_2d coordinates are integers from 0 to 1000, relative to the image (top-left origin).
- header_fields are the one-off blanks: customer name, date, bill number and similar.
- item_table covers the repeated product rows; one columns entry per table column, in left-to-right order.
- Use the template's own wording for label; derive name from it.
- Omit item_table entirely if the template has no product table.`
)

// GeminiVision implements ports.TemplateAnalyzer against the Gemini REST API.
// Plain net/http keeps the adapter dependency-free.
type GeminiVision struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiVision builds the adapter. model is typically "gemini-1.5-flash".
func NewGeminiVision(apiKey, model string) *GeminiVision {
	return &GeminiVision{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // network timeout; callers also set WithTimeout
		},
	}
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *geminiBlobPart `json:"inline_data,omitempty"`
}

type geminiBlobPart struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"` // base64-encoded image bytes
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// AnalyzeTemplate sends the template image to Gemini and returns the detected
// field mapping.
func (s *GeminiVision) AnalyzeTemplate(ctx context.Context, image []byte, mimeType string) (*template.Mapping, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY not configured")
	}
	if mimeType == "" {
		mimeType = "image/png"
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: visionPrompt}},
		},
		Contents: []geminiContent{
			{
				Role: "user",
				Parts: []geminiPart{
					{InlineData: &geminiBlobPart{
						MIMEType: mimeType,
						Data:     base64.StdEncoding.EncodeToString(image),
					}},
					{Text: "Analyze this invoice template and return the field mapping."},
				},
			},
		},
		GenerationConfig: genConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.2, // low temperature for stable geometry
			MaxOutputTokens:  2048,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: serialize request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout or cancellation: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: HTTP call failed: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return nil, fmt.Errorf("AI: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return nil, fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return nil, fmt.Errorf("AI: deserialize Gemini response: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("AI: Gemini returned an empty response")
	}

	rawJSON := strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text)
	m, err := template.Parse(rawJSON)
	if err != nil {
		return nil, fmt.Errorf("AI: model output is not a valid mapping: %w (response: %s)", err, rawJSON)
	}
	if m == nil {
		return nil, fmt.Errorf("AI: model returned no mapping: %w", domain.ErrMalformedMapping)
	}
	return m, nil
}
