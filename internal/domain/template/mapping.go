// Package template models the invoice template field mapping produced by the
// vision analysis: parsing, column classification and overlay geometry.
package template

import (
	"encoding/json"
	"fmt"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain"
)

// Box is [ymin, xmin, ymax, xmax] in 0-1000 normalized image units.
type Box [4]float64

// Field is one mapped region of the template image.
type Field struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Box   Box    `json:"box_2d"`
}

// ItemTable is the line-items region and its columns.
type ItemTable struct {
	Box     Box     `json:"box_2d"`
	Columns []Field `json:"columns"`
}

// Mapping is the full template field map.
type Mapping struct {
	HeaderFields []Field    `json:"header_fields"`
	ItemTable    *ItemTable `json:"item_table,omitempty"`
}

// Parse normalizes a stored mapping. Older rows hold the mapping double
// encoded as a JSON string, newer ones as a structured object; both are
// accepted. A nil or empty value yields a nil mapping with no error, a
// malformed JSON string yields ErrMalformedMapping so the caller can log it
// and carry on without a mapping.
func Parse(raw any) (*Mapping, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case *Mapping:
		return v, nil
	case Mapping:
		return &v, nil
	case string:
		if v == "" {
			return nil, nil
		}
		return parseBytes([]byte(v))
	case []byte:
		if len(v) == 0 {
			return nil, nil
		}
		return parseBytes(v)
	case json.RawMessage:
		if len(v) == 0 {
			return nil, nil
		}
		return parseBytes(v)
	default:
		// Structured value (map from a decoded request body): round-trip
		// through JSON to apply the field tags.
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedMapping, err)
		}
		return parseBytes(b)
	}
}

func parseBytes(b []byte) (*Mapping, error) {
	// A double-encoded mapping arrives as a JSON string literal.
	if len(b) > 0 && b[0] == '"' {
		var inner string
		if err := json.Unmarshal(b, &inner); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedMapping, err)
		}
		if inner == "" {
			return nil, nil
		}
		b = []byte(inner)
	}
	var m Mapping
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedMapping, err)
	}
	return &m, nil
}
