package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The LLM is asked for a fixed schema but its output drifts: products arrive
// as plain strings, prices arrive as quoted numbers, keys go missing. The
// loose* types and the ProductRecord unmarshaler absorb all of that so the
// rest of the pipeline only ever sees the declared shape.

type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = looseString(fmt.Sprintf("%v", v))
	return nil
}

type looseFloat float64

func (f *looseFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			// non-numeric text counts as "not extracted"
			*f = 0
			return nil
		}
		*f = looseFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = looseFloat(v)
	return nil
}

type looseInt int

func (i *looseInt) UnmarshalJSON(data []byte) error {
	var f looseFloat
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*i = looseInt(f)
	return nil
}

type productFields struct {
	Name        looseString `json:"name"`
	Price       looseFloat  `json:"price"`
	Category    looseString `json:"category"`
	Description looseString `json:"description"`
	Unit        looseString `json:"unit"`
	Quantity    looseInt    `json:"quantity"`
}

// BareProduct is the record a name-only product resolves to: price 0,
// quantity 1, no unit, and a generated description.
func BareProduct(name string) ProductRecord {
	return ProductRecord{
		Name:        name,
		Price:       0,
		Category:    "",
		Description: "Fresh " + name,
		Unit:        "",
		Quantity:    1,
	}
}

// UnmarshalJSON accepts a product entry in any of the shapes the extractors
// hand back: a JSON object (missing keys filled with defaults), a bare string
// (treated as a name-only product), or any other scalar, which is coerced to
// its string representation and handled like the bare-string case.
func (p *ProductRecord) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = ProductRecord{Quantity: 1}
		return nil
	}

	switch data[0] {
	case '{':
		var f productFields
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		q := int(f.Quantity)
		if q == 0 {
			q = 1
		}
		*p = ProductRecord{
			Name:        string(f.Name),
			Price:       float64(f.Price),
			Category:    string(f.Category),
			Description: string(f.Description),
			Unit:        string(f.Unit),
			Quantity:    q,
		}
		return nil
	case '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*p = BareProduct(name)
		return nil
	default:
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*p = BareProduct(fmt.Sprintf("%v", v))
		return nil
	}
}
