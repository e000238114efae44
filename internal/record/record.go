// Package record holds the data contract shared by both extraction paths:
// the business record, the product record, and the normalization rules that
// guarantee every field is present and correctly typed regardless of which
// extractor produced the raw result.
package record

// ProductRecord is one catalog entry. Price and Quantity are always numeric
// in a normalized record, even when the source transcript spelled them out.
type ProductRecord struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Quantity    int     `json:"quantity"`
}

// BusinessRecord is the full session shape. Empty string means "not
// extracted"; fields are never null in the serialized form.
type BusinessRecord struct {
	PersonName      string          `json:"personName"`
	Name            string          `json:"name"`
	Address         string          `json:"address"`
	City            string          `json:"city"`
	State           string          `json:"state"`
	Pincode         string          `json:"pincode"`
	GSTNumber       string          `json:"gstNumber"`
	Category        string          `json:"category"`
	Subcategory     string          `json:"subcategory"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Website         string          `json:"website"`
	EstablishedYear string          `json:"establishedYear"`
	Products        []ProductRecord `json:"products"`
}

// EmptyBusiness returns the all-defaults record used for the lazy
// products-only session shell.
func EmptyBusiness() BusinessRecord {
	return BusinessRecord{Products: []ProductRecord{}}
}

// NormalizeProduct clamps the numeric fields into their valid ranges.
// It does not touch Unit or Description; phase-specific defaults for those
// are applied by NormalizeProducts.
func NormalizeProduct(p ProductRecord) ProductRecord {
	if p.Price < 0 {
		p.Price = 0
	}
	if p.Quantity < 1 {
		p.Quantity = 1
	}
	return p
}

// NormalizeBusiness fills defaults so every declared field is present.
// Applied unconditionally after either extraction path; idempotent.
func NormalizeBusiness(b BusinessRecord) BusinessRecord {
	if b.Products == nil {
		b.Products = []ProductRecord{}
	}
	for i := range b.Products {
		b.Products[i] = NormalizeProduct(b.Products[i])
	}
	return b
}

// NormalizeProducts applies the product-phase defaults on top of
// NormalizeProduct: a product with no unit resolves to "pcs" and an empty
// description becomes "Fresh {Name}". Returns a non-nil slice.
func NormalizeProducts(ps []ProductRecord) []ProductRecord {
	out := make([]ProductRecord, 0, len(ps))
	for _, p := range ps {
		p = NormalizeProduct(p)
		if p.Unit == "" {
			p.Unit = "pcs"
		}
		if p.Description == "" && p.Name != "" {
			p.Description = "Fresh " + p.Name
		}
		out = append(out, p)
	}
	return out
}
