package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-catalog-go/internal/record"
)

func TestExtractProductsPatternFamilies(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       record.ProductRecord
	}{
		{
			name:       "quantity unit name price",
			transcript: "2 kg tomatoes at 50 rupees",
			want:       record.ProductRecord{Name: "Tomatoes", Price: 50, Category: "Food", Description: "Fresh Tomatoes", Unit: "kg", Quantity: 2},
		},
		{
			name:       "name price with default unit",
			transcript: "tomatoes at 50 rupees",
			want:       record.ProductRecord{Name: "Tomatoes", Price: 50, Category: "Food", Description: "Fresh Tomatoes", Unit: "pcs", Quantity: 1},
		},
		{
			name:       "name price per unit",
			transcript: "tomatoes at 50 per kg",
			want:       record.ProductRecord{Name: "Tomatoes", Price: 50, Category: "Food", Description: "Fresh Tomatoes", Unit: "kg", Quantity: 1},
		},
		{
			name:       "quantity unit name without price",
			transcript: "2 kg tomatoes",
			want:       record.ProductRecord{Name: "Tomatoes", Price: 0, Category: "Food", Description: "Fresh Tomatoes", Unit: "kg", Quantity: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := ExtractProducts(tt.transcript)
			require.NotEmpty(t, products)
			assert.Equal(t, tt.want, products[0])
		})
	}
}

func TestExtractProductsCappedAtFive(t *testing.T) {
	products := ExtractProducts("rice wheat milk bread sugar salt tea coffee")
	require.Len(t, products, 5)

	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"Rice", "Wheat", "Milk", "Bread", "Sugar"}, names)
}

func TestExtractProductsDeduplicates(t *testing.T) {
	products := ExtractProducts("rice and more rice")

	count := 0
	for _, p := range products {
		if p.Name == "Rice" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractProductsKeywordScan(t *testing.T) {
	products := ExtractProducts("we also stock shampoo")

	var shampoo *record.ProductRecord
	for i := range products {
		if products[i].Name == "Shampoo" {
			shampoo = &products[i]
			break
		}
	}
	require.NotNil(t, shampoo)
	assert.Equal(t, "Home & Kitchen", shampoo.Category)
	assert.Equal(t, "pcs", shampoo.Unit)
	assert.Equal(t, 1, shampoo.Quantity)
}

func TestExtractProductsTotality(t *testing.T) {
	for _, in := range []string{"", "   ", "a b c", string([]byte{0xff, 0x00})} {
		products := ExtractProducts(in)
		require.NotNil(t, products)
		assert.Empty(t, products)
	}
}
