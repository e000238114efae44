package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessCategory(t *testing.T) {
	tests := []struct {
		transcript string
		want       string
	}{
		{"i run a small grocery shop near the market", "Retail"},
		{"we opened a bakery last year", "Food & Restaurant"},
		{"my clinic is in sector 17", "Healthcare"},
		{"we repair mobile phones", "Services"},
		{"i teach at a coaching institute", "Education"},
		{"we sell cars and vehicles", "Automotive"},
		{"we manufacture industrial pumps", ""},
	}

	for _, tt := range tests {
		t.Run(tt.transcript, func(t *testing.T) {
			assert.Equal(t, tt.want, BusinessCategory(tt.transcript))
		})
	}
}

func TestBusinessCategoryOrderDecidesTies(t *testing.T) {
	// "shop" (Retail) and "restaurant" (Food & Restaurant) both appear;
	// the earlier table entry wins.
	assert.Equal(t, "Retail", BusinessCategory("a shop next to a restaurant"))
}

func TestProductCategory(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"tomato", "Food"},
		{"fresh milk", "Food"},
		{"phone", "Electronics"},
		{"cotton shirt", "Clothing"},
		{"soap", "Home & Kitchen"},
		{"notebook", "Books"},
		{"medicine", "Health"},
		{"mystery widget", "General"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProductCategory(tt.name))
		})
	}
}
