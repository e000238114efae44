package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-catalog-go/internal/record"
)

func TestExtractBusinessFullTranscript(t *testing.T) {
	transcript := "our shop is in model town and we sell rice and milk. " +
		"our business name is gupta general store and we are in jaipur. " +
		"pincode 302001. phone 9876543210. gst 08ABCDE1234F1Z5. " +
		"email gupta@example.com. we started in 2005"

	rec := ExtractBusiness(transcript)

	assert.Equal(t, "Gupta General Store", rec.Name)
	assert.Equal(t, "Model Town", rec.Address)
	assert.Equal(t, "Jaipur", rec.City)
	assert.Equal(t, "Jaipur", rec.State)
	assert.Equal(t, "302001", rec.Pincode)
	assert.Equal(t, "9876543210", rec.Phone)
	assert.Equal(t, "08ABCDE1234F1Z5", rec.GSTNumber)
	assert.Equal(t, "gupta@example.com", rec.Email)
	assert.Equal(t, "2005", rec.EstablishedYear)
	assert.Equal(t, "Retail", rec.Category)

	require.Len(t, rec.Products, 2)
	assert.Equal(t, record.ProductRecord{
		Name:        "Rice",
		Price:       0,
		Description: "Fresh Rice",
		Unit:        "",
		Quantity:    1,
	}, rec.Products[0])
	assert.Equal(t, "Milk", rec.Products[1].Name)
}

func TestExtractBusinessPersonName(t *testing.T) {
	rec := ExtractBusiness("my name is ravi kumar and i sell vegetables")
	assert.Equal(t, "Ravi Kumar", rec.PersonName)
}

func TestExtractBusinessEstablishedYear(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       string
	}{
		{
			name:       "context word anywhere accepts the year",
			transcript: "it was started around 1998",
			want:       "1998",
		},
		{
			name:       "no context word rejects a plausible year",
			transcript: "call 1998 for more info",
			want:       "",
		},
		{
			name:       "out of range years are skipped",
			transcript: "we started in 1850",
			want:       "",
		},
		{
			name:       "first in-range candidate wins",
			transcript: "started in 2030 but registered in 2010",
			want:       "2010",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractBusiness(tt.transcript).EstablishedYear)
		})
	}
}

func TestExtractBusinessFirstPincodeWins(t *testing.T) {
	rec := ExtractBusiness("pincode 160017 and also 110001")
	assert.Equal(t, "160017", rec.Pincode)
}

func TestExtractBusinessContactFields(t *testing.T) {
	rec := ExtractBusiness("visit www.sharma-stores.com or mail info@sharma.co")
	assert.Equal(t, "www.sharma-stores.com", rec.Website)
	assert.Equal(t, "info@sharma.co", rec.Email)
}

func TestExtractBusinessRejectsMalformedGST(t *testing.T) {
	// One character short of the 15-character format.
	rec := ExtractBusiness("our gst number is 12ABCDE1234F1Z")
	assert.Equal(t, "", rec.GSTNumber)
}

func TestExtractBusinessMultiWordState(t *testing.T) {
	rec := ExtractBusiness("the shop operates from tamil nadu")
	assert.Equal(t, "Tamil Nadu", rec.State)
}

func TestExtractBusinessProductHintsCappedAtThree(t *testing.T) {
	rec := ExtractBusiness("we sell vegetables fruits rice milk and bread")
	require.Len(t, rec.Products, 3)
	assert.Equal(t, "Vegetable", rec.Products[0].Name)
	assert.Equal(t, "Fruit", rec.Products[1].Name)
	assert.Equal(t, "Rice", rec.Products[2].Name)
}

func TestExtractBusinessTotality(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"zzz qqq 123",
		string([]byte{0xff, 0xfe, 0x00, 'a'}),
	}
	for _, in := range inputs {
		rec := ExtractBusiness(in)
		require.NotNil(t, rec.Products)
		assert.Equal(t, "", rec.Name)
		assert.Equal(t, "", rec.Pincode)
	}
}
