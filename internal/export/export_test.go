package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-catalog-go/internal/record"
	"voice-catalog-go/internal/store"
)

func TestBuildWorkbook(t *testing.T) {
	sessions := []store.Session{
		{
			ID: "session_20250314_092653",
			Record: record.NormalizeBusiness(record.BusinessRecord{
				Name: "Sharma Stores",
				City: "Pune",
				Products: []record.ProductRecord{
					{Name: "Rice", Price: 60, Unit: "kg", Quantity: 2, Category: "Food", Description: "Fresh Rice"},
					{Name: "Milk", Price: 40, Unit: "liter", Quantity: 1, Category: "Food", Description: "Fresh Milk"},
				},
			}),
		},
		{
			ID:     "session_20250314_101500",
			Record: record.NormalizeBusiness(record.BusinessRecord{Name: "Empty Shelf"}),
		},
	}

	f, err := BuildWorkbook(sessions)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Businesses", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Sharma Stores", name)

	count, err := f.GetCellValue("Businesses", "O2")
	require.NoError(t, err)
	assert.Equal(t, "2", count)

	count, err = f.GetCellValue("Businesses", "O3")
	require.NoError(t, err)
	assert.Equal(t, "0", count)

	// Product rows from both sessions share one sheet, keyed by session id.
	sess, err := f.GetCellValue("Products", "A2")
	require.NoError(t, err)
	assert.Equal(t, "session_20250314_092653", sess)

	pname, err := f.GetCellValue("Products", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Milk", pname)

	empty, err := f.GetCellValue("Products", "A4")
	require.NoError(t, err)
	assert.Equal(t, "", empty, "session without products contributes no product rows")
}

func TestBuildWorkbookEmpty(t *testing.T) {
	f, err := BuildWorkbook(nil)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Businesses", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Session", header)
}
