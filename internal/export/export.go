// Package export renders the stored sessions as an Excel workbook: one
// sheet of business rows, one sheet of product rows keyed by session id.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"voice-catalog-go/internal/store"
)

const (
	businessSheet = "Businesses"
	productSheet  = "Products"
)

var businessHeaders = []string{
	"Session", "Person Name", "Business Name", "Address", "City", "State",
	"Pincode", "GST Number", "Category", "Subcategory", "Email", "Phone",
	"Website", "Established Year", "Product Count",
}

var productHeaders = []string{
	"Session", "Name", "Price", "Category", "Description", "Unit", "Quantity",
}

// BuildWorkbook assembles the export file. The caller owns the returned
// file and is responsible for closing it.
func BuildWorkbook(sessions []store.Session) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", businessSheet); err != nil {
		return nil, fmt.Errorf("failed to name business sheet: %w", err)
	}
	if _, err := f.NewSheet(productSheet); err != nil {
		return nil, fmt.Errorf("failed to create product sheet: %w", err)
	}

	if err := writeRow(f, businessSheet, 1, toCells(businessHeaders)); err != nil {
		return nil, err
	}
	if err := writeRow(f, productSheet, 1, toCells(productHeaders)); err != nil {
		return nil, err
	}

	productRow := 2
	for i, sess := range sessions {
		rec := sess.Record
		row := []any{
			sess.ID, rec.PersonName, rec.Name, rec.Address, rec.City,
			rec.State, rec.Pincode, rec.GSTNumber, rec.Category,
			rec.Subcategory, rec.Email, rec.Phone, rec.Website,
			rec.EstablishedYear, len(rec.Products),
		}
		if err := writeRow(f, businessSheet, i+2, row); err != nil {
			return nil, err
		}

		for _, p := range rec.Products {
			row := []any{sess.ID, p.Name, p.Price, p.Category, p.Description, p.Unit, p.Quantity}
			if err := writeRow(f, productSheet, productRow, row); err != nil {
				return nil, err
			}
			productRow++
		}
	}

	return f, nil
}

func toCells(headers []string) []any {
	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d on %s: %w", row, sheet, err)
	}
	return nil
}
