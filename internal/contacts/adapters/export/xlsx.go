package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"contact-analytics-service/internal/contacts/core/domain"
	"contact-analytics-service/internal/contacts/core/ports"
)

const SheetName = "contacts"

// XLSX writes a single sheet workbook with the same layout as CSV.
type XLSX struct{}

var _ ports.ContactExporter = XLSX{}

func (XLSX) Format() string { return "xlsx" }
func (XLSX) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSX) Write(w io.Writer, set domain.ContactSet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("stream writer: %w", err)
	}

	header := make([]any, len(set.Columns))
	for i, c := range set.Columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for n, rec := range set.Records {
		row := make([]any, len(set.Columns))
		for i, col := range set.Columns {
			row[i] = rec.Value(col)
		}
		cell, err := excelize.CoordinatesToCellName(1, n+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write row %s: %w", rec.ID, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
