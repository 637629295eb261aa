// Package export renders contact sets as downloadable files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"contact-analytics-service/internal/contacts/core/domain"
	"contact-analytics-service/internal/contacts/core/ports"
)

// CSV writes UTF-8, comma separated rows with a header of the fetched
// columns.
type CSV struct{}

var _ ports.ContactExporter = CSV{}

func (CSV) Format() string      { return "csv" }
func (CSV) ContentType() string { return "text/csv; charset=utf-8" }

func (CSV) Write(w io.Writer, set domain.ContactSet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(set.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(set.Columns))
	for _, rec := range set.Records {
		for i, col := range set.Columns {
			row[i] = rec.Value(col)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %s: %w", rec.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
