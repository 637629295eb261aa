package ports

import (
	"io"

	"contact-analytics-service/internal/contacts/core/domain"
)

// ContactExporter serializes a contact set as a downloadable file. The
// header is the set's column list in schema order.
type ContactExporter interface {
	Format() string // "csv", "xlsx"
	ContentType() string
	Write(w io.Writer, set domain.ContactSet) error
}
