package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"contact-analytics-service/internal/contacts/core/domain"
	"contact-analytics-service/internal/contacts/core/ports"
)

const (
	exportPrefix  = "mental_health_data"
	defaultFormat = "csv"
)

type ExportInput struct {
	Query  ContactQueryInput
	Format string // "csv" (default) or any registered exporter
}

type ExportResult struct {
	FileName    string
	ContentType string
	Body        []byte
	Rows        int
}

type ExportContactsUseCase struct {
	reader    ports.ContactReaderPort
	exporters map[string]ports.ContactExporter
	opts      Options
}

func NewExportContactsUseCase(reader ports.ContactReaderPort, opts Options, exporters ...ports.ContactExporter) *ExportContactsUseCase {
	m := make(map[string]ports.ContactExporter, len(exporters))
	for _, e := range exporters {
		m[e.Format()] = e
	}
	return &ExportContactsUseCase{reader: reader, exporters: m, opts: opts.withDefaults()}
}

// Execute serializes the currently filtered rows.
func (uc *ExportContactsUseCase) Execute(ctx context.Context, in ExportInput) (*ExportResult, error) {
	format := strings.ToLower(strings.TrimSpace(in.Format))
	if format == "" {
		format = defaultFormat
	}
	exporter, ok := uc.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidExportFormat, in.Format)
	}

	f, err := uc.opts.resolveFilters(in.Query)
	if err != nil {
		return nil, err
	}
	set, err := loadFiltered(ctx, uc.reader, f)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := exporter.Write(&buf, set); err != nil {
		return nil, fmt.Errorf("export %s: %w", format, err)
	}

	return &ExportResult{
		FileName:    uc.fileName(f, format),
		ContentType: exporter.ContentType(),
		Body:        buf.Bytes(),
		Rows:        set.Len(),
	}, nil
}

// fileName uses the active date range, or today's date when the range is
// open.
func (uc *ExportContactsUseCase) fileName(f domain.Filters, ext string) string {
	if f.DateFrom != nil && f.DateTo != nil {
		return fmt.Sprintf("%s_%s_%s.%s", exportPrefix, f.DateFrom.Format("2006-01-02"), f.DateTo.Format("2006-01-02"), ext)
	}
	return fmt.Sprintf("%s_%s.%s", exportPrefix, uc.opts.Now().Format("2006-01-02"), ext)
}
