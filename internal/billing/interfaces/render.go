package interfaces

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	billing "theater-billing/internal/billing/domain"
	"theater-billing/internal/observability/metrics"
)

const (
	FormatText = "text"
	FormatHTML = "html"
	FormatJSON = "json"
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// ErrUnsupportedFormat is returned for unknown statement formats.
var ErrUnsupportedFormat = errors.New("statement render: unsupported format")

var contentTypes = map[string]string{
	FormatText: "text/plain; charset=utf-8",
	FormatHTML: "text/html; charset=utf-8",
	FormatJSON: "application/json",
	FormatPDF:  "application/pdf",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// ContentType returns the MIME type served for a format.
func ContentType(format string) (string, bool) {
	ct, ok := contentTypes[format]
	return ct, ok
}

// Render renders statement data in the requested format.
func Render(format string, data billing.StatementData) ([]byte, error) {
	start := time.Now()
	result := metrics.ResultSuccess
	label := format
	if _, ok := contentTypes[format]; !ok {
		label = "unknown"
	}
	defer func() {
		metrics.ObserveStatementRender(label, result, time.Since(start))
	}()

	out, err := render(format, data)
	if err != nil {
		result = metrics.ResultError
		return nil, err
	}
	return out, nil
}

func render(format string, data billing.StatementData) ([]byte, error) {
	switch format {
	case FormatText:
		return []byte(RenderText(data)), nil
	case FormatHTML:
		out, err := RenderHTML(data)
		if err != nil {
			return nil, err
		}
		return []byte(out), nil
	case FormatJSON:
		return json.Marshal(data)
	case FormatPDF:
		return BuildStatementPDF(data)
	case FormatXLSX:
		return BuildStatementXLSX(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
