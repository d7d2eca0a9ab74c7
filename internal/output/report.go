package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/finwise/fincalc/internal/domain"
)

// ErrUnsupportedFormat is returned for format names with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// GenerateReport renders report with the named formatter and writes it to w.
func GenerateReport(w io.Writer, report *domain.BatchReport, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(w, f, report)
}

// ValidateFormat reports whether format names a registered formatter.
func ValidateFormat(format string) error {
	if GetFormatterByName(format) == nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return nil
}
