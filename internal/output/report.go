package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/rothcompare/internal/domain"
)

// ErrUnsupportedFormat is returned for unknown format names.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// GenerateReport writes the comparison in the requested format to dir and
// returns the files created. "all" writes every file-oriented format.
func GenerateReport(results *domain.Comparison, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, f := range []Formatter{CSVDetailedExporter{}, CSVSummarizer{}, JSONFormatter{}, PDFChartFormatter{}} {
			name, err := WriteFormatted(f, results, dir)
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
		return files, nil
	}
	f, err := lookup(format)
	if err != nil {
		return nil, err
	}
	name, err := WriteFormatted(f, results, dir)
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// Render writes the comparison in the requested format to w.
func Render(w io.Writer, results *domain.Comparison, format string) error {
	f, err := lookup(format)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

func lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	// enrich error with available formatters and aliases
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
