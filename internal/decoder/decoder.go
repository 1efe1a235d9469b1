// Package decoder turns spreadsheet files into rows of raw cell values.
// Row 0 of the result is the header row.
package decoder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNoSheet           = errors.New("workbook has no sheet")
)

// Decoder reads the first sheet of a workbook.
// Cell values are strings, except date cells which are time.Time.
type Decoder interface {
	Decode(r io.Reader) ([][]any, error)
}

// Extensions lists the file extensions ForFile understands.
var Extensions = []string{".xlsx", ".xlsm", ".xls", ".csv"}

// ForFile picks a decoder from the file extension.
func ForFile(path string) (Decoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return NewXLSX(), nil
	case ".xls":
		return NewXLS(), nil
	case ".csv":
		return NewCSV(), nil
	default:
		return nil, fmt.Errorf("%w: %q (expected one of %s)", ErrUnsupportedFormat, ext, strings.Join(Extensions, ", "))
	}
}

// DecodeFile opens path and decodes it with the decoder matching its extension.
func DecodeFile(path string) ([][]any, error) {
	d, err := ForFile(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := d.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}

func stringsToCells(record []string) []any {
	cells := make([]any, len(record))
	for i, v := range record {
		cells[i] = v
	}
	return cells
}
