package decoder

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSX decodes Office Open XML workbooks. Values are read raw so that
// amounts keep full precision; numeric cells carrying a date number
// format are returned as time.Time.
type XLSX struct{}

func NewXLSX() *XLSX {
	return &XLSX{}
}

func (x *XLSX) Decode(r io.Reader) ([][]any, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}
	sheet := sheets[0]

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	dates := newDateStyles(f)
	rows := make([][]any, len(raw))
	for r, record := range raw {
		cells := make([]any, len(record))
		for c, v := range record {
			cells[c] = v
			if v == "" {
				continue
			}

			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				continue
			}
			if t, ok := dates.timeValue(sheet, cell, v); ok {
				cells[c] = t
			}
		}
		rows[r] = cells
	}

	return rows, nil
}

// dateStyles caches whether a style id formats numbers as dates.
type dateStyles struct {
	f     *excelize.File
	cache map[int]bool
}

func newDateStyles(f *excelize.File) *dateStyles {
	return &dateStyles{f: f, cache: make(map[int]bool)}
}

func (d *dateStyles) timeValue(sheet, cell, raw string) (any, bool) {
	id, err := d.f.GetCellStyle(sheet, cell)
	if err != nil || !d.isDate(id) {
		return nil, false
	}

	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return nil, false
	}
	return t, true
}

func (d *dateStyles) isDate(id int) bool {
	if v, ok := d.cache[id]; ok {
		return v
	}

	v := false
	if style, err := d.f.GetStyle(id); err == nil && style != nil {
		v = isDateNumFmt(style.NumFmt)
		if style.CustomNumFmt != nil {
			v = isDateLayout(*style.CustomNumFmt)
		}
	}
	d.cache[id] = v
	return v
}

// built-in number formats 14-22 and the CJK date ids
func isDateNumFmt(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

func isDateLayout(layout string) bool {
	var b strings.Builder
	quoted, bracket := false, false
	for _, r := range strings.ToLower(layout) {
		switch {
		case r == '"':
			quoted = !quoted
		case r == '[' && !quoted:
			bracket = true
		case r == ']' && !quoted:
			bracket = false
		case !quoted && !bracket:
			b.WriteRune(r)
		}
	}
	s := b.String()
	return strings.ContainsAny(s, "yd")
}
