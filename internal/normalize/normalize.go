// Package normalize turns raw spreadsheet cells into typed import rows.
//
// Accepted date shapes, tried in order:
//
//	native time.Time cell values
//	D/M/YYYY with '/', '.' or '-' separators (day and month may be 1 or 2 digits)
//	YYYY-MM-DD as a prefix (trailing time parts are ignored)
//	YYYYMMDD
//
// Anything else, including a shape that names an impossible calendar day,
// normalizes to the empty string and is rejected later by validation.
//
// Amounts are taken as-is from numeric cells. Text amounts have all
// whitespace removed and the first comma read as the decimal separator;
// the longest numeric prefix is then parsed. Text that has no numeric
// prefix normalizes to zero. Every amount is rounded to two places.
package normalize

import (
	"math"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/hance08/kea-import/internal/constants"
	"github.com/hance08/kea-import/internal/model"
	"github.com/shopspring/decimal"
)

var (
	dmyPattern     = regexp.MustCompile(`^(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{4})$`)
	isoPattern     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	compactPattern = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})$`)
	numberPrefix   = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// Normalizer converts decoded rows into ImportRows.
type Normalizer struct {
	defaultJournalCode string
}

func NewNormalizer(defaultJournalCode string) *Normalizer {
	return &Normalizer{
		defaultJournalCode: strings.ToUpper(strings.TrimSpace(defaultJournalCode)),
	}
}

// NormalizeRows normalizes data rows (header already removed). The i-th row
// gets RowIndex i+1. Blank rows are dropped but keep their index slot.
func (n *Normalizer) NormalizeRows(rows [][]any) []model.ImportRow {
	result := make([]model.ImportRow, 0, len(rows))
	for i, cells := range rows {
		row := n.NormalizeRow(i+1, cells)
		if row.IsBlank() {
			continue
		}
		result = append(result, row)
	}
	return result
}

// NormalizeRow builds one ImportRow from its cells. Validation fields are left unset.
// A row whose only content is the defaulted journal code is reported blank.
func (n *Normalizer) NormalizeRow(rowIndex int, cells []any) model.ImportRow {
	row := model.ImportRow{
		RowIndex:    rowIndex,
		Date:        NormalizeDate(cellAt(cells, constants.ColDate)),
		JournalCode: strings.ToUpper(strings.TrimSpace(Text(cellAt(cells, constants.ColJournalCode)))),
		VoucherRef:  strings.TrimSpace(Text(cellAt(cells, constants.ColVoucherRef))),
		AccountCode: NormalizeAccountCode(cellAt(cells, constants.ColAccountCode)),
		Label:       strings.TrimSpace(Text(cellAt(cells, constants.ColLabel))),
		Debit:       NormalizeAmount(cellAt(cells, constants.ColDebit)),
		Credit:      NormalizeAmount(cellAt(cells, constants.ColCredit)),
	}

	if row.IsBlank() {
		return row
	}

	if row.JournalCode == "" {
		row.JournalCode = n.defaultJournalCode
	}
	return row
}

// NormalizeDate returns the cell as YYYY-MM-DD, or "" when it has no accepted shape.
func NormalizeDate(v any) string {
	if t, ok := v.(time.Time); ok {
		if t.IsZero() {
			return ""
		}
		return t.Format(constants.DateFormat)
	}

	s := strings.TrimSpace(Text(v))
	if s == "" {
		return ""
	}

	if m := dmyPattern.FindStringSubmatch(s); m != nil {
		return calendarDate(m[3], pad2(m[2]), pad2(m[1]))
	}
	if m := isoPattern.FindStringSubmatch(s); m != nil {
		return calendarDate(m[1], m[2], m[3])
	}
	if m := compactPattern.FindStringSubmatch(s); m != nil {
		return calendarDate(m[1], m[2], m[3])
	}
	return ""
}

// NormalizeAmount returns the cell as a decimal rounded to two places; unreadable input is zero.
func NormalizeAmount(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x.Round(constants.AmountPlaces)
	case float64:
		return fromFloat(x)
	case float32:
		return fromFloat(float64(x))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		d, err := decimal.NewFromString(Text(x))
		if err != nil {
			return decimal.Zero
		}
		return d
	}

	s := stripSpace(Text(v))
	s = strings.Replace(s, ",", ".", 1)

	prefix := numberPrefix.FindString(s)
	if prefix == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero
	}
	return d.Round(constants.AmountPlaces)
}

// NormalizeAccountCode strips every whitespace character. Format is checked by validation.
func NormalizeAccountCode(v any) string {
	return stripSpace(Text(v))
}

func cellAt(cells []any, index int) any {
	if index < len(cells) {
		return cells[index]
	}
	return nil
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f).Round(constants.AmountPlaces)
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func calendarDate(year, month, day string) string {
	s := year + "-" + month + "-" + day
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return ""
	}
	return s
}
