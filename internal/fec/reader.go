package fec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hance08/kea-import/internal/constants"
	"github.com/hance08/kea-import/internal/utils"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyPayload  = errors.New("payload is empty")
	ErrMissingColumn = errors.New("required column missing from header")
)

// required columns; the rest are optional when reading.
var requiredColumns = []string{"JournalCode", "EcritureNum", "EcritureDate", "CompteNum", "Debit", "Credit"}

// Line is one parsed data line of a canonical payload.
type Line struct {
	// Number is the 1-based line number in the payload, header excluded.
	Number        int
	JournalCode   string
	JournalLabel  string
	EntryNumber   string
	EntryDate     string // YYYY-MM-DD
	AccountNumber string
	AccountLabel  string
	PieceRef      string
	PieceDate     string // YYYY-MM-DD, empty if absent
	Label         string
	Debit         decimal.Decimal
	Credit        decimal.Decimal
}

// Reader parses a canonical payload. Columns are located by header name so
// reordered or trimmed exports are accepted as long as the required
// columns are present.
type Reader struct {
	scanner *bufio.Scanner
	index   map[string]int
	line    int
}

func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 1024*1024)
	return &Reader{scanner: s}
}

// Read returns the next data line, or io.EOF when the payload is exhausted.
func (fr *Reader) Read() (Line, error) {
	if fr.index == nil {
		if err := fr.readHeader(); err != nil {
			return Line{}, err
		}
	}

	for fr.scanner.Scan() {
		raw := strings.TrimRight(fr.scanner.Text(), "\r")
		fr.line++
		if strings.TrimSpace(raw) == "" {
			continue
		}
		return fr.parseLine(strings.Split(raw, Separator))
	}
	if err := fr.scanner.Err(); err != nil {
		return Line{}, fmt.Errorf("failed to read payload: %w", err)
	}
	return Line{}, io.EOF
}

// ReadAll reads every remaining data line.
func (fr *Reader) ReadAll() ([]Line, error) {
	var lines []Line
	for {
		l, err := fr.Read()
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
}

// Parse reads a full canonical payload.
func Parse(r io.Reader) ([]Line, error) {
	return NewReader(r).ReadAll()
}

func (fr *Reader) readHeader() error {
	if !fr.scanner.Scan() {
		if err := fr.scanner.Err(); err != nil {
			return fmt.Errorf("failed to read header: %w", err)
		}
		return ErrEmptyPayload
	}

	header := strings.TrimPrefix(strings.TrimRight(fr.scanner.Text(), "\r"), "\ufeff")
	index := make(map[string]int)
	for i, name := range strings.Split(header, Separator) {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	fr.index = index
	return nil
}

func (fr *Reader) parseLine(fields []string) (Line, error) {
	get := func(name string) string {
		i, ok := fr.index[name]
		if !ok || i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	l := Line{
		Number:        fr.line,
		JournalCode:   get("JournalCode"),
		JournalLabel:  get("JournalLib"),
		EntryNumber:   get("EcritureNum"),
		AccountNumber: get("CompteNum"),
		AccountLabel:  get("CompteLib"),
		PieceRef:      get("PieceRef"),
		Label:         get("EcritureLib"),
	}

	var err error
	if l.EntryDate, err = parseDate(get("EcritureDate")); err != nil {
		return Line{}, fmt.Errorf("line %d: %w", fr.line, err)
	}
	if l.PieceDate, err = parseDate(get("PieceDate")); err != nil {
		return Line{}, fmt.Errorf("line %d: %w", fr.line, err)
	}
	if l.Debit, err = utils.ParseComma(get("Debit")); err != nil {
		return Line{}, fmt.Errorf("line %d: %w", fr.line, err)
	}
	if l.Credit, err = utils.ParseComma(get("Credit")); err != nil {
		return Line{}, fmt.Errorf("line %d: %w", fr.line, err)
	}

	return l, nil
}

func parseDate(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	t, err := time.Parse(constants.CompactDateFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYYMMDD)", s)
	}
	return t.Format(constants.DateFormat), nil
}
