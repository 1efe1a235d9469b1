// Package fec writes and reads the pipe-delimited canonical journal format
// used to hand accepted import rows to the ledger.
package fec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hance08/kea-import/internal/model"
	"github.com/hance08/kea-import/internal/utils"
)

const (
	Separator = "|"
	LineBreak = "\n"
)

// Columns lists the canonical header names in order.
var Columns = []string{
	"JournalCode",
	"JournalLib",
	"EcritureNum",
	"EcritureDate",
	"CompteNum",
	"CompteLib",
	"CompAuxNum",
	"CompAuxLib",
	"PieceRef",
	"PieceDate",
	"EcritureLib",
	"Debit",
	"Credit",
	"EcritureLet",
	"DateLet",
	"ValidDate",
	"Montantdevise",
	"Idevise",
}

// Header returns the header line without a trailing line break.
func Header() string {
	return strings.Join(Columns, Separator)
}

// Writer emits the header followed by one line per row.
type Writer struct {
	w           *bufio.Writer
	wroteHeader bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write appends one row. The header is written before the first row.
func (fw *Writer) Write(row model.ImportRow) error {
	if err := fw.writeHeader(); err != nil {
		return err
	}
	if _, err := fw.w.WriteString(LineBreak + FormatRow(row)); err != nil {
		return fmt.Errorf("failed to write line for row %d: %w", row.RowIndex, err)
	}
	return nil
}

// WriteAll writes every row and flushes.
func (fw *Writer) WriteAll(rows []model.ImportRow) error {
	if err := fw.writeHeader(); err != nil {
		return err
	}
	for _, row := range rows {
		if err := fw.Write(row); err != nil {
			return err
		}
	}
	return fw.Flush()
}

// Flush writes any buffered data. A writer with no rows still emits the header.
func (fw *Writer) Flush() error {
	if err := fw.writeHeader(); err != nil {
		return err
	}
	return fw.w.Flush()
}

func (fw *Writer) writeHeader() error {
	if fw.wroteHeader {
		return nil
	}
	if _, err := fw.w.WriteString(Header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	fw.wroteHeader = true
	return nil
}

// Serialize renders rows as a complete payload: header, then one line per
// row, joined by "\n" with no trailing line break.
func Serialize(rows []model.ImportRow) string {
	var sb strings.Builder
	// strings.Builder does not fail on write.
	_ = NewWriter(&sb).WriteAll(rows)
	return sb.String()
}

// fieldCleaner blanks out characters that would split a field or a line.
var fieldCleaner = strings.NewReplacer(Separator, " ", "\r", " ", "\n", " ")

// FormatRow renders a single data line. Separators and line breaks inside
// text fields become spaces.
func FormatRow(row model.ImportRow) string {
	date := compactDate(row.Date)
	journal := fieldCleaner.Replace(row.JournalCode)
	voucher := fieldCleaner.Replace(row.VoucherRef)
	account := fieldCleaner.Replace(row.AccountCode)
	label := fieldCleaner.Replace(row.Label)

	accountLabel := label
	if accountLabel == "" {
		accountLabel = "Compte " + account
	}

	fields := []string{
		journal,
		"Journal " + journal,
		voucher,
		date,
		account,
		accountLabel,
		"",
		"",
		voucher,
		date,
		label,
		utils.FormatComma(row.Debit),
		utils.FormatComma(row.Credit),
		"",
		"",
		"",
		"",
		"",
	}
	return strings.Join(fields, Separator)
}

// compactDate turns YYYY-MM-DD into YYYYMMDD.
func compactDate(date string) string {
	return strings.ReplaceAll(date, "-", "")
}
