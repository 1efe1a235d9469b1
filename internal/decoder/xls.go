package decoder

import (
	"bytes"
	"fmt"
	"io"

	"github.com/extrame/xls"
)

// XLS decodes legacy BIFF workbooks. Every cell is returned as text.
type XLS struct {
	Charset string
}

func NewXLS() *XLS {
	return &XLS{Charset: "utf-8"}
}

func (x *XLS) Decode(r io.Reader) ([][]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}

	book, err := xls.OpenReader(bytes.NewReader(data), x.Charset)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	if book.NumSheets() == 0 {
		return nil, ErrNoSheet
	}

	sheet := book.GetSheet(0)
	if sheet == nil {
		return nil, ErrNoSheet
	}

	var rows [][]any
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}

		var record []string
		for c := 0; c < row.LastCol(); c++ {
			record = append(record, row.Col(c))
		}
		rows = append(rows, stringsToCells(record))
	}

	return rows, nil
}
