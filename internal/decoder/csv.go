package decoder

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// CSV decodes delimited text. When Comma is zero the delimiter is guessed
// from the header line: ';' if it has more semicolons than commas, else ','.
type CSV struct {
	Comma rune
}

func NewCSV() *CSV {
	return &CSV{}
}

func (c *CSV) Decode(r io.Reader) ([][]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = c.Comma
	if reader.Comma == 0 {
		reader.Comma = sniffDelimiter(data)
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	// encoding/csv drops empty lines; they are put back as empty rows so
	// every record keeps its line position.
	var rows [][]any
	nextLine, newlines, consumed := 1, 0, int64(0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse csv: %w", err)
		}

		line, _ := reader.FieldPos(0)
		for ; nextLine < line; nextLine++ {
			rows = append(rows, []any{})
		}
		rows = append(rows, stringsToCells(record))

		end := reader.InputOffset()
		newlines += bytes.Count(data[consumed:end], []byte("\n"))
		nextLine = newlines + 1
		consumed = end
	}
	return rows, nil
}

func sniffDelimiter(data []byte) rune {
	line, _, _ := bufio.NewReader(bytes.NewReader(data)).ReadLine()
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}
	return ','
}
