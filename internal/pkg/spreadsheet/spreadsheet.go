package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrCorruptFile       = errors.New("spreadsheet could not be read")
	ErrEmptyFile         = errors.New("spreadsheet is empty")
)

// Reader reads the first worksheet of an uploaded export into rows of cells.
// No row is treated as a header.
type Reader struct {
	// MaxXLSRows bounds legacy workbook reads.
	MaxXLSRows int
}

func NewReader() *Reader {
	return &Reader{MaxXLSRows: 100000}
}

// Read dispatches on the file extension. Rows are padded to the widest row.
func (rd *Reader) Read(r io.Reader, filename string) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}

	var rows [][]string
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(data)
	case ".xls":
		rows, err = rd.readXLS(data)
	case ".csv", ".txt":
		rows, err = readCSV(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	return pad(rows), nil
}

func readXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrEmptyFile
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}
	return rows, nil
}

func (rd *Reader) readXLS(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}
	if workbook.NumSheets() == 0 {
		return nil, ErrEmptyFile
	}

	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return nil, ErrEmptyFile
	}

	lastRow := min(int(sheet.MaxRow), rd.MaxXLSRows)
	rows := make([][]string, 0, lastRow+1)
	for i := 0; i <= lastRow; i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, []string{})
			continue
		}
		cells := make([]string, row.LastCol())
		for j := range cells {
			cells[j] = row.Col(j)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// readCSV decodes latin-1 text, allows ragged records and drops spaces that
// follow a delimiter.
func readCSV(data []byte) ([][]string, error) {
	decoded := charmap.ISO8859_1.NewDecoder().Reader(bytes.NewReader(data))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}
	return rows, nil
}

func pad(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	for i, row := range rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			rows[i] = padded
		}
	}
	return rows
}
