package debitnote

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"debitnote-service/internal/domain"
)

// decodeWorkbook turns an uploaded workbook into the ordered header slice of
// the first sheet plus one RawRow per data row. Header order is returned
// explicitly because map iteration order carries no guarantee.
func decodeWorkbook(file io.Reader, filename string) ([]string, []domain.RawRow, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		grid [][]string
		err  error
	)
	switch ext {
	case ".csv":
		grid, err = decodeCSV(file)
	case ".xlsx":
		grid, err = decodeXLSX(file)
	case ".xls":
		grid, err = decodeXLS(file)
	default:
		return nil, nil, fmt.Errorf("unsupported workbook file format: %s", ext)
	}
	if err != nil {
		return nil, nil, err
	}

	if len(grid) == 0 {
		return nil, nil, fmt.Errorf("file is empty or unrecognized")
	}

	headers := grid[0]
	raws := make([]domain.RawRow, 0, len(grid)-1)
	for _, row := range grid[1:] {
		if isEmptyRow(row) {
			continue
		}
		rr := make(domain.RawRow, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rr[h] = row[i]
			} else {
				rr[h] = ""
			}
		}
		raws = append(raws, rr)
	}

	return headers, raws, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func decodeCSV(file io.Reader) ([][]string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	var src io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		// legacy Excel CSV exports arrive as Windows-1252
		src = transform.NewReader(bytes.NewReader(data), charmap.Windows1252.NewDecoder())
	}

	reader := csv.NewReader(src)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	return reader.ReadAll()
}

func decodeXLSX(file io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("the workbook contains no sheets")
	}
	return f.GetRows(sheets[0])
}

func decodeXLS(file io.Reader) ([][]string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		// .xls extension on an OOXML file; retry with excelize
		if _, errX := excelize.OpenReader(bytes.NewReader(data)); errX == nil {
			return decodeXLSX(bytes.NewReader(data))
		}
		return nil, err
	}

	if len(workbook.GetSheets()) == 0 {
		return nil, fmt.Errorf("the .xls file contains no sheets")
	}
	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("failed to open first sheet of .xls file: %w", err)
	}

	var grid [][]string
	for _, row := range sheet.GetRows() {
		var cells []string
		for _, cell := range row.GetCols() {
			cells = append(cells, cell.GetString())
		}
		grid = append(grid, cells)
	}
	return grid, nil
}
