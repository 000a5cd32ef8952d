package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

type column int

const (
	colType column = iota
	colCountry
	colContinent
	colCategory
	numColumns
)

var columnNames = [numColumns]string{"tipo", "pais", "continente", "categoria"}

// headerAliases maps accepted header names (lower-cased, trimmed) to columns.
var headerAliases = map[string]column{
	"tipo":       colType,
	"type":       colType,
	"pais":       colCountry,
	"país":       colCountry,
	"country":    colCountry,
	"continente": colContinent,
	"continent":  colContinent,
	"categoria":  colCategory,
	"category":   colCategory,
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseBytes parses CSV data into titles. See Parse.
func ParseBytes(data []byte) ([]Title, error) {
	return Parse(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
}

// Parse reads a CSV with a header row naming the tipo, pais, continente
// and categoria columns (English names are accepted too). Other columns are
// ignored. Values are kept verbatim apart from NFC normalization of the
// category, and CategoryBase is derived for every row.
func Parse(r io.Reader) ([]Title, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformed, err)
	}

	index := [numColumns]int{-1, -1, -1, -1}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if col, ok := headerAliases[key]; ok && index[col] < 0 {
			index[col] = i
		}
	}

	var missing []string
	for col, idx := range index {
		if idx < 0 {
			missing = append(missing, columnNames[col])
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	field := func(row []string, col column) string {
		if i := index[col]; i < len(row) {
			return row[i]
		}
		return ""
	}

	var titles []Title
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		category := norm.NFC.String(field(row, colCategory))
		titles = append(titles, Title{
			Type:         field(row, colType),
			Country:      field(row, colCountry),
			Continent:    field(row, colContinent),
			Category:     category,
			CategoryBase: CategoryBase(category),
		})
	}

	return titles, nil
}
