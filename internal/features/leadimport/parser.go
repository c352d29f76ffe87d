package leadimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

const (
	// DefaultMaxUploadMB is the intake size ceiling for import files
	DefaultMaxUploadMB = 10

	// DefaultMaxImportRows bounds one import batch so the in-memory
	// transform and the single upload request stay tractable
	DefaultMaxImportRows = 1000

	// sampleValueCap is how many non-empty sample values are kept per column
	sampleValueCap = 4
)

// ValidateUpload gates a file before any row is read: extension and
// byte size only, both checked synchronously.
func ValidateUpload(fileName string, sizeBytes int64, maxUploadMB int) error {
	if !strings.HasSuffix(strings.ToLower(fileName), ".csv") {
		return ErrUnsupportedFile
	}
	if maxUploadMB <= 0 {
		maxUploadMB = DefaultMaxUploadMB
	}
	if sizeBytes > int64(maxUploadMB)<<20 {
		return ErrFileTooLarge
	}
	return nil
}

// ParseLeadCSV reads the whole file: first record is the header row,
// fully empty lines are skipped, and every row value is keyed by its
// header string so column order can never silently misalign.
func ParseLeadCSV(r io.Reader) ([]string, []RawRow, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	record, err := reader.Read()
	if err == io.EOF {
		return nil, nil, ErrEmptyFile
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	headers := make([]string, len(record))
	for i, h := range record {
		headers[i] = cleanHeader(h)
	}

	var rows []RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		if isEmptyRecord(record) {
			continue
		}

		row := make(RawRow, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return headers, rows, nil
}

// CheckRowCount enforces the batch size invariants immediately after
// parse, before any mapping is computed.
func CheckRowCount(rows []RawRow, maxRows int) error {
	if maxRows <= 0 {
		maxRows = DefaultMaxImportRows
	}
	if len(rows) == 0 {
		return ErrEmptyFile
	}
	if len(rows) > maxRows {
		return &TooManyRowsError{Count: len(rows), Limit: maxRows}
	}
	return nil
}

// BuildMappings runs inference once per distinct header, in header
// order, and captures up to four non-empty sample values per column
// from the first rows of the file. Repeated headers collapse to one
// entry; their cells already collapse to one value per row key, and a
// single entry keeps every mapping edit total over that column.
func BuildMappings(headers []string, rows []RawRow) []ColumnMapping {
	mappings := make([]ColumnMapping, 0, len(headers))
	seen := make(map[string]bool, len(headers))
	for _, header := range headers {
		if seen[header] {
			continue
		}
		seen[header] = true
		mappings = append(mappings, ColumnMapping{
			SourceColumn: header,
			TargetField:  InferTargetField(header),
			SampleValues: sampleValues(header, rows),
		})
	}
	return mappings
}

func sampleValues(header string, rows []RawRow) []string {
	samples := make([]string, 0, sampleValueCap)
	for _, row := range rows {
		if len(samples) == sampleValueCap {
			break
		}
		if v := row[header]; strings.TrimSpace(v) != "" {
			samples = append(samples, v)
		}
	}
	return samples
}

// cleanHeader trims whitespace and a leading UTF-8 BOM. Quoting is
// already undone by encoding/csv, so the header text otherwise stays
// exactly as the client sent it.
func cleanHeader(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
}

func isEmptyRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
