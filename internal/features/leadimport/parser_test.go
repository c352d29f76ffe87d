package leadimport

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name      string
		fileName  string
		sizeBytes int64
		wantErr   error
	}{
		{"csv accepted", "leads.csv", 1024, nil},
		{"uppercase extension accepted", "LEADS.CSV", 1024, nil},
		{"exactly at ceiling accepted", "leads.csv", 10 << 20, nil},
		{"over ceiling rejected", "leads.csv", 10<<20 + 1, ErrFileTooLarge},
		{"xlsx rejected", "leads.xlsx", 1024, ErrUnsupportedFile},
		{"no extension rejected", "leads", 1024, ErrUnsupportedFile},
		{"csv in the middle rejected", "leads.csv.txt", 1024, ErrUnsupportedFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.fileName, tt.sizeBytes, DefaultMaxUploadMB)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateUpload(%q, %d) = %v, want %v", tt.fileName, tt.sizeBytes, err, tt.wantErr)
			}
		})
	}
}

func TestParseLeadCSV(t *testing.T) {
	input := strings.Join([]string{
		"Email,Phone,Notes",
		"alice@example.com,123,first",
		"",
		"bob@example.com,456,second",
		",,",
		"carol@example.com,789,third",
	}, "\n")

	headers, rows, err := ParseLeadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseLeadCSV() error = %v", err)
	}

	wantHeaders := []string{"Email", "Phone", "Notes"}
	if len(headers) != len(wantHeaders) {
		t.Fatalf("got %d headers, want %d", len(headers), len(wantHeaders))
	}
	for i, h := range wantHeaders {
		if headers[i] != h {
			t.Errorf("headers[%d] = %q, want %q", i, headers[i], h)
		}
	}

	// Blank and fully empty lines are skipped
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	// Rows are keyed by header, not position
	if rows[0]["Email"] != "alice@example.com" || rows[0]["Notes"] != "first" {
		t.Errorf("row 0 not keyed by header: %v", rows[0])
	}
	if rows[2]["Phone"] != "789" {
		t.Errorf("row order not preserved: %v", rows[2])
	}
}

func TestParseLeadCSVRaggedRow(t *testing.T) {
	input := "Email,Phone\nalice@example.com\n"

	headers, rows, err := ParseLeadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseLeadCSV() error = %v", err)
	}
	if len(headers) != 2 || len(rows) != 1 {
		t.Fatalf("got %d headers, %d rows", len(headers), len(rows))
	}
	if rows[0]["Phone"] != "" {
		t.Errorf("missing cell should be empty, got %q", rows[0]["Phone"])
	}
}

func TestParseLeadCSVStripsBOM(t *testing.T) {
	input := "\ufeffEmail\nalice@example.com\n"

	headers, _, err := ParseLeadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseLeadCSV() error = %v", err)
	}
	if headers[0] != "Email" {
		t.Errorf("BOM not stripped from header: %q", headers[0])
	}
}

func TestParseLeadCSVEmptyInput(t *testing.T) {
	_, _, err := ParseLeadCSV(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("ParseLeadCSV(empty) = %v, want ErrEmptyFile", err)
	}
}

func TestCheckRowCount(t *testing.T) {
	makeRows := func(n int) []RawRow {
		rows := make([]RawRow, n)
		for i := range rows {
			rows[i] = RawRow{"Email": "x@example.com"}
		}
		return rows
	}

	if err := CheckRowCount(makeRows(0), DefaultMaxImportRows); !errors.Is(err, ErrEmptyFile) {
		t.Errorf("0 rows: got %v, want ErrEmptyFile", err)
	}
	if err := CheckRowCount(makeRows(1000), DefaultMaxImportRows); err != nil {
		t.Errorf("1000 rows: got %v, want nil", err)
	}

	err := CheckRowCount(makeRows(1001), DefaultMaxImportRows)
	var tooMany *TooManyRowsError
	if !errors.As(err, &tooMany) {
		t.Fatalf("1001 rows: got %v, want TooManyRowsError", err)
	}
	if tooMany.Count != 1001 || tooMany.Limit != 1000 {
		t.Errorf("TooManyRowsError = %+v, want Count=1001 Limit=1000", tooMany)
	}
	if !strings.Contains(tooMany.Error(), "1001") || !strings.Contains(tooMany.Error(), "1000") {
		t.Errorf("error message should state count and limit: %q", tooMany.Error())
	}
}

func TestBuildMappings(t *testing.T) {
	headers := []string{"Work Email", "Client Name", "Insurance Provider", "Notes"}
	rows := []RawRow{
		{"Work Email": "a@x.com", "Client Name": "Ann A", "Insurance Provider": "Acme", "Notes": ""},
		{"Work Email": "b@x.com", "Client Name": "", "Insurance Provider": "Acme", "Notes": "vip"},
		{"Work Email": "c@x.com", "Client Name": "Cat C", "Insurance Provider": "Acme", "Notes": "n2"},
		{"Work Email": "d@x.com", "Client Name": "Dan D", "Insurance Provider": "Acme", "Notes": "n3"},
		{"Work Email": "e@x.com", "Client Name": "Eve E", "Insurance Provider": "Acme", "Notes": "n4"},
	}

	mappings := BuildMappings(headers, rows)
	if len(mappings) != 4 {
		t.Fatalf("got %d mappings, want 4", len(mappings))
	}

	wantTargets := []TargetField{TargetEmail, TargetFullName, TargetCompanyName, TargetDoNotImport}
	for i, want := range wantTargets {
		if mappings[i].SourceColumn != headers[i] {
			t.Errorf("mappings[%d].SourceColumn = %q, want %q (header order)", i, mappings[i].SourceColumn, headers[i])
		}
		if mappings[i].TargetField != want {
			t.Errorf("mappings[%d].TargetField = %s, want %s", i, mappings[i].TargetField, want)
		}
	}

	// Sample values cap at four non-empty values
	if got := len(mappings[0].SampleValues); got != 4 {
		t.Errorf("email samples = %d, want 4", got)
	}
	// Empty cells are skipped when sampling
	clientSamples := mappings[1].SampleValues
	if len(clientSamples) != 4 || clientSamples[0] != "Ann A" || clientSamples[1] != "Cat C" {
		t.Errorf("client name samples should skip empty cells: %v", clientSamples)
	}
	// Notes has four non-empty values after skipping the first row
	if got := len(mappings[3].SampleValues); got != 4 {
		t.Errorf("notes samples = %d, want 4", got)
	}
}

func TestBuildMappingsCollapsesDuplicateHeaders(t *testing.T) {
	headers := []string{"Email", "Email", "Phone"}
	rows := []RawRow{
		{"Email": "backup@x.com", "Phone": "1"},
	}

	mappings := BuildMappings(headers, rows)
	if len(mappings) != 2 {
		t.Fatalf("got %d mappings, want 2; duplicate headers must share one entry", len(mappings))
	}
	if mappings[0].SourceColumn != "Email" || mappings[1].SourceColumn != "Phone" {
		t.Errorf("mapping columns = %q, %q", mappings[0].SourceColumn, mappings[1].SourceColumn)
	}
}

func TestParseLeadCSVKeepsQuotedHeaderText(t *testing.T) {
	input := "\"Email (\"\"work\"\")\",Phone\na@x.com,1\n"

	headers, rows, err := ParseLeadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseLeadCSV() error = %v", err)
	}
	want := `Email ("work")`
	if headers[0] != want {
		t.Errorf("header = %q, want %q", headers[0], want)
	}
	if rows[0][want] != "a@x.com" {
		t.Errorf("row not keyed by the verbatim header: %v", rows[0])
	}
}
