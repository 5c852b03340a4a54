package xlsx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/darianmavgo/arff2sql/arff"
)

const weatherDataset = `% The weather dataset
@RELATION weather
@ATTRIBUTE outlook {sunny,overcast,rainy}
@ATTRIBUTE temperature NUMERIC
@DATA
sunny,85.0
overcast,?
`

func TestWorkbookOutput(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter(&buf, nil)
	if err != nil {
		t.Fatalf("NewFormatter failed: %v", err)
	}
	if err := arff.Parse(strings.NewReader(weatherDataset), f, nil); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	book, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer book.Close()

	rows, err := book.GetRows(dataSheet)
	if err != nil {
		t.Fatalf("failed to read data sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d data rows (with header), want 3", len(rows))
	}
	if rows[0][0] != "outlook" || rows[0][1] != "temperature" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "sunny" || rows[1][1] != "85" {
		t.Errorf("unexpected first data row: %v", rows[1])
	}
	if len(rows[2]) > 1 && rows[2][1] != "" {
		t.Errorf("missing value not empty: %v", rows[2])
	}

	schema, err := book.GetRows(schemaSheet)
	if err != nil {
		t.Fatalf("failed to read schema sheet: %v", err)
	}
	if schema[0][1] != "weather" {
		t.Errorf("unexpected relation row: %v", schema[0])
	}
	if schema[2][0] != "outlook" || schema[2][2] != "varchar(8)" {
		t.Errorf("unexpected schema row: %v", schema[2])
	}

	header, err := book.GetRows(headerSheet)
	if err != nil {
		t.Fatalf("failed to read header sheet: %v", err)
	}
	if len(header) != 1 || !strings.Contains(header[0][0], "weather dataset") {
		t.Errorf("unexpected header sheet: %v", header)
	}
}
