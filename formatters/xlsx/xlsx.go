// Package xlsx renders parser events into a workbook: the schema on one
// sheet, data rows on another, header comments on a third.
package xlsx

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/darianmavgo/arff2sql/arff"
	"github.com/darianmavgo/arff2sql/config"
	"github.com/darianmavgo/arff2sql/formatters"
	"github.com/darianmavgo/arff2sql/formatters/common"
)

func init() {
	formatters.Register("xlsx", &xlsxDriver{})
}

const (
	dataSheet   = "data"
	schemaSheet = "schema"
	headerSheet = "header"
)

type xlsxDriver struct{}

func (d *xlsxDriver) Open(w io.Writer, dialect *config.Dialect) (common.Formatter, error) {
	return NewFormatter(w, dialect)
}

// Formatter accumulates the dataset into an in-memory workbook and writes
// it out on Close. The xlsx container cannot be streamed statement by
// statement the way SQL text can.
type Formatter struct {
	file    *excelize.File
	w       io.Writer
	dialect *config.Dialect

	commentRow int
	dataRow    int
}

var _ common.Formatter = (*Formatter)(nil)

// NewFormatter creates a workbook formatter writing to w.
func NewFormatter(w io.Writer, dialect *config.Dialect) (*Formatter, error) {
	if dialect == nil {
		dialect = config.DefaultDialect()
	}
	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", dataSheet); err != nil {
		return nil, fmt.Errorf("failed to set up data sheet: %w", err)
	}
	return &Formatter{file: file, w: w, dialect: dialect}, nil
}

func (f *Formatter) FormatComment(text string) error {
	if f.commentRow == 0 {
		if _, err := f.file.NewSheet(headerSheet); err != nil {
			return fmt.Errorf("failed to create header sheet: %w", err)
		}
	}
	f.commentRow++
	cell, err := excelize.CoordinatesToCellName(1, f.commentRow)
	if err != nil {
		return err
	}
	if err := f.file.SetCellValue(headerSheet, cell, text); err != nil {
		return fmt.Errorf("failed to write comment: %w", err)
	}
	return nil
}

func (f *Formatter) FormatCreate(relation string, attrs []*arff.Attribute) error {
	if _, err := f.file.NewSheet(schemaSheet); err != nil {
		return fmt.Errorf("failed to create schema sheet: %w", err)
	}
	if err := f.file.SetSheetRow(schemaSheet, "A1", &[]any{"relation", common.SanitizeName(relation)}); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	if err := f.file.SetSheetRow(schemaSheet, "A2", &[]any{"column", "attribute type", "column type"}); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}

	names := make([]any, len(attrs))
	for i, attr := range attrs {
		colType, err := common.ColumnType(f.dialect, attr)
		if err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(1, i+3)
		if err != nil {
			return err
		}
		row := []any{common.SanitizeName(attr.Name), attr.Type.String(), colType}
		if err := f.file.SetSheetRow(schemaSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write schema row: %w", err)
		}
		names[i] = common.SanitizeName(attr.Name)
	}

	if err := f.file.SetSheetRow(dataSheet, "A1", &names); err != nil {
		return fmt.Errorf("failed to write data header: %w", err)
	}
	f.dataRow = 1
	return nil
}

func (f *Formatter) FormatInstance(relation string, inst *arff.Instance) error {
	f.dataRow++
	cell, err := excelize.CoordinatesToCellName(1, f.dataRow)
	if err != nil {
		return err
	}
	row := make([]any, len(inst.Fields))
	for i, field := range inst.Fields {
		if field.Missing() {
			continue // nil leaves the cell empty
		}
		if t, ok := field.Value.(time.Time); ok {
			row[i] = t.Format(common.TimestampLayout)
			continue
		}
		row[i] = field.Value
	}
	if err := f.file.SetSheetRow(dataSheet, cell, &row); err != nil {
		return fmt.Errorf("failed to write data row: %w", err)
	}
	return nil
}

// Close writes the finished workbook to the output.
func (f *Formatter) Close() error {
	defer f.file.Close()
	if _, err := f.file.WriteTo(f.w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
