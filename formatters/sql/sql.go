// Package sql renders parser events as SQL text: one CREATE TABLE, one
// INSERT per row, comments passed through with the dialect's prefix.
package sql

import (
	"fmt"
	"io"
	"strings"

	"github.com/darianmavgo/arff2sql/arff"
	"github.com/darianmavgo/arff2sql/config"
	"github.com/darianmavgo/arff2sql/formatters"
	"github.com/darianmavgo/arff2sql/formatters/common"
)

func init() {
	formatters.Register("sql", &sqlDriver{})
}

type sqlDriver struct{}

func (d *sqlDriver) Open(w io.Writer, dialect *config.Dialect) (common.Formatter, error) {
	return NewFormatter(w, dialect), nil
}

// Formatter streams SQL statements to a writer, one statement per event.
type Formatter struct {
	w       io.Writer
	dialect *config.Dialect
}

var _ common.Formatter = (*Formatter)(nil)

// NewFormatter creates a SQL text formatter writing to w.
func NewFormatter(w io.Writer, dialect *config.Dialect) *Formatter {
	if dialect == nil {
		dialect = config.DefaultDialect()
	}
	return &Formatter{w: w, dialect: dialect}
}

func (f *Formatter) FormatComment(text string) error {
	if _, err := fmt.Fprintf(f.w, "%s%s\n", f.dialect.CommentPrefix, text); err != nil {
		return fmt.Errorf("failed to write comment: %w", err)
	}
	return nil
}

func (f *Formatter) FormatCreate(relation string, attrs []*arff.Attribute) error {
	createSQL, err := common.GenCreateTableSQL(f.dialect, relation, attrs)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.w, "%s;\n\n", createSQL); err != nil {
		return fmt.Errorf("failed to write CREATE TABLE: %w", err)
	}
	return nil
}

func (f *Formatter) FormatInstance(relation string, inst *arff.Instance) error {
	values := make([]string, len(inst.Fields))
	for i, field := range inst.Fields {
		v, err := common.RenderValue(f.dialect, field)
		if err != nil {
			return err
		}
		values[i] = v
	}
	_, err := fmt.Fprintf(f.w, "INSERT INTO %s VALUES(%s);\n",
		common.QuoteIdent(f.dialect, relation), strings.Join(values, ", "))
	if err != nil {
		return fmt.Errorf("failed to write INSERT: %w", err)
	}
	return nil
}

func (f *Formatter) Close() error {
	return nil
}
