package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/darianmavgo/arff2sql/arff"
	"github.com/darianmavgo/arff2sql/config"
)

// TimestampLayout is how parsed date values are spelled in SQL literals.
const TimestampLayout = "2006-01-02 15:04:05"

// ColumnType maps an attribute to the dialect's column type spelling.
func ColumnType(d *config.Dialect, attr *arff.Attribute) (string, error) {
	switch attr.Type {
	case arff.Numeric, arff.Real:
		return d.NumericType, nil
	case arff.Integer:
		return d.IntegerType, nil
	case arff.Date:
		return d.DateType, nil
	case arff.String:
		return d.StringType, nil
	case arff.Nominal:
		return fmt.Sprintf(d.NominalType, attr.LongestAccepted()), nil
	case arff.Relational:
		return "", fmt.Errorf("attribute %s: relational attributes have no column type", attr.Name)
	}
	return "", fmt.Errorf("attribute %s: no column type for %s", attr.Name, attr.Type)
}

// GenCreateTableSQL generates the schema-creation statement for a relation.
func GenCreateTableSQL(d *config.Dialect, relation string, attrs []*arff.Attribute) (string, error) {
	if len(attrs) == 0 {
		return "", fmt.Errorf("relation %s declares no attributes", relation)
	}
	var builder strings.Builder
	builder.Grow(len(relation) + len(attrs)*32)

	builder.WriteString("CREATE TABLE ")
	builder.WriteString(QuoteIdent(d, relation))
	builder.WriteString(" (")
	for i, attr := range attrs {
		colType, err := ColumnType(d, attr)
		if err != nil {
			return "", err
		}
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString("\n\t")
		builder.WriteString(QuoteIdent(d, attr.Name))
		builder.WriteByte(' ')
		builder.WriteString(colType)
	}
	builder.WriteString("\n)")
	return builder.String(), nil
}

// GenInsertStmt generates a prepared insert statement with one placeholder
// per attribute.
func GenInsertStmt(d *config.Dialect, relation string, attrs []*arff.Attribute) (string, error) {
	if relation == "" || len(attrs) == 0 {
		return "", fmt.Errorf("relation name and attributes are required")
	}
	return fmt.Sprintf("INSERT INTO %s VALUES (%s)",
		QuoteIdent(d, relation),
		strings.Repeat("?,", len(attrs)-1)+"?",
	), nil
}

// RenderValue spells one field as a SQL literal. Missing fields become the
// dialect's null literal; date, string, and nominal fields are quoted per
// their declared type; numeric fields are unquoted.
func RenderValue(d *config.Dialect, f arff.Field) (string, error) {
	if f.Missing() {
		return d.NullLiteral, nil
	}
	switch f.Attr.Type {
	case arff.Numeric, arff.Real:
		v, ok := f.Value.(float64)
		if !ok {
			return "", fmt.Errorf("attribute %s: unexpected value %T", f.Attr.Name, f.Value)
		}
		return FormatFloat(v), nil
	case arff.Integer:
		v, ok := f.Value.(int64)
		if !ok {
			return "", fmt.Errorf("attribute %s: unexpected value %T", f.Attr.Name, f.Value)
		}
		return strconv.FormatInt(v, 10), nil
	case arff.String, arff.Nominal:
		v, ok := f.Value.(string)
		if !ok {
			return "", fmt.Errorf("attribute %s: unexpected value %T", f.Attr.Name, f.Value)
		}
		return QuoteLiteral(v), nil
	case arff.Date:
		v, ok := f.Value.(time.Time)
		if !ok {
			return "", fmt.Errorf("attribute %s: unexpected value %T", f.Attr.Name, f.Value)
		}
		return QuoteLiteral(v.Format(TimestampLayout)), nil
	case arff.Relational:
		return "", fmt.Errorf("attribute %s: relational values cannot be rendered", f.Attr.Name)
	}
	return "", fmt.Errorf("attribute %s: no rendering for %s", f.Attr.Name, f.Attr.Type)
}

// QuoteLiteral wraps a string in single quotes, escaping embedded quotes by
// doubling them.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// FormatFloat spells a float with an explicit decimal point so numeric
// literals are never mistaken for integers.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
