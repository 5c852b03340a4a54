// Package config defines the output dialect: the column type spelling for
// each attribute type and the literal/identifier conventions of the target.
// Dialects live in HCL files so a new target needs no code changes.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Dialect describes how schema and row statements are spelled for one
// target. NominalType is a format string taking the length of the longest
// accepted value.
type Dialect struct {
	Name            string `hcl:"name,optional"`
	NumericType     string `hcl:"numeric_type,optional"`
	IntegerType     string `hcl:"integer_type,optional"`
	DateType        string `hcl:"date_type,optional"`
	StringType      string `hcl:"string_type,optional"`
	NominalType     string `hcl:"nominal_type,optional"`
	IdentifierQuote string `hcl:"identifier_quote,optional"`
	NullLiteral     string `hcl:"null_literal,optional"`
	CommentPrefix   string `hcl:"comment_prefix,optional"`
}

// DefaultDialect returns the MySQL dialect.
func DefaultDialect() *Dialect {
	return &Dialect{
		Name:            "mysql",
		NumericType:     "decimal(20,5)",
		IntegerType:     "int",
		DateType:        "timestamp",
		StringType:      "varchar(72)",
		NominalType:     "varchar(%d)",
		IdentifierQuote: "`",
		NullLiteral:     "NULL",
		CommentPrefix:   "--",
	}
}

// SQLiteDialect returns a dialect suited to executing against SQLite.
func SQLiteDialect() *Dialect {
	d := DefaultDialect()
	d.Name = "sqlite"
	d.IdentifierQuote = `"`
	return d
}

// Load reads a dialect from the given HCL file. Keys absent from the file
// keep their default values.
func Load(path string) (*Dialect, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dialect file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse dialect file: %s", diags.Error())
	}

	d := DefaultDialect()
	diags = gohcl.DecodeBody(file.Body, nil, d)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode dialect: %s", diags.Error())
	}

	return d, nil
}

// Export writes the dialect to the specified file in HCL format.
func Export(path string, d *Dialect) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	root.SetAttributeValue("name", cty.StringVal(d.Name))
	root.SetAttributeValue("numeric_type", cty.StringVal(d.NumericType))
	root.SetAttributeValue("integer_type", cty.StringVal(d.IntegerType))
	root.SetAttributeValue("date_type", cty.StringVal(d.DateType))
	root.SetAttributeValue("string_type", cty.StringVal(d.StringType))
	root.SetAttributeValue("nominal_type", cty.StringVal(d.NominalType))
	root.SetAttributeValue("identifier_quote", cty.StringVal(d.IdentifierQuote))
	root.SetAttributeValue("null_literal", cty.StringVal(d.NullLiteral))
	root.SetAttributeValue("comment_prefix", cty.StringVal(d.CommentPrefix))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dialect file: %w", err)
	}
	defer file.Close()

	_, err = file.Write(f.Bytes())
	if err != nil {
		return fmt.Errorf("failed to write dialect to file: %w", err)
	}

	return nil
}
