// Package arff parses ARFF dataset descriptions: a header of typed
// attribute declarations followed by comma-separated data rows.
package arff

import (
	"errors"
	"fmt"
	"strings"
)

// Type identifies the declared type of an attribute.
type Type int

const (
	Numeric Type = iota
	Nominal
	String
	Date
	Relational
	Integer
	Real
)

func (t Type) String() string {
	switch t {
	case Numeric:
		return "numeric"
	case Nominal:
		return "nominal"
	case String:
		return "string"
	case Date:
		return "date"
	case Relational:
		return "relational"
	case Integer:
		return "integer"
	case Real:
		return "real"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// DefaultDateFormat is the strptime pattern assumed when a date attribute
// carries no explicit format token.
const DefaultDateFormat = "%Y-%m-%dT%H:%M:%S"

var ErrMissingType = errors.New("attribute declaration has no type token")

// Attribute is one declared column: name, type, and the type-specific
// metadata (accepted value set for nominal, format pattern for date).
type Attribute struct {
	Name       string   // declared name, internal spaces replaced with underscores
	Type       Type
	Accepts    []string // nominal only, declaration order
	DateFormat string   // date only, strptime pattern

	dateLayout string // DateFormat converted to a time.Parse layout
}

// ParseAttribute builds an Attribute from the portion of a declaration line
// after the @ATTRIBUTE keyword. Declarations with no type token, a
// relational type, or an unrecognized type token are construction errors.
func ParseAttribute(decl string) (*Attribute, error) {
	tokens := splitTokens(decl)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty attribute declaration")
	}
	if len(tokens) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrMissingType, decl)
	}

	attr := &Attribute{Name: strings.ReplaceAll(tokens[0], " ", "_")}
	typeTok := tokens[1]

	switch {
	case strings.EqualFold(typeTok, "REAL"):
		attr.Type = Real
	case strings.EqualFold(typeTok, "INTEGER"):
		attr.Type = Integer
	case strings.EqualFold(typeTok, "NUMERIC"):
		attr.Type = Numeric
	case strings.EqualFold(typeTok, "STRING"):
		attr.Type = String
	case strings.EqualFold(typeTok, "DATE"):
		attr.Type = Date
		attr.DateFormat = DefaultDateFormat
		if len(tokens) > 2 {
			attr.DateFormat = trimFormatDelims(tokens[2])
		}
		layout, err := strptimeLayout(attr.DateFormat)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", attr.Name, err)
		}
		attr.dateLayout = layout
	case strings.HasPrefix(typeTok, "{") && strings.HasSuffix(typeTok, "}"):
		attr.Type = Nominal
		attr.Accepts = strings.Split(typeTok[1:len(typeTok)-1], ",")
	case strings.EqualFold(typeTok, "RELATIONAL"):
		return nil, fmt.Errorf("attribute %s: relational attributes are not supported", attr.Name)
	default:
		return nil, fmt.Errorf("attribute %s: unknown type %q", attr.Name, typeTok)
	}

	return attr, nil
}

// LongestAccepted returns the length in bytes of the longest value in the
// accepted set. Zero for non-nominal attributes.
func (a *Attribute) LongestAccepted() int {
	longest := 0
	for _, v := range a.Accepts {
		if len(v) > longest {
			longest = len(v)
		}
	}
	return longest
}

// splitTokens splits a declaration on whitespace, keeping single- or
// double-quoted runs together and removing the quotes. A brace-enclosed
// nominal list is expected to be a single token.
func splitTokens(s string) []string {
	var tokens []string
	var cur strings.Builder
	inToken := false
	var quote byte

	flush := func() {
		if inToken {
			tokens = append(tokens, cur.String())
			cur.Reset()
			inToken = false
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				cur.WriteByte(c)
			}
		case c == '\'' || c == '"':
			quote = c
			inToken = true
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			flush()
		default:
			cur.WriteByte(c)
			inToken = true
		}
	}
	flush()
	return tokens
}

// trimFormatDelims strips one pair of surrounding delimiter characters from
// a date format token. Quotes are usually consumed by tokenization already;
// bracketed formats still carry theirs.
func trimFormatDelims(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if (first == '\'' && last == '\'') || (first == '"' && last == '"') || (first == '[' && last == ']') {
		return s[1 : len(s)-1]
	}
	return s
}
