package arff

import (
	"log"
	"slices"
	"strconv"
	"strings"
)

// Field pairs an attribute with one parsed value. Value is a float64,
// int64, string, or time.Time depending on the attribute type, or nil when
// the source field was the missing token or could not be parsed.
type Field struct {
	Attr  *Attribute
	Value any
}

// Missing reports whether the field holds no value.
func (f Field) Missing() bool {
	return f.Value == nil
}

// Instance is one parsed data row, one field per declared attribute in
// declaration order.
type Instance struct {
	Fields []Field
}

// ParseInstance parses one data line against the attribute list. Fields
// that cannot be parsed degrade to missing with a logged warning; the
// instance always has exactly one field per attribute.
func ParseInstance(line string, attrs []*Attribute) *Instance {
	values := splitFields(line)
	if len(values) > len(attrs) {
		log.Printf("row has %d fields for %d attributes, extra fields dropped: %s", len(values), len(attrs), line)
	}

	inst := &Instance{Fields: make([]Field, len(attrs))}
	for i, attr := range attrs {
		inst.Fields[i].Attr = attr
		if i >= len(values) {
			continue // short row, pad with missing
		}
		raw := strings.TrimSpace(values[i])
		if isMissing(raw) {
			continue
		}
		inst.Fields[i].Value = parseField(raw, attr)
	}
	return inst
}

// parseField parses one trimmed, non-missing raw field according to the
// attribute type. Returns nil on any parse failure.
func parseField(raw string, attr *Attribute) any {
	switch attr.Type {
	case Numeric, Real:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Printf("could not parse field %q for numeric attribute %s", raw, attr.Name)
			return nil
		}
		return v
	case Integer:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Printf("could not parse field %q for integer attribute %s", raw, attr.Name)
			return nil
		}
		return v
	case Nominal:
		v := unquote(raw)
		if !slices.Contains(attr.Accepts, v) {
			log.Printf("bad value %q for nominal attribute %s (accepts %v)", raw, attr.Name, attr.Accepts)
			return nil
		}
		return v
	case Date:
		v, err := attr.parseDate(unquote(raw))
		if err != nil {
			log.Printf("bad date format for attribute %s: %s | %s", attr.Name, attr.DateFormat, raw)
			return nil
		}
		return v
	case String:
		return raw
	case Relational:
		log.Printf("relational attribute %s cannot hold values", attr.Name)
		return nil
	}
	log.Printf("unhandled attribute type %s for attribute %s", attr.Type, attr.Name)
	return nil
}

// isMissing reports whether a trimmed field is the missing-value token,
// optionally quoted.
func isMissing(raw string) bool {
	return raw == "?" || raw == "'?'" || raw == `"?"`
}

// unquote strips one pair of matching surrounding quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// splitFields splits a data line on commas, keeping commas inside quoted
// runs as part of the field. Quotes are preserved for the per-type parsers.
func splitFields(line string) []string {
	var fields []string
	var cur strings.Builder
	var quote byte

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
			cur.WriteByte(c)
		case c == '\'' || c == '"':
			quote = c
			cur.WriteByte(c)
		case c == ',':
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cur.String())
	return fields
}
