package arff

import (
	"errors"
	"testing"
)

func TestParseAttributeBasicTypes(t *testing.T) {
	cases := []struct {
		decl string
		want Type
	}{
		{"temperature NUMERIC", Numeric},
		{"temperature numeric", Numeric},
		{"humidity REAL", Real},
		{"count INTEGER", Integer},
		{"name STRING", String},
		{"when DATE", Date},
	}
	for _, c := range cases {
		attr, err := ParseAttribute(c.decl)
		if err != nil {
			t.Fatalf("ParseAttribute(%q) failed: %v", c.decl, err)
		}
		if attr.Type != c.want {
			t.Errorf("ParseAttribute(%q): got type %s, want %s", c.decl, attr.Type, c.want)
		}
	}
}

func TestParseAttributeNominal(t *testing.T) {
	attr, err := ParseAttribute("outlook {sunny,overcast,rainy}")
	if err != nil {
		t.Fatalf("ParseAttribute failed: %v", err)
	}
	if attr.Type != Nominal {
		t.Fatalf("got type %s, want nominal", attr.Type)
	}
	want := []string{"sunny", "overcast", "rainy"}
	if len(attr.Accepts) != len(want) {
		t.Fatalf("got accepts %v, want %v", attr.Accepts, want)
	}
	for i, v := range want {
		if attr.Accepts[i] != v {
			t.Errorf("accepts[%d]: got %q, want %q", i, attr.Accepts[i], v)
		}
	}
	if attr.LongestAccepted() != len("overcast") {
		t.Errorf("LongestAccepted: got %d, want %d", attr.LongestAccepted(), len("overcast"))
	}
}

func TestParseAttributeQuotedName(t *testing.T) {
	attr, err := ParseAttribute("'max temperature' NUMERIC")
	if err != nil {
		t.Fatalf("ParseAttribute failed: %v", err)
	}
	if attr.Name != "max_temperature" {
		t.Errorf("got name %q, want max_temperature", attr.Name)
	}
}

func TestParseAttributeDateDefaultFormat(t *testing.T) {
	attr, err := ParseAttribute("when DATE")
	if err != nil {
		t.Fatalf("ParseAttribute failed: %v", err)
	}
	if attr.DateFormat != DefaultDateFormat {
		t.Errorf("got format %q, want %q", attr.DateFormat, DefaultDateFormat)
	}
	parsed, err := attr.parseDate("2001-04-03T12:00:00")
	if err != nil {
		t.Fatalf("parseDate failed: %v", err)
	}
	if parsed.Year() != 2001 || parsed.Hour() != 12 {
		t.Errorf("unexpected parsed date: %v", parsed)
	}
}

func TestParseAttributeDateExplicitFormat(t *testing.T) {
	attr, err := ParseAttribute(`when DATE "%Y-%m-%d %H:%M"`)
	if err != nil {
		t.Fatalf("ParseAttribute failed: %v", err)
	}
	if attr.DateFormat != "%Y-%m-%d %H:%M" {
		t.Errorf("got format %q", attr.DateFormat)
	}
	if _, err := attr.parseDate("2020-01-31 07:30"); err != nil {
		t.Errorf("parseDate failed: %v", err)
	}
	if _, err := attr.parseDate("31/01/2020"); err == nil {
		t.Error("expected parse failure for mismatched format")
	}
}

func TestParseAttributeMissingType(t *testing.T) {
	_, err := ParseAttribute("lonely")
	if err == nil {
		t.Fatal("expected error for declaration without a type token")
	}
	if !errors.Is(err, ErrMissingType) {
		t.Errorf("got %v, want ErrMissingType", err)
	}
}

func TestParseAttributeUnknownType(t *testing.T) {
	if _, err := ParseAttribute("x WIBBLE"); err == nil {
		t.Error("expected error for unknown type token")
	}
	if _, err := ParseAttribute("x RELATIONAL"); err == nil {
		t.Error("expected error for relational type")
	}
}

func TestSplitTokens(t *testing.T) {
	tokens := splitTokens(`'a b'  c "d e"`)
	want := []string{"a b", "c", "d e"}
	if len(tokens) != len(want) {
		t.Fatalf("got %v, want %v", tokens, want)
	}
	for i, v := range want {
		if tokens[i] != v {
			t.Errorf("token %d: got %q, want %q", i, tokens[i], v)
		}
	}
}
