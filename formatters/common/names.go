package common

import (
	"regexp"

	"github.com/darianmavgo/arff2sql/config"
)

var badChars = regexp.MustCompile(`[^A-Za-z0-9_$]`)

// SanitizeName replaces every character outside [A-Za-z0-9_$] with an
// underscore.
func SanitizeName(name string) string {
	return badChars.ReplaceAllString(name, "_")
}

// QuoteIdent sanitizes a relation or attribute name and wraps it in the
// dialect's identifier quote.
func QuoteIdent(d *config.Dialect, name string) string {
	return d.IdentifierQuote + SanitizeName(name) + d.IdentifierQuote
}
