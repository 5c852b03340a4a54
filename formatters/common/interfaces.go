package common

import (
	"io"

	"github.com/darianmavgo/arff2sql/arff"
	"github.com/darianmavgo/arff2sql/config"
)

// Formatter is a parser sink with a lifecycle. Close flushes targets that
// cannot stream (a SQLite database being copied out, a workbook).
type Formatter interface {
	arff.Formatter
	Close() error
}

// Driver is implemented by each formatter package and registered by name.
type Driver interface {
	// Open returns a new Formatter writing to w using the given dialect.
	Open(w io.Writer, dialect *config.Dialect) (Formatter, error)
}
