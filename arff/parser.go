package arff

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"
)

// Formatter consumes the three parser events. Implementations render them
// into a target format (SQL text, a SQLite database, a workbook, ...).
type Formatter interface {
	// FormatComment receives the payload of a comment line.
	FormatComment(text string) error
	// FormatCreate is called exactly once, when the data section begins,
	// with the finalized attribute list.
	FormatCreate(relation string, attrs []*Attribute) error
	// FormatInstance is called once per parsed data row, in input order.
	FormatInstance(relation string, inst *Instance) error
}

// Options controls parsing behavior.
type Options struct {
	Verbose bool // log progress while parsing
}

// Parse reads a dataset line by line and dispatches events to the sink.
// Malformed declarations and fields degrade to logged warnings; the only
// errors returned are read failures and sink failures.
func Parse(r io.Reader, sink Formatter, opts *Options) error {
	verbose := opts != nil && opts.Verbose

	var (
		relation string
		attrs    []*Attribute
		hasData  bool
		rows     int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		switch trimmed[0] {
		case '%':
			if err := sink.FormatComment(trimmed[1:]); err != nil {
				return fmt.Errorf("failed to format comment: %w", err)
			}

		case '@':
			keyword, rest, _ := strings.Cut(trimmed, " ")
			rest = strings.TrimSpace(rest)

			switch {
			case strings.EqualFold(keyword, "@RELATION"):
				relation = rest

			case strings.EqualFold(keyword, "@ATTRIBUTE"):
				if hasData {
					log.Printf("attribute declared after @DATA, skipped: %s", trimmed)
					continue
				}
				attr, err := ParseAttribute(rest)
				if err != nil {
					log.Printf("bad attribute specification: %v", err)
					continue
				}
				attrs = append(attrs, attr)

			case strings.EqualFold(keyword, "@DATA"):
				if hasData {
					log.Printf("duplicate @DATA declaration ignored")
					continue
				}
				hasData = true
				if verbose {
					log.Printf("[ARFF2SQL] relation %s: %d attributes, data section begins", relation, len(attrs))
				}
				if err := sink.FormatCreate(relation, attrs); err != nil {
					return fmt.Errorf("failed to format schema: %w", err)
				}

			default:
				log.Printf("unknown declaration skipped: %s", trimmed)
			}

		default:
			if !hasData {
				log.Printf("unexpected line encountered: %s", line)
				continue
			}
			if err := sink.FormatInstance(relation, ParseInstance(line, attrs)); err != nil {
				return fmt.Errorf("failed to format row: %w", err)
			}
			rows++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if verbose {
		log.Printf("[ARFF2SQL] finished relation %s, total rows: %d", relation, rows)
	}
	return nil
}
