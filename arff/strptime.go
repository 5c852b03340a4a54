package arff

import (
	"fmt"
	"strings"
	"time"
)

// strptime directives mapped onto Go reference-time layout elements.
var strptimeElems = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'b': "Jan",
	'B': "January",
	'd': "02",
	'e': "_2",
	'a': "Mon",
	'A': "Monday",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'Z': "MST",
	'z': "-0700",
	'%': "%",
}

// strptimeLayout converts a strptime-style pattern to a time.Parse layout.
// Unknown directives are errors so a bad format is caught at declaration
// time instead of failing on every row.
func strptimeLayout(pattern string) (string, error) {
	var layout strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			layout.WriteByte(c)
			continue
		}
		i++
		if i >= len(pattern) {
			return "", fmt.Errorf("date format %q ends with a bare %%", pattern)
		}
		elem, ok := strptimeElems[pattern[i]]
		if !ok {
			return "", fmt.Errorf("date format %q: unsupported directive %%%c", pattern, pattern[i])
		}
		layout.WriteString(elem)
	}
	return layout.String(), nil
}

// parseDate parses a raw date field using the attribute's declared format.
func (a *Attribute) parseDate(value string) (time.Time, error) {
	return time.Parse(a.dateLayout, value)
}
