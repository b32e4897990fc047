// Package timefmt is the shared timestamp format used by the editable text
// renderer and parser. Both sides must agree on the layout or an edit cycle
// would report every entry as modified.
package timefmt

import (
	"strings"
	"time"
)

// DefaultLayout is the bracketed timestamp layout used in editable text.
// It carries minute precision only.
const DefaultLayout = "2006-01-02 15:04"

// Format renders an instant using the given layout, falling back to
// DefaultLayout when empty.
func Format(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultLayout
	}
	return t.Format(layout)
}

// Parse maps a bracketed timestamp string (without the brackets) back to an
// instant. Surrounding whitespace is tolerated. The result is in UTC, the
// same frame the store keeps entries in.
func Parse(s, layout string) (time.Time, error) {
	if layout == "" {
		layout = DefaultLayout
	}
	return time.Parse(layout, strings.TrimSpace(s))
}
