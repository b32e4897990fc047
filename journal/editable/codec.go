// Package editable renders a journal as one plain-text document for
// external editing and parses the edited document back into candidate
// entries for reconciliation.
//
// The document format is line-oriented: a `# <hex-identity>` header starts
// each entry, followed by a title line carrying the bracketed timestamp
// (with an optional trailing `*` star marker) and the body lines. Entries
// are separated only by the next header; rendering the same store twice
// yields byte-identical text.
package editable

import (
	"regexp"
	"strings"

	"daybook/journal/entry"
	"daybook/journal/timefmt"
)

var (
	headerRe = regexp.MustCompile(`^\s*#\s*([0-9a-fA-F]+)\s*$`)
	titleRe  = regexp.MustCompile(`^\[[^\]]+\] `)
)

// Codec renders and parses editable journal documents.
type Codec struct {
	// TimeLayout is the bracketed timestamp layout; timefmt.DefaultLayout
	// when empty.
	TimeLayout string
	// TagSymbols are the tag prefix characters used when re-deriving
	// candidate tag sets.
	TagSymbols string
}

// Render emits the full journal as one editable document, one header line
// per entry followed by its canonical text rendering.
func (c *Codec) Render(entries []*entry.Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, "# "+e.ID+"\n"+e.Render(c.TimeLayout))
	}
	return strings.Join(parts, "\n")
}

// Parse scans the edited document in a single forward pass and returns the
// candidate entries in document order.
//
// The scan is a two-state accumulator: before the first header line every
// line is discarded; once a header opens a candidate, a bracketed
// timestamp line (re)sets its title, instant and star flag, and every
// other line is appended to its body. A header with no following title
// line yields a candidate with a zero instant, which reconciliation
// passes through unchanged.
func (c *Codec) Parse(text string) []*entry.Entry {
	var candidates []*entry.Entry
	var current *entry.Entry

	finalize := func() {
		if current == nil {
			return
		}
		// Re-derive tags from the edited content before reconciliation.
		current.ParseTags(c.TagSymbols)
		candidates = append(candidates, current)
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")

		if m := headerRe.FindStringSubmatch(line); m != nil {
			finalize()
			current = &entry.Entry{ID: strings.ToLower(m[1])}
			continue
		}
		if current == nil {
			continue
		}

		if blob := titleRe.FindString(line); blob != "" {
			if ts, err := timefmt.Parse(strings.Trim(blob, " []"), c.TimeLayout); err == nil {
				rest := line
				if strings.HasSuffix(rest, "*") {
					current.Starred = true
					rest = rest[:len(rest)-1]
				}
				current.Date = ts
				current.Title = strings.TrimSpace(rest[len(blob):])
				continue
			}
			// Not a parseable timestamp after all; fall through as body.
		}

		current.Body += line + "\n"
	}

	finalize()
	return candidates
}
