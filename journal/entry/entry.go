package entry

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"daybook/journal/timefmt"
)

// DefaultTagSymbols are the characters recognized as tag prefixes when no
// symbols are configured.
const DefaultTagSymbols = "#@"

// Creator holds the optional provenance metadata block of a record.
// A nil field means the source record did not carry it.
type Creator struct {
	// DeviceAgent identifies the device that created the entry (e.g. "iPhone/iPhone5,3").
	DeviceAgent *string
	// GenerationDate is the instant the entry was first generated.
	GenerationDate *time.Time
	// HostName is the hostname of the creating machine.
	HostName *string
	// OSAgent identifies the operating system (e.g. "Linux/6.1.0").
	OSAgent *string
	// SoftwareAgent identifies the writing application (e.g. "daybook/1.0").
	SoftwareAgent *string
}

// Entry is one journal record. It is owned by the store while resident;
// transient copies exist during an edit/reconcile cycle.
type Entry struct {
	// ID is the unique hexadecimal identity. Assigned once, matched
	// case-insensitively, upper-cased on disk.
	ID string

	// Date is the creation instant, normalized to UTC at load time.
	Date time.Time

	// Title is the first line of the entry text.
	Title string

	// Body is the remainder of the entry text.
	Body string

	// Starred marks a favorited entry.
	Starred bool

	// Tags is the normalized tag set derived from the entry text.
	Tags []string

	// Creator is the optional provenance metadata.
	Creator Creator

	// Location and Weather are opaque structured payloads carried through
	// decode/encode unmodified. Nil when absent.
	Location any
	Weather  any

	// Modified is true when the in-memory entry differs from its last
	// persisted form. Never written to disk.
	Modified bool
}

// New creates an Entry from a combined text blob, splitting it into title
// and body and deriving the tag set using the given tag symbols.
func New(date time.Time, text string, starred bool, symbols string) *Entry {
	e := &Entry{
		Date:    date,
		Starred: starred,
	}
	e.SetText(text, symbols)
	return e
}

// SetText replaces the entry content from a combined text blob. The first
// line becomes the title, everything after the first newline becomes the
// body, and the tag set is re-derived from the whole text.
func (e *Entry) SetText(text, symbols string) {
	title, body, _ := strings.Cut(text, "\n")
	e.Title = strings.TrimSpace(title)
	e.Body = body
	e.ParseTags(symbols)
}

// Text returns the combined text blob, the inverse of SetText.
func (e *Entry) Text() string {
	return e.Title + "\n" + e.Body
}

// ParseTags re-derives the tag set from the current title and body.
func (e *Entry) ParseTags(symbols string) {
	e.Tags = ExtractTags(e.Text(), symbols)
}

// ExtractTags scans text for words prefixed with one of the tag symbols and
// returns them lowercased, deduplicated and sorted.
func ExtractTags(text, symbols string) []string {
	if symbols == "" {
		symbols = DefaultTagSymbols
	}
	re := regexp.MustCompile(`(?:^|\s)([` + regexp.QuoteMeta(symbols) + `][-\w]+)`)

	seen := make(map[string]struct{})
	var tags []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		tag := strings.ToLower(m[1])
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Render returns the canonical editable text of the entry: a title line
// with the bracketed timestamp (and a trailing star marker when starred),
// followed by the body.
func (e *Entry) Render(layout string) string {
	line := "[" + timefmt.Format(e.Date, layout) + "] " + e.Title
	if e.Starred {
		line += " *"
	}
	if e.Body == "" {
		return line
	}
	return line + "\n" + e.Body
}

// Equal reports structural equality between two entries. Identities compare
// case-insensitively, instants at minute precision (the editable rendering
// carries no seconds), and titles and bodies with surrounding whitespace
// trimmed. Tag sets are not compared: records may carry tags the text does
// not mention, and any tag change made through an editor also changes the
// text.
func (e *Entry) Equal(other *Entry) bool {
	if other == nil {
		return false
	}
	if !strings.EqualFold(e.ID, other.ID) {
		return false
	}
	if !e.Date.Truncate(time.Minute).Equal(other.Date.Truncate(time.Minute)) {
		return false
	}
	if strings.TrimSpace(e.Title) != strings.TrimSpace(other.Title) {
		return false
	}
	if strings.TrimRight(e.Body, " \t\n\r") != strings.TrimRight(other.Body, " \t\n\r") {
		return false
	}
	return e.Starred == other.Starred
}

// HasTag reports whether the entry carries the given tag. The comparison is
// case-insensitive and tolerates a missing symbol prefix on the argument.
func (e *Entry) HasTag(tag string) bool {
	tag = strings.ToLower(tag)
	for _, t := range e.Tags {
		if t == tag || strings.TrimLeft(t, DefaultTagSymbols) == tag {
			return true
		}
	}
	return false
}

// SortByDate orders entries by ascending creation instant, the store's
// canonical ordering.
func SortByDate(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
}
