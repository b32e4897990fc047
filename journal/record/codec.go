package record

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"daybook/core/utils"
	"daybook/journal/entry"

	"github.com/google/uuid"
	"howett.net/plist"
)

// Extension is the record file extension, upper-cased identity plus this.
const Extension = ".doentry"

// ErrMalformed marks a record that is not a well-formed plist document or
// is missing a required field. Callers skip such records and continue.
var ErrMalformed = errors.New("malformed record")

// Codec converts between plist records and entries.
type Codec struct {
	// TagSymbols are the recognized tag prefix characters; the first one is
	// applied to tags read from records.
	TagSymbols string
	// Env defaults the Creator fields of freshly encoded records.
	Env Environment
}

// NewCodec creates a codec with host-detected environment info.
func NewCodec(tagSymbols string) *Codec {
	if tagSymbols == "" {
		tagSymbols = entry.DefaultTagSymbols
	}
	return &Codec{TagSymbols: tagSymbols, Env: DetectEnvironment()}
}

// Decode parses one record into an entry. A document that cannot be parsed
// or lacks a required field returns an error wrapping ErrMalformed; any
// single missing or badly typed optional sub-field is ignored.
func (c *Codec) Decode(data []byte) (*entry.Entry, error) {
	var dict map[string]any
	if _, err := plist.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	date, ok := dict["Creation Date"].(time.Time)
	if !ok {
		return nil, fmt.Errorf("%w: missing Creation Date", ErrMalformed)
	}
	text, ok := dict["Entry Text"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing Entry Text", ErrMalformed)
	}
	id, ok := dict["UUID"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: missing UUID", ErrMalformed)
	}

	// Normalize to UTC by adding the zone's standard offset rather than
	// keeping per-entry zone state around.
	loc := resolveZone(dict["Time Zone"])
	if loc.String() != "UTC" {
		date = date.Add(standardOffset(loc, date)).UTC()
	}

	e := entry.New(date, text, utils.ToBool(dict["Starred"]), c.TagSymbols)
	e.ID = id
	e.Tags = c.normalizeTags(dict["Tags"])

	c.decodeCreator(e, dict)
	if l, ok := dict["Location"]; ok {
		e.Location = l
	}
	if w, ok := dict["Weather"]; ok {
		e.Weather = w
	}
	return e, nil
}

// decodeCreator populates the provenance fields opportunistically. The
// Generation Date falls back to the entry date, matching the format's
// originating applications; every other field stays absent when missing.
func (c *Codec) decodeCreator(e *entry.Entry, dict map[string]any) {
	gen := e.Date
	e.Creator.GenerationDate = &gen

	creator, ok := dict["Creator"].(map[string]any)
	if !ok {
		return
	}
	if v, ok := creator["Device Agent"].(string); ok {
		e.Creator.DeviceAgent = &v
	}
	if v, ok := creator["Generation Date"].(time.Time); ok {
		e.Creator.GenerationDate = &v
	}
	if v, ok := creator["Host Name"].(string); ok {
		e.Creator.HostName = &v
	}
	if v, ok := creator["OS Agent"].(string); ok {
		e.Creator.OSAgent = &v
	}
	if v, ok := creator["Software Agent"].(string); ok {
		e.Creator.SoftwareAgent = &v
	}
}

// Encode serializes an entry into an XML plist record, defaulting every
// missing field first. The entry is mutated: a missing identity is
// assigned here so the caller can compute the record filename.
func (c *Codec) Encode(e *entry.Entry) ([]byte, error) {
	utc := asUTC(e.Date)

	if e.ID == "" {
		e.ID = NewIdentity()
	}

	creator := map[string]any{
		"Device Agent":    stringOr(e.Creator.DeviceAgent, ""),
		"Generation Date": timeOr(e.Creator.GenerationDate, utc),
		"Host Name":       stringOr(e.Creator.HostName, c.Env.HostName),
		"OS Agent":        stringOr(e.Creator.OSAgent, c.Env.OSAgent),
		"Software Agent":  stringOr(e.Creator.SoftwareAgent, c.Env.SoftwareAgent),
	}

	dict := map[string]any{
		"Creation Date": utc,
		"Starred":       e.Starred,
		"Entry Text":    e.Text(),
		"Time Zone":     c.Env.TimeZone,
		"UUID":          strings.ToUpper(e.ID),
		"Tags":          c.denormalizeTags(e.Tags),
		"Creator":       creator,
	}
	if e.Location != nil {
		dict["Location"] = e.Location
	}
	if e.Weather != nil {
		dict["Weather"] = e.Weather
	}

	data, err := plist.MarshalIndent(dict, plist.XMLFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to encode record %s: %w", e.ID, err)
	}
	return data, nil
}

// Filename returns the on-disk name for an identity.
func Filename(id string) string {
	return strings.ToUpper(id) + Extension
}

// NewIdentity generates a fresh identity: 32 lowercase hex characters.
func NewIdentity() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// normalizeTags lowercases record tags and prefixes them with the first
// configured tag symbol.
func (c *Codec) normalizeTags(raw any) []string {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	tags := make([]string, 0, len(list))
	for _, item := range list {
		tag := strings.TrimSpace(utils.ToString(item))
		if tag == "" {
			continue
		}
		tags = append(tags, string(c.TagSymbols[0])+strings.ToLower(tag))
	}
	return tags
}

// denormalizeTags strips the symbol prefix and expands underscores back to
// spaces for the on-disk representation.
func (c *Codec) denormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimLeft(tag, c.TagSymbols)
		out = append(out, strings.ReplaceAll(tag, "_", " "))
	}
	return out
}

// resolveZone maps the "Time Zone" field to a location, falling back to
// the host zone when the field is absent or names an unknown zone.
func resolveZone(raw any) *time.Location {
	name, ok := raw.(string)
	if !ok || name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

// standardOffset returns the zone's standard (non-DST) UTC offset for the
// year of t. Of the two solstice-adjacent offsets, standard time is the
// smaller one.
func standardOffset(loc *time.Location, t time.Time) time.Duration {
	jan := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc)
	jul := time.Date(t.Year(), time.July, 1, 0, 0, 0, 0, loc)
	_, janOff := jan.Zone()
	_, julOff := jul.Zone()
	off := janOff
	if julOff < janOff {
		off = julOff
	}
	return time.Duration(off) * time.Second
}

// asUTC reinterprets the entry instant's wall-clock fields as host-local
// time and converts the result to UTC, the inverse of decode's
// normalization.
func asUTC(t time.Time) time.Time {
	local := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local)
	return local.UTC()
}

func stringOr(v *string, def string) string {
	if v != nil {
		return *v
	}
	return def
}

func timeOr(v *time.Time, def time.Time) time.Time {
	if v != nil {
		return *v
	}
	return def
}
