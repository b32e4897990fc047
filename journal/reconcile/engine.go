package reconcile

import (
	"sort"
	"strings"

	"daybook/journal/entry"
)

// Summary provides aggregate counts for a merge.
type Summary struct {
	// Total is the number of candidates processed.
	Total int `json:"total"`
	// Unchanged counts candidates equal to their match.
	Unchanged int `json:"unchanged"`
	// Modified counts candidates that replaced an unequal match.
	Modified int `json:"modified"`
	// New counts candidates with no matching previous entry.
	New int `json:"new"`
	// Deleted counts previous entries absent from the document.
	Deleted int `json:"deleted"`
}

// Result is the outcome of merging candidates into a previous entry set.
type Result struct {
	// Entries is the new resident set. Ordering is re-established by the
	// store, not here.
	Entries []*entry.Entry
	// Deleted holds the previous entries scheduled for physical removal.
	Deleted []*entry.Entry
	// Summary provides aggregate counts.
	Summary Summary
}

// Merge reconciles candidates (in document order) against the previous
// entry set. Neither input slice is mutated; matched candidates are
// mutated in place (tag union, metadata copy, modified flag).
func Merge(previous, candidates []*entry.Entry) Result {
	working := make([]*entry.Entry, len(previous))
	copy(working, previous)

	var summary Summary
	summary.Total = len(candidates)

	for _, cand := range candidates {
		match := findMatch(working, cand.ID)
		if match == nil {
			cand.Modified = true
			working = append(working, cand)
			summary.New++
			continue
		}

		cand.Tags = unionTags(cand.Tags, match.Tags)
		copyMetadata(cand, match)

		if cand.Equal(match) {
			summary.Unchanged++
			continue
		}
		cand.Modified = true
		working = replace(working, match, cand)
		summary.Modified++
	}

	// Deletion is identity-based: a previous entry survives as long as any
	// candidate carries its identity, even across a pre-existing collision.
	candIDs := make(map[string]struct{}, len(candidates))
	for _, cand := range candidates {
		candIDs[strings.ToLower(cand.ID)] = struct{}{}
	}

	var result Result
	for _, e := range working {
		if _, ok := candIDs[strings.ToLower(e.ID)]; ok {
			result.Entries = append(result.Entries, e)
		} else {
			result.Deleted = append(result.Deleted, e)
		}
	}
	summary.Deleted = len(result.Deleted)
	result.Summary = summary
	return result
}

// findMatch returns the first entry with the given identity, or nil.
// Multiple previous entries sharing an identity is a pre-existing
// integrity problem; first match wins here and the integrity checks
// report the collision.
func findMatch(entries []*entry.Entry, id string) *entry.Entry {
	for _, e := range entries {
		if strings.EqualFold(e.ID, id) {
			return e
		}
	}
	return nil
}

// copyMetadata carries every provenance field present on the match over to
// the candidate. Edited text cannot express these fields, so the match is
// the only source.
func copyMetadata(cand, match *entry.Entry) {
	if match.Creator.DeviceAgent != nil {
		cand.Creator.DeviceAgent = match.Creator.DeviceAgent
	}
	if match.Creator.GenerationDate != nil {
		cand.Creator.GenerationDate = match.Creator.GenerationDate
	}
	if match.Creator.HostName != nil {
		cand.Creator.HostName = match.Creator.HostName
	}
	if match.Creator.OSAgent != nil {
		cand.Creator.OSAgent = match.Creator.OSAgent
	}
	if match.Creator.SoftwareAgent != nil {
		cand.Creator.SoftwareAgent = match.Creator.SoftwareAgent
	}
	if match.Location != nil {
		cand.Location = match.Location
	}
	if match.Weather != nil {
		cand.Weather = match.Weather
	}
}

func unionTags(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	var out []string
	for _, t := range append(append([]string{}, a...), b...) {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func replace(entries []*entry.Entry, old, with *entry.Entry) []*entry.Entry {
	for i, e := range entries {
		if e == old {
			entries[i] = with
			break
		}
	}
	return entries
}
