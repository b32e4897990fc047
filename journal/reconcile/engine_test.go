package reconcile

import (
	"testing"
	"time"

	"daybook/journal/editable"
	"daybook/journal/entry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func journal() []*entry.Entry {
	a := entry.New(time.Date(2011, 5, 1, 9, 30, 0, 0, time.UTC), "Lunch with @anna\nWe talked about #work for hours.", false, "#@")
	a.ID = "aaaa1111"
	a.Creator.HostName = ptr("annas-macbook")
	a.Location = map[string]any{"Locality": "Berlin"}

	b := entry.New(time.Date(2011, 5, 2, 7, 15, 0, 0, time.UTC), "Milestone", true, "#@")
	b.ID = "bbbb2222"

	c := entry.New(time.Date(2011, 5, 3, 21, 0, 0, 0, time.UTC), "Evening pages\nQuiet day.", false, "#@")
	c.ID = "cccc3333"

	return []*entry.Entry{a, b, c}
}

func TestMerge(t *testing.T) {
	codec := &editable.Codec{TagSymbols: "#@"}

	t.Run("UntouchedDocumentChangesNothing", func(t *testing.T) {
		previous := journal()
		candidates := codec.Parse(codec.Render(previous))

		res := Merge(previous, candidates)

		assert.Equal(t, 3, res.Summary.Total)
		assert.Equal(t, 3, res.Summary.Unchanged)
		assert.Zero(t, res.Summary.Modified)
		assert.Zero(t, res.Summary.New)
		assert.Zero(t, res.Summary.Deleted)
		assert.Empty(t, res.Deleted)
		require.Len(t, res.Entries, 3)

		// Unchanged candidates are discarded; the previous objects survive.
		for i, e := range res.Entries {
			assert.Same(t, previous[i], e)
			assert.False(t, e.Modified)
		}
	})

	t.Run("RecordTagsBeyondTextStayUnchanged", func(t *testing.T) {
		// A record's Tags array need not cover the text-derived tags. The
		// parsed candidate only re-derives tags from the text; an untouched
		// document must still count as unchanged.
		previous := journal()
		previous[0].Tags = []string{"#vacation"}

		res := Merge(previous, codec.Parse(codec.Render(previous)))

		assert.Equal(t, 3, res.Summary.Unchanged)
		assert.Zero(t, res.Summary.Modified)
		require.Len(t, res.Entries, 3)
		assert.Equal(t, []string{"#vacation"}, res.Entries[0].Tags)
		assert.False(t, res.Entries[0].Modified)
	})

	t.Run("DeletionDetection", func(t *testing.T) {
		previous := journal()
		// Document keeps only the first and third entry.
		candidates := codec.Parse(codec.Render([]*entry.Entry{previous[0], previous[2]}))

		res := Merge(previous, candidates)

		assert.Equal(t, 1, res.Summary.Deleted)
		require.Len(t, res.Deleted, 1)
		assert.Equal(t, "bbbb2222", res.Deleted[0].ID)
		assert.Len(t, res.Entries, 2)
	})

	t.Run("ModificationDetection", func(t *testing.T) {
		previous := journal()
		edited := journal()
		edited[0].Title = "Lunch got cancelled"
		candidates := codec.Parse(codec.Render(edited))

		res := Merge(previous, candidates)

		assert.Equal(t, 1, res.Summary.Modified)
		assert.Equal(t, 2, res.Summary.Unchanged)
		require.Len(t, res.Entries, 3)
		assert.Equal(t, "Lunch got cancelled", res.Entries[0].Title)
		assert.True(t, res.Entries[0].Modified)
		assert.False(t, res.Entries[1].Modified)
	})

	t.Run("NewEntryDetection", func(t *testing.T) {
		previous := journal()
		doc := codec.Render(previous) + "\n# dddd4444\n[2011-05-04 08:00] Fresh thought"

		res := Merge(previous, codec.Parse(doc))

		assert.Equal(t, 1, res.Summary.New)
		require.Len(t, res.Entries, 4)
		added := res.Entries[3]
		assert.Equal(t, "dddd4444", added.ID)
		assert.True(t, added.Modified)
	})

	t.Run("MetadataSurvivesEdit", func(t *testing.T) {
		previous := journal()
		edited := journal()
		edited[0].Body = "We talked about #work for hours.\nAnd then some."
		candidates := codec.Parse(codec.Render(edited))

		res := Merge(previous, candidates)

		merged := res.Entries[0]
		assert.True(t, merged.Modified)
		// Provenance cannot be expressed in the edited text; it is carried
		// over from the matched entry.
		require.NotNil(t, merged.Creator.HostName)
		assert.Equal(t, "annas-macbook", *merged.Creator.HostName)
		assert.NotNil(t, merged.Location)
	})

	t.Run("TagUnion", func(t *testing.T) {
		previous := journal()
		previous[0].Tags = []string{"#food", "#work"}
		edited := journal()
		edited[0].Body = "Talking #plans over lunch."
		candidates := codec.Parse(codec.Render(edited))

		res := Merge(previous, candidates)

		// Tags removed from the text survive; new ones are added.
		assert.Equal(t, []string{"#food", "#plans", "#work", "@anna"}, res.Entries[0].Tags)
		assert.True(t, res.Entries[0].Modified)
	})

	t.Run("CaseInsensitiveMatch", func(t *testing.T) {
		previous := journal()
		edited := journal()
		edited[1].ID = "BBBB2222"
		candidates := codec.Parse(codec.Render(edited))

		res := Merge(previous, candidates)

		assert.Zero(t, res.Summary.New)
		assert.Zero(t, res.Summary.Deleted)
	})

	t.Run("CollisionSurvivesDeletionScan", func(t *testing.T) {
		previous := journal()
		twin := entry.New(time.Date(2011, 5, 5, 12, 0, 0, 0, time.UTC), "Twin", false, "#@")
		twin.ID = "AAAA1111"
		previous = append(previous, twin)

		// Document lists the shared identity once.
		candidates := codec.Parse(codec.Render(journal()))

		res := Merge(previous, candidates)

		// Both colliding entries share an identity the document still
		// carries, so neither is deleted.
		assert.Zero(t, res.Summary.Deleted)
		assert.Len(t, res.Entries, 4)
	})

	t.Run("EmptyDocumentDeletesEverything", func(t *testing.T) {
		previous := journal()
		res := Merge(previous, nil)

		assert.Empty(t, res.Entries)
		assert.Len(t, res.Deleted, 3)
		assert.Equal(t, 3, res.Summary.Deleted)
	})
}
