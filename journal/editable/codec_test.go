package editable

import (
	"strings"
	"testing"
	"time"

	"daybook/journal/entry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []*entry.Entry {
	a := entry.New(time.Date(2011, 5, 1, 9, 30, 0, 0, time.UTC), "Lunch with @anna\nWe talked about #work for hours.", false, "#@")
	a.ID = "4bb1f46946ad439996c9b59de7c4ddc1"
	b := entry.New(time.Date(2011, 5, 2, 7, 15, 0, 0, time.UTC), "Milestone", true, "#@")
	b.ID = "aa11f46946ad439996c9b59de7c4ddc2"
	return []*entry.Entry{a, b}
}

func TestRender(t *testing.T) {
	codec := &Codec{TagSymbols: "#@"}

	got := codec.Render(testEntries())
	want := strings.Join([]string{
		"# 4bb1f46946ad439996c9b59de7c4ddc1",
		"[2011-05-01 09:30] Lunch with @anna",
		"We talked about #work for hours.",
		"# aa11f46946ad439996c9b59de7c4ddc2",
		"[2011-05-02 07:15] Milestone *",
	}, "\n")

	assert.Equal(t, want, got)

	// Rendering is deterministic.
	assert.Equal(t, got, codec.Render(testEntries()))
}

func TestParse(t *testing.T) {
	codec := &Codec{TagSymbols: "#@"}

	t.Run("RoundTrip", func(t *testing.T) {
		entries := testEntries()
		parsed := codec.Parse(codec.Render(entries))
		require.Len(t, parsed, 2)

		for i := range entries {
			assert.True(t, entries[i].Equal(parsed[i]), "entry %d should survive a render/parse cycle", i)
		}
	})

	t.Run("PreambleDiscarded", func(t *testing.T) {
		doc := strings.Join([]string{
			"Notes I typed above the first header.",
			"# 4bb1f469",
			"[2011-05-01 09:30] Title",
			"Body.",
		}, "\n")

		parsed := codec.Parse(doc)
		require.Len(t, parsed, 1)
		assert.Equal(t, "Title", parsed[0].Title)
		assert.Equal(t, "Body.", strings.TrimRight(parsed[0].Body, "\n"))
	})

	t.Run("HeaderWithoutTitle", func(t *testing.T) {
		parsed := codec.Parse("# 4bb1f469\n# aa11f469\n[2011-05-02 07:15] Second")
		require.Len(t, parsed, 2)

		assert.Equal(t, "4bb1f469", parsed[0].ID)
		assert.True(t, parsed[0].Date.IsZero())
		assert.Empty(t, parsed[0].Title)

		assert.Equal(t, "Second", parsed[1].Title)
	})

	t.Run("StarMarker", func(t *testing.T) {
		parsed := codec.Parse("# 4bb1f469\n[2011-05-01 09:30] Starred one *")
		require.Len(t, parsed, 1)
		assert.True(t, parsed[0].Starred)
		assert.Equal(t, "Starred one", parsed[0].Title)
	})

	t.Run("LiteralAsteriskInTitleBecomesStar", func(t *testing.T) {
		// A bare trailing asterisk is indistinguishable from the star
		// marker; it always reads as one.
		parsed := codec.Parse("# 4bb1f469\n[2011-05-01 09:30] *")
		require.Len(t, parsed, 1)
		assert.True(t, parsed[0].Starred)
		assert.Empty(t, parsed[0].Title)
	})

	t.Run("UnparseableTimestampIsBody", func(t *testing.T) {
		parsed := codec.Parse("# 4bb1f469\n[2011-05-01 09:30] Title\n[not a date] looks bracketed")
		require.Len(t, parsed, 1)
		assert.Equal(t, "Title", parsed[0].Title)
		assert.Contains(t, parsed[0].Body, "[not a date] looks bracketed")
	})

	t.Run("HeaderIdentityLowercased", func(t *testing.T) {
		parsed := codec.Parse("# 4BB1F469\n[2011-05-01 09:30] Title")
		require.Len(t, parsed, 1)
		assert.Equal(t, "4bb1f469", parsed[0].ID)
	})

	t.Run("TagsRederivedFromEditedText", func(t *testing.T) {
		parsed := codec.Parse("# 4bb1f469\n[2011-05-01 09:30] New #idea\nWith @anna.")
		require.Len(t, parsed, 1)
		assert.Equal(t, []string{"#idea", "@anna"}, parsed[0].Tags)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, codec.Parse(""))
	})
}
