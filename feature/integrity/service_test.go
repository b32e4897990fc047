package integrity

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"daybook/journal/entry"
	"daybook/journal/record"
	"daybook/journal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCodec() *record.Codec {
	return &record.Codec{
		TagSymbols: "#@",
		Env:        record.Environment{TimeZone: "UTC"},
	}
}

func writeRecord(t *testing.T, codec *record.Codec, dir, filename string, e *entry.Entry) {
	t.Helper()
	data, err := codec.Encode(e)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), data, 0o644))
}

func TestCheck(t *testing.T) {
	codec := testCodec()
	date := time.Date(2011, 5, 1, 9, 30, 0, 0, time.UTC)

	t.Run("CleanJournal", func(t *testing.T) {
		root := t.TempDir()
		dir := filepath.Join(root, store.EntriesDir)
		require.NoError(t, os.MkdirAll(dir, 0o755))

		e := entry.New(date, "All fine", false, "#@")
		e.ID = record.NewIdentity()
		writeRecord(t, codec, dir, record.Filename(e.ID), e)

		st := store.New(root, codec, nil)
		require.NoError(t, st.Load())

		report, err := NewService(st, codec, nil).Check()
		require.NoError(t, err)

		assert.True(t, report.Clean())
		assert.Equal(t, 1, report.Entries)
	})

	t.Run("MalformedFile", func(t *testing.T) {
		root := t.TempDir()
		dir := filepath.Join(root, store.EntriesDir)
		require.NoError(t, os.MkdirAll(dir, 0o755))

		corrupt := filepath.Join(dir, "DEADBEEF.doentry")
		require.NoError(t, os.WriteFile(corrupt, []byte("<plist garbage"), 0o644))

		st := store.New(root, codec, nil)
		require.NoError(t, st.Load())

		report, err := NewService(st, codec, nil).Check()
		require.NoError(t, err)

		assert.False(t, report.Clean())
		assert.Equal(t, []string{corrupt}, report.MalformedFiles)
	})

	t.Run("MisnamedFile", func(t *testing.T) {
		root := t.TempDir()
		dir := filepath.Join(root, store.EntriesDir)
		require.NoError(t, os.MkdirAll(dir, 0o755))

		e := entry.New(date, "Wrong home", false, "#@")
		e.ID = record.NewIdentity()
		writeRecord(t, codec, dir, "CAFEBABE00000000000000000000BEEF.doentry", e)

		st := store.New(root, codec, nil)
		require.NoError(t, st.Load())

		report, err := NewService(st, codec, nil).Check()
		require.NoError(t, err)

		require.Len(t, report.MisnamedFiles, 1)
		assert.Contains(t, report.MisnamedFiles[0], "CAFEBABE")
	})

	t.Run("DuplicateIdentities", func(t *testing.T) {
		root := t.TempDir()
		st := store.New(root, codec, nil)

		a := entry.New(date, "First", false, "#@")
		a.ID = "aaaa1111"
		b := entry.New(date.Add(time.Hour), "Second", false, "#@")
		b.ID = "AAAA1111"
		st.Apply([]*entry.Entry{a, b}, nil)

		report, err := NewService(st, codec, nil).Check()
		require.NoError(t, err)

		assert.Equal(t, []string{"aaaa1111"}, report.DuplicateIdentities)
	})

	t.Run("MissingInstant", func(t *testing.T) {
		root := t.TempDir()
		st := store.New(root, codec, nil)

		headless := &entry.Entry{ID: "bbbb2222"}
		st.Apply([]*entry.Entry{headless}, nil)

		report, err := NewService(st, codec, nil).Check()
		require.NoError(t, err)

		assert.Equal(t, []string{"bbbb2222"}, report.MissingInstant)
	})
}
