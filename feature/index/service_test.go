package index

import (
	"testing"
	"time"

	"daybook/journal/entry"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestRebuild(t *testing.T) {
	date := time.Date(2011, 5, 1, 9, 30, 0, 0, time.UTC)

	t.Run("ReplacesIndexInOneTransaction", func(t *testing.T) {
		db, mock := mockDB(t)

		e := entry.New(date, "Lunch with @anna\nWe talked about #work.", false, "#@")
		e.ID = "4BB1F469"

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM journal_entries").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec("INSERT INTO `journal_entries`").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		svc := NewService(db, nil)
		require.NoError(t, svc.Rebuild([]*entry.Entry{e}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("EmptyJournalOnlyClears", func(t *testing.T) {
		db, mock := mockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM journal_entries").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		svc := NewService(db, nil)
		require.NoError(t, svc.Rebuild(nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackOnFailure", func(t *testing.T) {
		db, mock := mockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM journal_entries").
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		svc := NewService(db, nil)
		assert.Error(t, svc.Rebuild(nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSearch(t *testing.T) {
	date := time.Date(2011, 5, 1, 9, 30, 0, 0, time.UTC)

	t.Run("MatchesTitleBodyOrTags", func(t *testing.T) {
		db, mock := mockDB(t)

		rows := sqlmock.NewRows([]string{"uuid", "date", "title", "body", "starred", "tags"}).
			AddRow("4bb1f469", date, "Lunch with @anna", "We talked about #work.", false, "#work @anna")

		mock.ExpectQuery("SELECT \\* FROM `journal_entries` WHERE title LIKE \\? OR body LIKE \\? OR tags LIKE \\?").
			WithArgs("%work%", "%work%", "%work%").
			WillReturnRows(rows)

		svc := NewService(db, nil)
		got, err := svc.Search("work")
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, "4bb1f469", got[0].UUID)
		assert.Equal(t, "Lunch with @anna", got[0].Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("QueryFailure", func(t *testing.T) {
		db, mock := mockDB(t)

		mock.ExpectQuery("SELECT \\* FROM `journal_entries`").
			WillReturnError(assert.AnError)

		svc := NewService(db, nil)
		_, err := svc.Search("work")
		assert.Error(t, err)
	})
}

func TestRowFromEntry(t *testing.T) {
	e := entry.New(time.Date(2011, 5, 1, 9, 30, 0, 0, time.UTC), "Title\nBody.", true, "#@")
	e.ID = "4BB1F469"
	e.Tags = []string{"#work", "@anna"}

	row := rowFromEntry(e)

	assert.Equal(t, "4bb1f469", row.UUID)
	assert.Equal(t, "Title", row.Title)
	assert.Equal(t, "Body.", row.Body)
	assert.True(t, row.Starred)
	assert.Equal(t, "#work @anna", row.Tags)
}
