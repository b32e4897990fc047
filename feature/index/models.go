package index

import (
	"strings"
	"time"

	"daybook/journal/entry"
)

// EntryRow is one indexed journal entry.
type EntryRow struct {
	// UUID is the entry identity, lower-cased.
	UUID string `gorm:"primaryKey;size:64" json:"uuid"`
	// Date is the creation instant.
	Date time.Time `gorm:"index" json:"date"`
	// Title is the entry title.
	Title string `gorm:"size:512" json:"title"`
	// Body is the entry body.
	Body string `gorm:"type:text" json:"body"`
	// Starred marks a favorited entry.
	Starred bool `json:"starred"`
	// Tags is the space-joined normalized tag set.
	Tags string `gorm:"size:512" json:"tags"`
}

// TableName pins the table name independent of GORM pluralization.
func (EntryRow) TableName() string {
	return "journal_entries"
}

// rowFromEntry flattens an entry into its indexed form.
func rowFromEntry(e *entry.Entry) EntryRow {
	return EntryRow{
		UUID:    strings.ToLower(e.ID),
		Date:    e.Date,
		Title:   e.Title,
		Body:    e.Body,
		Starred: e.Starred,
		Tags:    strings.Join(e.Tags, " "),
	}
}
