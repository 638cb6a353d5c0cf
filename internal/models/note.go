package models

import (
	"time"

	"github.com/google/uuid"
)

// Visibility controls where a note appears and how its author is shown.
type Visibility string

const (
	// VisibilityPublicAll: in the feed for everyone; anonymous to non-friends.
	VisibilityPublicAll Visibility = "public_all"
	// VisibilityPublicFriends: in the feed for friends only, with attribution.
	VisibilityPublicFriends Visibility = "public_friends"
	// VisibilityPrivateAnonymous: in the feed for everyone, never attributed.
	VisibilityPrivateAnonymous Visibility = "private_anonymous"
	// VisibilityPrivateNotSeen: never in the feed; owner's own views only.
	VisibilityPrivateNotSeen Visibility = "private_not_seen"
)

// Valid reports whether v is one of the four known visibility modes.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublicAll, VisibilityPublicFriends, VisibilityPrivateAnonymous, VisibilityPrivateNotSeen:
		return true
	}
	return false
}

// FeedEligible reports whether notes with this visibility can ever appear in the feed.
func (v Visibility) FeedEligible() bool {
	return v == VisibilityPublicAll || v == VisibilityPublicFriends || v == VisibilityPrivateAnonymous
}

// Note represents one TAWG (Time Alone With God) entry.
type Note struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title                string     `json:"title"`
	PublicNotesContent   string     `json:"public_notes_content,omitempty"`
	PrivateNotesContent  string     `json:"private_notes_content,omitempty"`
	PublicPrayerContent  string     `json:"public_prayer_content,omitempty"`
	PrivatePrayerContent string     `json:"private_prayer_content,omitempty"`
	Visibility           Visibility `json:"visibility"`
	PDFURL               string     `json:"pdf_url,omitempty"`

	MemVerseDisplay bool   `json:"mem_verse_display"`
	MemVerseBook    string `json:"mem_verse_book,omitempty"`
	MemVerseChapter int    `json:"mem_verse_chapter,omitempty"`
	MemVerseStart   int    `json:"mem_verse_start,omitempty"`
	MemVerseEnd     int    `json:"mem_verse_end,omitempty"`

	References []NoteReference `json:"references"`
}

// NoteReference is one (book, chapter) read during an entry.
type NoteReference struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
}
