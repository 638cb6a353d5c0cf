package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the public-facing data for one user.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username    string `json:"username"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`

	PrayerReq        string `json:"prayer_req,omitempty"`
	PrayerReqDisplay bool   `json:"prayer_req_display"`

	LifeVerseDisplay bool   `json:"life_verse_display"`
	LifeVerseBook    string `json:"life_verse_book,omitempty"`
	LifeVerseChapter int    `json:"life_verse_chapter,omitempty"`
	LifeVerseStart   int    `json:"life_verse_start,omitempty"`
	LifeVerseEnd     int    `json:"life_verse_end,omitempty"`
}
