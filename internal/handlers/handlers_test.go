package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tawg-app/tawg-backend/internal/models"
)

func TestExtractBearerToken(t *testing.T) {
	assert.Equal(t, "abc123", extractBearerToken("Bearer abc123"))
	assert.Equal(t, "abc123", extractBearerToken("bearer abc123"))
	assert.Equal(t, "", extractBearerToken(""))
	assert.Equal(t, "", extractBearerToken("Basic abc123"))
	assert.Equal(t, "", extractBearerToken("Bearer"))
}

func TestValidateNoteRequest(t *testing.T) {
	valid := NoteRequest{
		Title:      "Morning reading",
		Visibility: string(models.VisibilityPublicAll),
		References: []models.NoteReference{{Book: "John", Chapter: 3}},
	}
	assert.Empty(t, validateNoteRequest(&valid))

	missingTitle := valid
	missingTitle.Title = ""
	assert.NotEmpty(t, validateNoteRequest(&missingTitle))

	badVisibility := valid
	badVisibility.Visibility = "everyone"
	assert.NotEmpty(t, validateNoteRequest(&badVisibility))

	badReference := valid
	badReference.References = []models.NoteReference{{Book: "Opinions", Chapter: 1}}
	assert.NotEmpty(t, validateNoteRequest(&badReference))

	badChapter := valid
	badChapter.References = []models.NoteReference{{Book: "Jude", Chapter: 2}}
	assert.NotEmpty(t, validateNoteRequest(&badChapter))

	badVerse := valid
	badVerse.MemVerseBook = "John"
	badVerse.MemVerseChapter = 99
	badVerse.MemVerseStart = 1
	badVerse.MemVerseEnd = 2
	assert.NotEmpty(t, validateNoteRequest(&badVerse))
}
