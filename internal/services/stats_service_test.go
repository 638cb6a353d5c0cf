package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawg-app/tawg-backend/internal/models"
)

func refs(books ...string) []models.NoteReference {
	out := make([]models.NoteReference, len(books))
	for i, b := range books {
		out[i] = models.NoteReference{Book: b, Chapter: 1}
	}
	return out
}

func TestTopBook(t *testing.T) {
	book, ok := TopBook(refs("Genesis", "Genesis", "Exodus"))
	require.True(t, ok)
	assert.Equal(t, "Genesis", book)
}

func TestTopBookEmpty(t *testing.T) {
	_, ok := TopBook(nil)
	assert.False(t, ok)
}

func TestTopBookTieBreaksAlphabetically(t *testing.T) {
	// Equal counts: the winner must not depend on map iteration order
	book, ok := TopBook(refs("Romans", "Acts", "Romans", "Acts"))
	require.True(t, ok)
	assert.Equal(t, "Acts", book)
}

func TestBuildReadingProgress(t *testing.T) {
	input := []models.NoteReference{
		{Book: "Genesis", Chapter: 1},
		{Book: "Genesis", Chapter: 2},
		{Book: "Genesis", Chapter: 1}, // re-read counts once
		{Book: "Jude", Chapter: 1},
	}
	p := BuildReadingProgress(input)

	require.Len(t, p.Books, 66)
	byBook := make(map[string]BookProgress)
	for _, b := range p.Books {
		byBook[b.Book] = b
	}

	assert.Equal(t, 2, byBook["Genesis"].ReadChapters)
	assert.Equal(t, []int{1, 2}, byBook["Genesis"].Chapters)
	assert.Equal(t, 50, byBook["Genesis"].TotalChapters)
	assert.Equal(t, 1, byBook["Jude"].ReadChapters)
	assert.Equal(t, 0, byBook["Exodus"].ReadChapters)

	// 3 distinct chapters of 1189
	assert.InDelta(t, 3.0/1189.0*100, p.OverallPercent, 1e-9)
}

func TestBuildReadingProgressSkipsUnknownReferences(t *testing.T) {
	p := BuildReadingProgress([]models.NoteReference{
		{Book: "Genesis", Chapter: 99}, // no such chapter
		{Book: "Opinions", Chapter: 1}, // no such book
	})
	assert.Zero(t, p.OverallPercent)
}
