package bible

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooksCanonical(t *testing.T) {
	require.Len(t, Books, 66)
	assert.Equal(t, "Genesis", Books[0].Name)
	assert.Equal(t, "Revelation", Books[65].Name)
	assert.Equal(t, 1189, TotalChapters())
}

func TestChapters(t *testing.T) {
	assert.Equal(t, 150, Chapters("Psalms"))
	assert.Equal(t, 50, Chapters("Genesis"))
	assert.Equal(t, 0, Chapters("Opinions"))
}

func TestValidReference(t *testing.T) {
	assert.True(t, ValidReference("John", 3))
	assert.True(t, ValidReference("Jude", 1))
	assert.False(t, ValidReference("John", 22))
	assert.False(t, ValidReference("John", 0))
	assert.False(t, ValidReference("Hezekiah", 1))
}

func TestValidVerseRange(t *testing.T) {
	assert.True(t, ValidVerseRange("John", 3, 16, 16))
	assert.True(t, ValidVerseRange("Romans", 8, 28, 39))
	assert.False(t, ValidVerseRange("Romans", 8, 39, 28), "end before start")
	assert.False(t, ValidVerseRange("Romans", 8, 0, 1))
}

func TestFortyDayPlan(t *testing.T) {
	require.Len(t, FortyDayPlan, 40)
	for i, d := range FortyDayPlan {
		assert.Equal(t, i+1, d.Day)
		assert.True(t, BookExists(d.Book), "unknown book %q on day %d", d.Book, d.Day)
	}
}
