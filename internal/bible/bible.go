// Package bible holds canonical metadata about the 66 books: ordering,
// chapter counts, and reference validation. The verse text itself lives with
// the frontend dataset and is not served here.
package bible

// Book is one canonical book with its chapter count.
type Book struct {
	Name     string `json:"name"`
	Chapters int    `json:"chapters"`
}

// Books lists the 66 books in canonical order.
var Books = []Book{
	{"Genesis", 50}, {"Exodus", 40}, {"Leviticus", 27}, {"Numbers", 36},
	{"Deuteronomy", 34}, {"Joshua", 24}, {"Judges", 21}, {"Ruth", 4},
	{"1 Samuel", 31}, {"2 Samuel", 24}, {"1 Kings", 22}, {"2 Kings", 25},
	{"1 Chronicles", 29}, {"2 Chronicles", 36}, {"Ezra", 10}, {"Nehemiah", 13},
	{"Esther", 10}, {"Job", 42}, {"Psalms", 150}, {"Proverbs", 31},
	{"Ecclesiastes", 12}, {"Song of Solomon", 8}, {"Isaiah", 66}, {"Jeremiah", 52},
	{"Lamentations", 5}, {"Ezekiel", 48}, {"Daniel", 12}, {"Hosea", 14},
	{"Joel", 3}, {"Amos", 9}, {"Obadiah", 1}, {"Jonah", 4},
	{"Micah", 7}, {"Nahum", 3}, {"Habakkuk", 3}, {"Zephaniah", 3},
	{"Haggai", 2}, {"Zechariah", 14}, {"Malachi", 4},
	{"Matthew", 28}, {"Mark", 16}, {"Luke", 24}, {"John", 21},
	{"Acts", 28}, {"Romans", 16}, {"1 Corinthians", 16}, {"2 Corinthians", 13},
	{"Galatians", 6}, {"Ephesians", 6}, {"Philippians", 4}, {"Colossians", 4},
	{"1 Thessalonians", 5}, {"2 Thessalonians", 3}, {"1 Timothy", 6}, {"2 Timothy", 4},
	{"Titus", 3}, {"Philemon", 1}, {"Hebrews", 13}, {"James", 5},
	{"1 Peter", 5}, {"2 Peter", 3}, {"1 John", 5}, {"2 John", 1},
	{"3 John", 1}, {"Jude", 1}, {"Revelation", 22},
}

var chaptersByBook = func() map[string]int {
	m := make(map[string]int, len(Books))
	for _, b := range Books {
		m[b.Name] = b.Chapters
	}
	return m
}()

// Chapters returns the chapter count for a book, or 0 if the book is unknown.
func Chapters(book string) int {
	return chaptersByBook[book]
}

// BookExists reports whether the book name is canonical.
func BookExists(book string) bool {
	_, ok := chaptersByBook[book]
	return ok
}

// ValidReference reports whether (book, chapter) names a real chapter.
func ValidReference(book string, chapter int) bool {
	n, ok := chaptersByBook[book]
	return ok && chapter >= 1 && chapter <= n
}

// ValidVerseRange reports whether a (book, chapter, start, end) verse range is
// plausible. Verse counts per chapter aren't tracked here, so the upper bound
// is only checked for ordering and positivity.
func ValidVerseRange(book string, chapter, start, end int) bool {
	return ValidReference(book, chapter) && start >= 1 && end >= start
}

// TotalChapters is the chapter count across all 66 books (1189).
func TotalChapters() int {
	total := 0
	for _, b := range Books {
		total += b.Chapters
	}
	return total
}
