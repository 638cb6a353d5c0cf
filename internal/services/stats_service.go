package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tawg-app/tawg-backend/internal/bible"
	"github.com/tawg-app/tawg-backend/internal/database"
	"github.com/tawg-app/tawg-backend/internal/models"
)

// DashboardStats is the summary shown on the dashboard.
type DashboardStats struct {
	TotalEntries         int    `json:"total_entries"`
	MostReadBook         string `json:"most_read_book"`
	Streak               int    `json:"streak"`
	CompletedToday       bool   `json:"completed_today"`
	FriendsCompletedToday int   `json:"friends_completed_today"`
}

// BookProgress is reading progress within one book.
type BookProgress struct {
	Book         string `json:"book"`
	TotalChapters int   `json:"total_chapters"`
	ReadChapters  int   `json:"read_chapters"`
	Chapters     []int  `json:"chapters"` // distinct chapters read, ascending
}

// ReadingProgress is whole-Bible progress derived from reference rows.
type ReadingProgress struct {
	OverallPercent float64        `json:"overall_percent"`
	Books          []BookProgress `json:"books"`
}

// FriendStreak is one row of the accountability view.
type FriendStreak struct {
	UserID   uuid.UUID   `json:"user_id"`
	Username string      `json:"username"`
	Streak   int         `json:"streak"`
	Last7    []DayStatus `json:"last_7_days"`
}

// TopBook picks the most frequent book among reference rows. Every reference
// counts, including repeat reads of the same chapter. Ties break
// alphabetically so the result is deterministic regardless of query order.
func TopBook(refs []models.NoteReference) (string, bool) {
	if len(refs) == 0 {
		return "", false
	}
	counts := make(map[string]int)
	for _, r := range refs {
		counts[r.Book]++
	}

	best, bestCount := "", 0
	for book, c := range counts {
		if c > bestCount || (c == bestCount && book < best) {
			best, bestCount = book, c
		}
	}
	return best, true
}

// BuildReadingProgress turns a user's reference rows into per-book and
// overall progress. Duplicate reads of a chapter count once.
func BuildReadingProgress(refs []models.NoteReference) ReadingProgress {
	read := make(map[string]map[int]struct{})
	for _, r := range refs {
		if !bible.ValidReference(r.Book, r.Chapter) {
			continue
		}
		if read[r.Book] == nil {
			read[r.Book] = make(map[int]struct{})
		}
		read[r.Book][r.Chapter] = struct{}{}
	}

	var progress ReadingProgress
	totalRead := 0
	for _, b := range bible.Books {
		chapters := make([]int, 0, len(read[b.Name]))
		for ch := range read[b.Name] {
			chapters = append(chapters, ch)
		}
		sort.Ints(chapters)
		totalRead += len(chapters)
		progress.Books = append(progress.Books, BookProgress{
			Book:          b.Name,
			TotalChapters: b.Chapters,
			ReadChapters:  len(chapters),
			Chapters:      chapters,
		})
	}
	progress.OverallPercent = float64(totalRead) / float64(bible.TotalChapters()) * 100
	return progress
}

// TotalEntries counts a user's notes.
func TotalEntries(userID uuid.UUID) (int, error) {
	var count int
	err := database.PostgresDB.QueryRow(`SELECT COUNT(*) FROM notes WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

// MostReferencedBook returns the user's most-read book, or "" when the user
// has no references yet.
func MostReferencedBook(userID uuid.UUID) (string, error) {
	refs, err := ListReferencesByOwner(userID)
	if err != nil {
		return "", err
	}
	book, _ := TopBook(refs)
	return book, nil
}

// Streak computes the user's current daily streak from their note timestamps.
func Streak(userID uuid.UUID, now time.Time) (int, error) {
	timestamps, err := ListNoteTimestamps(userID)
	if err != nil {
		return 0, err
	}
	return CurrentStreak(BuildDaySet(timestamps), now), nil
}

// GetDashboardStats assembles the dashboard summary, with a short-lived Redis
// cache in front. The cache is invalidated whenever the user writes a note;
// a friend finishing today's entry shows up when the TTL lapses.
func GetDashboardStats(graph *FriendGraphService, userID uuid.UUID, now time.Time) (DashboardStats, error) {
	key := dashboardCacheKey(userID)

	var cached DashboardStats
	if hit, err := Cache.Get(key, &cached); err == nil && hit {
		return cached, nil
	}

	var stats DashboardStats
	total, err := TotalEntries(userID)
	if err != nil {
		return stats, err
	}
	stats.TotalEntries = total

	stats.MostReadBook, err = MostReferencedBook(userID)
	if err != nil {
		return stats, err
	}

	timestamps, err := ListNoteTimestamps(userID)
	if err != nil {
		return stats, err
	}
	set := BuildDaySet(timestamps)
	stats.Streak = CurrentStreak(set, now)
	stats.CompletedToday = set.Contains(now)

	stats.FriendsCompletedToday, err = FriendsCompletedToday(graph, userID, now)
	if err != nil {
		return stats, err
	}

	// A cache failure only costs the next request a recompute
	_ = Cache.Set(key, stats)

	return stats, nil
}

// InvalidateDashboardStats drops the cached summary after a note write.
func InvalidateDashboardStats(userID uuid.UUID) {
	_ = Cache.Delete(dashboardCacheKey(userID))
}

func dashboardCacheKey(userID uuid.UUID) string {
	return CacheKey("dashboard", userID.String())
}

// AccountabilityBoard returns streak + trailing-7-day maps for the user and
// each of their friends, usernames resolved, sorted by username for a stable
// order.
func AccountabilityBoard(graph *FriendGraphService, userID uuid.UUID, now time.Time) ([]FriendStreak, error) {
	circle, err := graph.ViewerCircle(userID)
	if err != nil {
		return nil, err
	}

	board := make([]FriendStreak, 0, len(circle))
	for id := range circle {
		username, err := GetUsernameByID(id)
		if err != nil {
			return nil, err
		}
		timestamps, err := ListNoteTimestamps(id)
		if err != nil {
			return nil, err
		}
		set := BuildDaySet(timestamps)
		board = append(board, FriendStreak{
			UserID:   id,
			Username: username,
			Streak:   CurrentStreak(set, now),
			Last7:    TrailingDays(set, now, 7),
		})
	}

	sort.Slice(board, func(i, j int) bool { return board[i].Username < board[j].Username })
	return board, nil
}

// FriendsCompletedToday counts how many of the user's friends have an entry
// on today's calendar day.
func FriendsCompletedToday(graph *FriendGraphService, userID uuid.UUID, now time.Time) (int, error) {
	friends, err := graph.FriendIDsOf(userID)
	if err != nil {
		return 0, err
	}

	count := 0
	for id := range friends {
		timestamps, err := ListNoteTimestamps(id)
		if err != nil {
			return 0, fmt.Errorf("friend %s: %w", id, err)
		}
		if BuildDaySet(timestamps).Contains(now) {
			count++
		}
	}
	return count, nil
}
