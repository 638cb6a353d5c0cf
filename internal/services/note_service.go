package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/tawg-app/tawg-backend/internal/database"
	"github.com/tawg-app/tawg-backend/internal/models"
)

const noteColumns = `
	id, user_id, created_at, updated_at, title,
	COALESCE(public_notes_content, ''), COALESCE(private_notes_content, ''),
	COALESCE(public_prayer_content, ''), COALESCE(private_prayer_content, ''),
	visibility, COALESCE(pdf_url, ''),
	mem_verse_display, COALESCE(mem_verse_book, ''),
	COALESCE(mem_verse_chapter, 0), COALESCE(mem_verse_start, 0), COALESCE(mem_verse_end, 0)`

func scanNote(row interface{ Scan(...interface{}) error }) (models.Note, error) {
	var n models.Note
	err := row.Scan(
		&n.ID, &n.UserID, &n.CreatedAt, &n.UpdatedAt, &n.Title,
		&n.PublicNotesContent, &n.PrivateNotesContent,
		&n.PublicPrayerContent, &n.PrivatePrayerContent,
		&n.Visibility, &n.PDFURL,
		&n.MemVerseDisplay, &n.MemVerseBook,
		&n.MemVerseChapter, &n.MemVerseStart, &n.MemVerseEnd,
	)
	return n, err
}

// CreateNote inserts a note with its references in one transaction, so a
// failed reference insert never leaves a note without its chapters.
func CreateNote(note *models.Note) error {
	tx, err := database.PostgresDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	note.ID = uuid.New()
	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	_, err = tx.Exec(`
		INSERT INTO notes (
			id, user_id, created_at, updated_at, title,
			public_notes_content, private_notes_content,
			public_prayer_content, private_prayer_content,
			visibility, pdf_url,
			mem_verse_display, mem_verse_book, mem_verse_chapter, mem_verse_start, mem_verse_end
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`, note.ID, note.UserID, note.CreatedAt, note.UpdatedAt, note.Title,
		note.PublicNotesContent, note.PrivateNotesContent,
		note.PublicPrayerContent, note.PrivatePrayerContent,
		note.Visibility, nullIfEmpty(note.PDFURL),
		note.MemVerseDisplay, nullIfEmpty(note.MemVerseBook), note.MemVerseChapter, note.MemVerseStart, note.MemVerseEnd)
	if err != nil {
		return err
	}

	if err := insertReferences(tx, note.ID, note.References); err != nil {
		return err
	}

	return tx.Commit()
}

// GetNote fetches one note with its references. Returns ErrNotFound if absent.
func GetNote(noteID uuid.UUID) (models.Note, error) {
	row := database.PostgresDB.QueryRow(`SELECT `+noteColumns+` FROM notes WHERE id = $1`, noteID)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNotFound
	}
	if err != nil {
		return models.Note{}, err
	}

	n.References, err = ListReferences(n.ID)
	return n, err
}

// UpdateNote rewrites a note's editable fields and replaces its references.
// Only the owner may update; the check happens before any write.
func UpdateNote(noteID, ownerID uuid.UUID, note *models.Note) error {
	var dbOwner uuid.UUID
	err := database.PostgresDB.QueryRow(`SELECT user_id FROM notes WHERE id = $1`, noteID).Scan(&dbOwner)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if dbOwner != ownerID {
		return ErrUnauthorized
	}

	tx, err := database.PostgresDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE notes SET
			updated_at = NOW(),
			title = $2,
			public_notes_content = $3,
			private_notes_content = $4,
			public_prayer_content = $5,
			private_prayer_content = $6,
			visibility = $7,
			pdf_url = $8,
			mem_verse_display = $9,
			mem_verse_book = $10,
			mem_verse_chapter = $11,
			mem_verse_start = $12,
			mem_verse_end = $13
		WHERE id = $1
	`, noteID, note.Title,
		note.PublicNotesContent, note.PrivateNotesContent,
		note.PublicPrayerContent, note.PrivatePrayerContent,
		note.Visibility, nullIfEmpty(note.PDFURL),
		note.MemVerseDisplay, nullIfEmpty(note.MemVerseBook), note.MemVerseChapter, note.MemVerseStart, note.MemVerseEnd)
	if err != nil {
		return err
	}

	// Replace references wholesale (delete then insert, same transaction)
	if _, err := tx.Exec(`DELETE FROM note_references WHERE note_id = $1`, noteID); err != nil {
		return err
	}
	if err := insertReferences(tx, noteID, note.References); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteNote removes a note (references cascade). Only the owner may delete.
func DeleteNote(noteID, ownerID uuid.UUID) error {
	var dbOwner uuid.UUID
	err := database.PostgresDB.QueryRow(`SELECT user_id FROM notes WHERE id = $1`, noteID).Scan(&dbOwner)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if dbOwner != ownerID {
		return ErrUnauthorized
	}

	_, err = database.PostgresDB.Exec(`DELETE FROM notes WHERE id = $1`, noteID)
	return err
}

// ListNotesByOwner returns all of one user's notes, newest first, with
// references attached.
func ListNotesByOwner(ownerID uuid.UUID) ([]models.Note, error) {
	rows, err := database.PostgresDB.Query(`
		SELECT `+noteColumns+` FROM notes WHERE user_id = $1 ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	return collectNotes(rows)
}

// ListVisibleNotesByOwner returns another user's notes restricted to the
// given visibilities, newest first. Used by the profile page for friends.
func ListVisibleNotesByOwner(ownerID uuid.UUID, visibilities []models.Visibility) ([]models.Note, error) {
	vis := make([]string, len(visibilities))
	for i, v := range visibilities {
		vis[i] = string(v)
	}
	rows, err := database.PostgresDB.Query(`
		SELECT `+noteColumns+` FROM notes
		WHERE user_id = $1 AND visibility = ANY($2)
		ORDER BY created_at DESC
	`, ownerID, pq.Array(vis))
	if err != nil {
		return nil, err
	}
	return collectNotes(rows)
}

// ListFeedCandidates returns one page of feed-eligible notes ordered by
// created_at desc. Visibility filtering per viewer happens afterwards in
// FilterFeed; a page may therefore shrink but its order is stable across
// pages.
func ListFeedCandidates(limit, offset int) ([]models.Note, error) {
	rows, err := database.PostgresDB.Query(`
		SELECT `+noteColumns+` FROM notes
		WHERE visibility IN ('public_all', 'public_friends', 'private_anonymous')
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectNotes(rows)
}

// ListNoteTimestamps returns the created_at of every note a user owns. Input
// for the streak calculator.
func ListNoteTimestamps(ownerID uuid.UUID) ([]time.Time, error) {
	rows, err := database.PostgresDB.Query(`SELECT created_at FROM notes WHERE user_id = $1`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListReferences returns the (book, chapter) rows of one note.
func ListReferences(noteID uuid.UUID) ([]models.NoteReference, error) {
	rows, err := database.PostgresDB.Query(`
		SELECT book, chapter FROM note_references WHERE note_id = $1
	`, noteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := make([]models.NoteReference, 0)
	for rows.Next() {
		var r models.NoteReference
		if err := rows.Scan(&r.Book, &r.Chapter); err != nil {
			return nil, err
		}
		refs = append(refs, r)
	}
	return refs, rows.Err()
}

// ListReferencesByOwner returns every reference row across all of a user's
// notes. Input for most-read-book and reading progress.
func ListReferencesByOwner(ownerID uuid.UUID) ([]models.NoteReference, error) {
	rows, err := database.PostgresDB.Query(`
		SELECT r.book, r.chapter
		FROM note_references r
		JOIN notes n ON n.id = r.note_id
		WHERE n.user_id = $1
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := make([]models.NoteReference, 0)
	for rows.Next() {
		var r models.NoteReference
		if err := rows.Scan(&r.Book, &r.Chapter); err != nil {
			return nil, err
		}
		refs = append(refs, r)
	}
	return refs, rows.Err()
}

func insertReferences(tx *sql.Tx, noteID uuid.UUID, refs []models.NoteReference) error {
	for _, ref := range refs {
		_, err := tx.Exec(`
			INSERT INTO note_references (id, note_id, book, chapter)
			VALUES (gen_random_uuid(), $1, $2, $3)
		`, noteID, ref.Book, ref.Chapter)
		if err != nil {
			return err
		}
	}
	return nil
}

func collectNotes(rows *sql.Rows) ([]models.Note, error) {
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range notes {
		refs, err := ListReferences(notes[i].ID)
		if err != nil {
			return nil, err
		}
		notes[i].References = refs
	}
	return notes, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
