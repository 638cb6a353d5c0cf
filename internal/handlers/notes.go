package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/tawg-app/tawg-backend/internal/bible"
	"github.com/tawg-app/tawg-backend/internal/models"
	"github.com/tawg-app/tawg-backend/internal/services"
)

type NoteRequest struct {
	Title                string                 `json:"title"`
	PublicNotesContent   string                 `json:"public_notes_content"`
	PrivateNotesContent  string                 `json:"private_notes_content"`
	PublicPrayerContent  string                 `json:"public_prayer_content"`
	PrivatePrayerContent string                 `json:"private_prayer_content"`
	Visibility           string                 `json:"visibility"`
	PDFURL               string                 `json:"pdf_url"`
	MemVerseDisplay      bool                   `json:"mem_verse_display"`
	MemVerseBook         string                 `json:"mem_verse_book"`
	MemVerseChapter      int                    `json:"mem_verse_chapter"`
	MemVerseStart        int                    `json:"mem_verse_start"`
	MemVerseEnd          int                    `json:"mem_verse_end"`
	References           []models.NoteReference `json:"references"`
}

type NoteResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Note    *models.Note `json:"note,omitempty"`
}

type NotesResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Notes   []models.Note `json:"notes"`
	Total   int           `json:"total"`
}

// validateNoteRequest checks visibility, references, and the memory verse
// against real Bible data. Returns "" when valid.
func validateNoteRequest(req *NoteRequest) string {
	if req.Title == "" {
		return "Title is required"
	}
	if !models.Visibility(req.Visibility).Valid() {
		return "Invalid visibility"
	}
	for _, ref := range req.References {
		if !bible.ValidReference(ref.Book, ref.Chapter) {
			return "Invalid reference: " + ref.Book
		}
	}
	if req.MemVerseBook != "" && !bible.ValidVerseRange(req.MemVerseBook, req.MemVerseChapter, req.MemVerseStart, req.MemVerseEnd) {
		return "Invalid memory verse reference"
	}
	return ""
}

func noteFromRequest(req *NoteRequest, userID uuid.UUID) models.Note {
	return models.Note{
		UserID:               userID,
		Title:                req.Title,
		PublicNotesContent:   req.PublicNotesContent,
		PrivateNotesContent:  req.PrivateNotesContent,
		PublicPrayerContent:  req.PublicPrayerContent,
		PrivatePrayerContent: req.PrivatePrayerContent,
		Visibility:           models.Visibility(req.Visibility),
		PDFURL:               req.PDFURL,
		MemVerseDisplay:      req.MemVerseDisplay,
		MemVerseBook:         req.MemVerseBook,
		MemVerseChapter:      req.MemVerseChapter,
		MemVerseStart:        req.MemVerseStart,
		MemVerseEnd:          req.MemVerseEnd,
		References:           req.References,
	}
}

// CreateNote creates a TAWG entry for the authenticated user.
func CreateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, NoteResponse{Success: false, Message: "Authentication required"})
		return
	}

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, NoteResponse{Success: false, Message: "Invalid request body"})
		return
	}
	if req.Visibility == "" {
		req.Visibility = string(models.VisibilityPublicAll)
	}
	if msg := validateNoteRequest(&req); msg != "" {
		writeJSON(w, http.StatusBadRequest, NoteResponse{Success: false, Message: msg})
		return
	}

	note := noteFromRequest(&req, userID)
	if err := services.CreateNote(&note); err != nil {
		http.Error(w, "Failed to create entry", http.StatusInternalServerError)
		return
	}

	// Streak and totals changed
	services.InvalidateDashboardStats(userID)

	writeJSON(w, http.StatusCreated, NoteResponse{
		Success: true,
		Message: "Entry created successfully",
		Note:    &note,
	})
}

// GetNote returns one entry by ?id=. The owner always sees it; anyone else
// sees it only when the feed would show it, with private fields stripped and
// identity removed for anonymous visibilities.
func GetNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, NoteResponse{Success: false, Message: "Authentication required"})
		return
	}

	noteID, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, NoteResponse{Success: false, Message: "Invalid note id"})
		return
	}

	note, err := services.GetNote(noteID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, NoteResponse{Success: false, Message: "Entry not found"})
		} else {
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	if note.UserID != userID {
		circle, err := friendGraph.ViewerCircle(userID)
		if err != nil {
			http.Error(w, "Database error", http.StatusInternalServerError)
			return
		}
		items := services.FilterFeed([]models.Note{note}, circle)
		if len(items) == 0 {
			writeJSON(w, http.StatusForbidden, NoteResponse{Success: false, Message: "You do not have access to this entry"})
			return
		}
		note = items[0].Note
	}

	writeJSON(w, http.StatusOK, NoteResponse{Success: true, Note: &note})
}

// GetMyNotes lists all of the authenticated user's entries, newest first.
func GetMyNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, NotesResponse{Success: false, Message: "Authentication required", Notes: []models.Note{}})
		return
	}

	notes, err := services.ListNotesByOwner(userID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, NotesResponse{
		Success: true,
		Notes:   notes,
		Total:   len(notes),
	})
}

// UpdateNote rewrites an entry by ?id=. Owner only.
func UpdateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, NoteResponse{Success: false, Message: "Authentication required"})
		return
	}

	noteID, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, NoteResponse{Success: false, Message: "Invalid note id"})
		return
	}

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, NoteResponse{Success: false, Message: "Invalid request body"})
		return
	}
	if msg := validateNoteRequest(&req); msg != "" {
		writeJSON(w, http.StatusBadRequest, NoteResponse{Success: false, Message: msg})
		return
	}

	note := noteFromRequest(&req, userID)
	if err := services.UpdateNote(noteID, userID, &note); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeJSON(w, http.StatusNotFound, NoteResponse{Success: false, Message: "Entry not found"})
		case errors.Is(err, services.ErrUnauthorized):
			writeJSON(w, http.StatusForbidden, NoteResponse{Success: false, Message: "You can only edit your own entries"})
		default:
			http.Error(w, "Failed to update entry", http.StatusInternalServerError)
		}
		return
	}

	services.InvalidateDashboardStats(userID)

	updated, err := services.GetNote(noteID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, NoteResponse{
		Success: true,
		Message: "Entry updated successfully",
		Note:    &updated,
	})
}

// DeleteNote removes an entry by ?id=. Owner only.
func DeleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, NoteResponse{Success: false, Message: "Authentication required"})
		return
	}

	noteID, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, NoteResponse{Success: false, Message: "Invalid note id"})
		return
	}

	if err := services.DeleteNote(noteID, userID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeJSON(w, http.StatusNotFound, NoteResponse{Success: false, Message: "Entry not found"})
		case errors.Is(err, services.ErrUnauthorized):
			writeJSON(w, http.StatusForbidden, NoteResponse{Success: false, Message: "You can only delete your own entries"})
		default:
			http.Error(w, "Failed to delete entry", http.StatusInternalServerError)
		}
		return
	}

	services.InvalidateDashboardStats(userID)

	writeJSON(w, http.StatusOK, NoteResponse{
		Success: true,
		Message: "Entry deleted successfully",
	})
}
