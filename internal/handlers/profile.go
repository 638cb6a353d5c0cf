package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tawg-app/tawg-backend/internal/bible"
	"github.com/tawg-app/tawg-backend/internal/models"
	"github.com/tawg-app/tawg-backend/internal/services"
)

type ProfileUpdateRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	PrayerReq        string `json:"prayer_req"`
	PrayerReqDisplay bool   `json:"prayer_req_display"`
	LifeVerseDisplay bool   `json:"life_verse_display"`
	LifeVerseBook    string `json:"life_verse_book"`
	LifeVerseChapter int    `json:"life_verse_chapter"`
	LifeVerseStart   int    `json:"life_verse_start"`
	LifeVerseEnd     int    `json:"life_verse_end"`
}

type ProfileResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Profile *models.Profile `json:"profile,omitempty"`
}

type UserProfileResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Profile *models.Profile     `json:"profile,omitempty"`
	Streak  int                 `json:"streak"`
	Status  models.FriendState  `json:"status,omitempty"`
	Notes   []models.Note       `json:"notes"`
}

// GetMyProfile returns the caller's own profile.
func GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ProfileResponse{Success: false, Message: "Authentication required"})
		return
	}

	profile, err := services.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ProfileResponse{Success: false, Message: "Profile not found"})
		} else {
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{Success: true, Profile: &profile})
}

// UpdateMyProfile updates the caller's profile fields. The username is fixed
// at signup and not editable here.
func UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ProfileResponse{Success: false, Message: "Authentication required"})
		return
	}

	var req ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ProfileResponse{Success: false, Message: "Invalid request body"})
		return
	}

	if req.LifeVerseBook != "" && !bible.ValidVerseRange(req.LifeVerseBook, req.LifeVerseChapter, req.LifeVerseStart, req.LifeVerseEnd) {
		writeJSON(w, http.StatusBadRequest, ProfileResponse{Success: false, Message: "Invalid life verse reference"})
		return
	}

	profile, err := services.GetProfile(userID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	profile.Name = req.Name
	profile.Description = req.Description
	profile.PrayerReq = req.PrayerReq
	profile.PrayerReqDisplay = req.PrayerReqDisplay
	profile.LifeVerseDisplay = req.LifeVerseDisplay
	profile.LifeVerseBook = req.LifeVerseBook
	profile.LifeVerseChapter = req.LifeVerseChapter
	profile.LifeVerseStart = req.LifeVerseStart
	profile.LifeVerseEnd = req.LifeVerseEnd

	if err := services.UpdateProfile(&profile); err != nil {
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{
		Success: true,
		Message: "Profile updated successfully",
		Profile: &profile,
	})
}

// GetUserProfile returns another user's profile by ?id=. Entries are listed
// only for the owner and friends, restricted to public visibilities for
// friends. Prayer request and life verse honor their display flags for
// anyone but the owner.
func GetUserProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, UserProfileResponse{Success: false, Message: "Authentication required", Notes: []models.Note{}})
		return
	}

	targetID, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, UserProfileResponse{Success: false, Message: "Invalid user id", Notes: []models.Note{}})
		return
	}

	profile, err := services.GetProfile(targetID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, UserProfileResponse{Success: false, Message: "Profile not found", Notes: []models.Note{}})
		} else {
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	state, err := friendGraph.RelationState(userID, targetID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	isOwner := userID == targetID
	isFriend := state == models.FriendStateFriends

	if !isOwner {
		if !profile.PrayerReqDisplay {
			profile.PrayerReq = ""
		}
		if !profile.LifeVerseDisplay {
			profile.LifeVerseBook = ""
			profile.LifeVerseChapter = 0
			profile.LifeVerseStart = 0
			profile.LifeVerseEnd = 0
		}
	}

	timestamps, err := services.ListNoteTimestamps(targetID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	streak := services.CurrentStreak(services.BuildDaySet(timestamps), time.Now())

	notes := []models.Note{}
	switch {
	case isOwner:
		notes, err = services.ListNotesByOwner(targetID)
	case isFriend:
		notes, err = services.ListVisibleNotesByOwner(targetID, []models.Visibility{
			models.VisibilityPublicAll, models.VisibilityPublicFriends,
		})
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	// Private fields are for the owner's eyes only
	if !isOwner {
		for i := range notes {
			notes[i].PrivateNotesContent = ""
			notes[i].PrivatePrayerContent = ""
		}
	}

	writeJSON(w, http.StatusOK, UserProfileResponse{
		Success: true,
		Profile: &profile,
		Streak:  streak,
		Status:  state,
		Notes:   notes,
	})
}

// GetCommunity lists every other user's profile for the find-friends page.
func GetCommunity(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"success": false, "message": "Authentication required", "profiles": []models.Profile{},
		})
		return
	}

	profiles, err := services.ListProfilesExcept(userID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	// Display flags apply to everything shown off the owner's own page
	for i := range profiles {
		if !profiles[i].PrayerReqDisplay {
			profiles[i].PrayerReq = ""
		}
		if !profiles[i].LifeVerseDisplay {
			profiles[i].LifeVerseBook = ""
			profiles[i].LifeVerseChapter = 0
			profiles[i].LifeVerseStart = 0
			profiles[i].LifeVerseEnd = 0
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"profiles": profiles,
	})
}
