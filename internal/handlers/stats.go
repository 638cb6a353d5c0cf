package handlers

import (
	"net/http"
	"time"

	"github.com/tawg-app/tawg-backend/internal/services"
)

type DashboardResponse struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message,omitempty"`
	Stats   *services.DashboardStats `json:"stats,omitempty"`
}

type AccountabilityResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message,omitempty"`
	Board   []services.FriendStreak `json:"board"`
}

type ProgressResponse struct {
	Success  bool                      `json:"success"`
	Message  string                    `json:"message,omitempty"`
	Progress *services.ReadingProgress `json:"progress,omitempty"`
}

// GetDashboard returns the caller's summary stats (cached).
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, DashboardResponse{Success: false, Message: "Authentication required"})
		return
	}

	stats, err := services.GetDashboardStats(friendGraph, userID, time.Now())
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, DashboardResponse{Success: true, Stats: &stats})
}

// GetAccountability returns streaks and trailing 7 days for the caller and
// every friend, sorted by username.
func GetAccountability(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, AccountabilityResponse{Success: false, Message: "Authentication required", Board: []services.FriendStreak{}})
		return
	}

	board, err := services.AccountabilityBoard(friendGraph, userID, time.Now())
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, AccountabilityResponse{Success: true, Board: board})
}

// GetReadingProgress returns per-book chapters read and overall percentage.
func GetReadingProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ProgressResponse{Success: false, Message: "Authentication required"})
		return
	}

	refs, err := services.ListReferencesByOwner(userID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	progress := services.BuildReadingProgress(refs)
	writeJSON(w, http.StatusOK, ProgressResponse{Success: true, Progress: &progress})
}
