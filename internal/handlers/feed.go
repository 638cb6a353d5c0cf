package handlers

import (
	"net/http"
	"strconv"

	"github.com/tawg-app/tawg-backend/internal/services"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100
)

type FeedResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Items   []services.FeedItem `json:"items"`
	Limit   int                 `json:"limit"`
	Offset  int                 `json:"offset"`
}

// GetFeed returns one page of the shared feed, filtered for the caller.
// Pagination runs over the candidate set before filtering, so a page can
// come back shorter than the limit without being the last one.
func GetFeed(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, FeedResponse{Success: false, Message: "Authentication required", Items: []services.FeedItem{}})
		return
	}

	limit := defaultFeedLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed > 0 && parsed <= maxFeedLimit {
			limit = parsed
		}
	}
	offset := 0
	if s := r.URL.Query().Get("offset"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	candidates, err := services.ListFeedCandidates(limit, offset)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	circle, err := friendGraph.ViewerCircle(userID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	items := services.FilterFeed(candidates, circle)

	writeJSON(w, http.StatusOK, FeedResponse{
		Success: true,
		Items:   items,
		Limit:   limit,
		Offset:  offset,
	})
}
