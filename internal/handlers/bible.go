package handlers

import (
	"net/http"

	"github.com/tawg-app/tawg-backend/internal/bible"
)

type BooksResponse struct {
	Success bool         `json:"success"`
	Books   []bible.Book `json:"books"`
}

type PlanResponse struct {
	Success bool            `json:"success"`
	Plan    []bible.PlanDay `json:"plan"`
}

// GetBooks returns the 66 books with their chapter counts.
func GetBooks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, BooksResponse{Success: true, Books: bible.Books})
}

// GetReadingPlan returns the 40-day starter plan.
func GetReadingPlan(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PlanResponse{Success: true, Plan: bible.FortyDayPlan})
}
