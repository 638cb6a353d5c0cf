package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/tawg-app/tawg-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Auth routes
	r.Post("/api/auth/signup", handlers.Signup)
	r.Post("/api/auth/signin", handlers.Signin)
	r.Post("/api/auth/signout", handlers.Signout)
	r.Get("/api/auth/me", handlers.GetMe)

	// TAWG entry routes (?id= for single-entry operations)
	r.Post("/api/notes", handlers.CreateNote)
	r.Get("/api/notes", handlers.GetMyNotes)
	r.Get("/api/notes/entry", handlers.GetNote)
	r.Put("/api/notes", handlers.UpdateNote)
	r.Delete("/api/notes", handlers.DeleteNote)

	// Shared feed
	r.Get("/api/feed", handlers.GetFeed)

	// Friend graph routes
	r.Get("/api/friends", handlers.GetFriends)
	r.Delete("/api/friends", handlers.Unfriend)
	r.Get("/api/friends/requests", handlers.GetFriendRequests)
	r.Post("/api/friends/requests", handlers.SendFriendRequest)
	r.Post("/api/friends/requests/accept", handlers.AcceptFriendRequest)
	r.Delete("/api/friends/requests", handlers.DeclineFriendRequest)
	r.Get("/api/friends/status", handlers.GetFriendStatus)

	// Stats routes
	r.Get("/api/stats/dashboard", handlers.GetDashboard)
	r.Get("/api/stats/accountability", handlers.GetAccountability)
	r.Get("/api/stats/progress", handlers.GetReadingProgress)

	// Profile routes
	r.Get("/api/profile", handlers.GetMyProfile)
	r.Put("/api/profile", handlers.UpdateMyProfile)
	r.Get("/api/profiles", handlers.GetUserProfile)
	r.Get("/api/community", handlers.GetCommunity)

	// File upload routes
	r.Post("/api/upload/avatar", handlers.UploadAvatar)
	r.Post("/api/upload/pdf", handlers.UploadNotePDF)

	// Bible data routes
	r.Get("/api/bible/books", handlers.GetBooks)
	r.Get("/api/plan", handlers.GetReadingPlan)
}
