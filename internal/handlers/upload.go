package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/tawg-app/tawg-backend/internal/config"
	"github.com/tawg-app/tawg-backend/internal/services"
)

var cloudinaryService *services.CloudinaryService

func InitCloudinaryService(cfg *config.Config) error {
	service, err := services.NewCloudinaryService(
		cfg.CloudinaryName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return err
	}
	cloudinaryService = service
	return nil
}

type UploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
}

// UploadAvatar stores a new avatar image and saves its URL on the caller's
// profile. The public id is the user id, so a re-upload replaces the old one.
func UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, UploadResponse{Success: false, Message: "Authentication required"})
		return
	}

	if cloudinaryService == nil {
		http.Error(w, "File upload service not available", http.StatusInternalServerError)
		return
	}

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "No file provided: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := cloudinaryService.UploadFileFromHeader(r.Context(), fileHeader, "avatars", userID.String())
	if err != nil {
		http.Error(w, "Failed to upload file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	profile, err := services.GetProfile(userID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	profile.AvatarURL = url
	if err := services.UpdateProfile(&profile); err != nil {
		http.Error(w, "Failed to save avatar", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{
		Success: true,
		Message: "Avatar uploaded successfully",
		URL:     url,
	})
}

// UploadNotePDF stores a PDF attachment and returns its URL. The client then
// sets pdf_url on the entry it creates or edits.
func UploadNotePDF(w http.ResponseWriter, r *http.Request) {
	_, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, UploadResponse{Success: false, Message: "Authentication required"})
		return
	}

	if cloudinaryService == nil {
		http.Error(w, "File upload service not available", http.StatusInternalServerError)
		return
	}

	// Parse multipart form (max 20MB)
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "No file provided: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := cloudinaryService.UploadFileFromHeader(r.Context(), fileHeader, "note-pdfs", uuid.New().String())
	if err != nil {
		http.Error(w, "Failed to upload file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{
		Success: true,
		Message: "File uploaded successfully",
		URL:     url,
	})
}
