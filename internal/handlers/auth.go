package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tawg-app/tawg-backend/internal/services"
	"github.com/tawg-app/tawg-backend/pkg/utils"
)

// Signup Request. Username is optional; when empty one is generated.
type SignupRequest struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// Signin Request
type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Auth Response
type AuthResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	User    map[string]interface{} `json:"user,omitempty"`
	Token   string                 `json:"token,omitempty"`
}

// extractBearerToken returns the token from an "Authorization: Bearer <token>" header, or "".
func extractBearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// requireAuth validates the session and returns the authenticated user's ID.
// Returns (uuid.Nil, false) if not authenticated.
func requireAuth(r *http.Request) (uuid.UUID, bool) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return uuid.Nil, false
	}
	userID, ok, err := services.ValidateSession(token)
	if err != nil || !ok {
		return uuid.Nil, false
	}
	return userID, true
}

// writeJSON writes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Signup handles user registration. When no username is supplied an
// adjective_animal one is generated and checked for uniqueness.
func Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Validate password
	if len(req.Password) < 8 {
		writeJSON(w, http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: "Password must be at least 8 characters",
		})
		return
	}

	username := utils.NormalizeUsername(req.Username)
	if username == "" {
		generated, err := services.GenerateUniqueUsername()
		if err != nil {
			http.Error(w, "Failed to generate username", http.StatusInternalServerError)
			return
		}
		username = generated
	} else {
		if err := utils.ValidateUsername(username); err != nil {
			writeJSON(w, http.StatusBadRequest, AuthResponse{
				Success: false,
				Message: err.Error(),
			})
			return
		}
	}

	// Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		http.Error(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}

	userID, err := services.CreateUser(username, hashedPassword)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			writeJSON(w, http.StatusConflict, AuthResponse{
				Success: false,
				Message: "Username is already taken",
			})
			return
		}
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	if req.Name != "" {
		profile, err := services.GetProfile(userID)
		if err == nil {
			profile.Name = req.Name
			// Best effort; the account exists either way
			services.UpdateProfile(&profile)
		}
	}

	token, err := services.CreateSession(userID)
	if err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	userMap := map[string]interface{}{
		"id":         userID.String(),
		"username":   username,
		"created_at": time.Now(),
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Success: true,
		Message: "Account created successfully",
		User:    userMap,
		Token:   token,
	})
}

// Signin handles user login
func Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Validate required fields
	if req.Username == "" || req.Password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	username := utils.NormalizeUsername(req.Username)

	userID, passwordHash, isActive, err := services.GetCredentials(username)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		} else {
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	if !isActive {
		http.Error(w, "Account is inactive", http.StatusForbidden)
		return
	}

	// Verify password
	valid, err := utils.VerifyPassword(req.Password, passwordHash)
	if err != nil || !valid {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	token, err := services.CreateSession(userID)
	if err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	userMap := map[string]interface{}{
		"id":       userID.String(),
		"username": username,
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    userMap,
		Token:   token,
	})
}

// Signout invalidates the caller's session token.
func Signout(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, AuthResponse{
			Success: false,
			Message: "Authentication required",
		})
		return
	}

	if err := services.InvalidateSession(token); err != nil {
		http.Error(w, "Failed to sign out", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Signed out successfully",
	})
}

// GetMe returns the authenticated user's id and username and refreshes the session TTL.
func GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, AuthResponse{
			Success: false,
			Message: "Authentication required",
		})
		return
	}

	username, err := services.GetUsernameByID(userID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	// Sliding expiration; errors here are not fatal
	if token := extractBearerToken(r.Header.Get("Authorization")); token != "" {
		services.RefreshSession(token)
	}

	userMap := map[string]interface{}{
		"id":       userID.String(),
		"username": username,
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Authenticated",
		User:    userMap,
	})
}
