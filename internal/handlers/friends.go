package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/google/uuid"

	"github.com/tawg-app/tawg-backend/internal/models"
	"github.com/tawg-app/tawg-backend/internal/services"
)

// friendGraph is the shared friend-graph service over the Postgres store.
var friendGraph = services.NewFriendGraphService(services.NewPostgresFriendStore())

type FriendRequestBody struct {
	UserID string `json:"user_id"`
}

type FriendResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type FriendEntry struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type FriendListResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Friends []FriendEntry `json:"friends"`
}

type FriendRequestsResponse struct {
	Success  bool                   `json:"success"`
	Message  string                 `json:"message,omitempty"`
	Incoming []models.FriendRequest `json:"incoming"`
	Outgoing []models.FriendRequest `json:"outgoing"`
}

type FriendStatusResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Status  models.FriendState `json:"status,omitempty"`
}

// decodeTargetUser reads {"user_id": ...} from the body and parses it.
func decodeTargetUser(r *http.Request) (uuid.UUID, error) {
	var body FriendRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(body.UserID)
}

// SendFriendRequest creates a pending request to another user. Sending twice
// is not an error; the earlier request stands.
func SendFriendRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, FriendResponse{Success: false, Message: "Authentication required"})
		return
	}

	targetID, err := decodeTargetUser(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, FriendResponse{Success: false, Message: "Invalid user id"})
		return
	}

	if err := friendGraph.SendRequest(userID, targetID); err != nil {
		switch {
		case errors.Is(err, services.ErrSelfFriend):
			writeJSON(w, http.StatusBadRequest, FriendResponse{Success: false, Message: "You cannot send a request to yourself"})
		case errors.Is(err, services.ErrAlreadyFriends):
			writeJSON(w, http.StatusConflict, FriendResponse{Success: false, Message: "You are already friends"})
		default:
			http.Error(w, "Failed to send request", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, FriendResponse{Success: true, Message: "Friend request sent"})
}

// AcceptFriendRequest accepts a pending incoming request. The body's user_id
// is the sender.
func AcceptFriendRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, FriendResponse{Success: false, Message: "Authentication required"})
		return
	}

	senderID, err := decodeTargetUser(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, FriendResponse{Success: false, Message: "Invalid user id"})
		return
	}

	if err := friendGraph.AcceptRequest(senderID, userID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, FriendResponse{Success: false, Message: "No pending request from this user"})
			return
		}
		http.Error(w, "Failed to accept request", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, FriendResponse{Success: true, Message: "Friend request accepted"})
}

// DeclineFriendRequest removes a pending incoming request. Declining a
// request that does not exist succeeds; the end state is the same.
func DeclineFriendRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, FriendResponse{Success: false, Message: "Authentication required"})
		return
	}

	senderID, err := decodeTargetUser(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, FriendResponse{Success: false, Message: "Invalid user id"})
		return
	}

	if err := friendGraph.DeclineRequest(senderID, userID); err != nil {
		http.Error(w, "Failed to decline request", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, FriendResponse{Success: true, Message: "Friend request declined"})
}

// Unfriend removes an existing friendship in both directions. Removing a
// friendship that does not exist succeeds.
func Unfriend(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, FriendResponse{Success: false, Message: "Authentication required"})
		return
	}

	friendID, err := decodeTargetUser(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, FriendResponse{Success: false, Message: "Invalid user id"})
		return
	}

	if err := friendGraph.RemoveFriendship(userID, friendID); err != nil {
		http.Error(w, "Failed to remove friend", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, FriendResponse{Success: true, Message: "Friend removed"})
}

// GetFriends lists the caller's friends with usernames, sorted by username.
func GetFriends(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, FriendListResponse{Success: false, Message: "Authentication required", Friends: []FriendEntry{}})
		return
	}

	ids, err := friendGraph.FriendIDsOf(userID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	friends := make([]FriendEntry, 0, len(ids))
	for id := range ids {
		username, err := services.GetUsernameByID(id)
		if err != nil {
			continue
		}
		friends = append(friends, FriendEntry{UserID: id.String(), Username: username})
	}
	sort.Slice(friends, func(i, j int) bool { return friends[i].Username < friends[j].Username })

	writeJSON(w, http.StatusOK, FriendListResponse{Success: true, Friends: friends})
}

// GetFriendRequests lists the caller's pending requests, both directions.
func GetFriendRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, FriendRequestsResponse{Success: false, Message: "Authentication required"})
		return
	}

	incoming, err := friendGraph.IncomingRequests(userID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	outgoing, err := friendGraph.OutgoingRequests(userID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, FriendRequestsResponse{
		Success:  true,
		Incoming: incoming,
		Outgoing: outgoing,
	})
}

// GetFriendStatus returns the relation between the caller and ?user_id= as a
// tagged state rather than raw rows.
func GetFriendStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, FriendStatusResponse{Success: false, Message: "Authentication required"})
		return
	}

	otherID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, FriendStatusResponse{Success: false, Message: "Invalid user id"})
		return
	}

	state, err := friendGraph.RelationState(userID, otherID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, FriendStatusResponse{Success: true, Status: state})
}
