package models

import (
	"time"

	"github.com/google/uuid"
)

// FriendRequest is a directed pending invitation. The stored row's existence
// is the pending state; the API never exposes "empty result" as a contract.
type FriendRequest struct {
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Friendship is one directed half of an undirected edge. Rows are always
// created and deleted as a mirrored pair.
type Friendship struct {
	UserID    uuid.UUID `json:"user_id"`
	FriendID  uuid.UUID `json:"friend_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FriendState is the relation between a viewer and another user as a tagged
// value rather than raw row presence.
type FriendState string

const (
	FriendStateNone            FriendState = "none"
	FriendStatePendingOutgoing FriendState = "pending_outgoing"
	FriendStatePendingIncoming FriendState = "pending_incoming"
	FriendStateFriends         FriendState = "friends"
)
