package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/tawg-app/tawg-backend/internal/database"
	"github.com/tawg-app/tawg-backend/internal/models"
)

// FriendStore is the row-level contract the friend graph runs on. The
// Postgres implementation is below; tests use an in-memory fake.
type FriendStore interface {
	// InsertRequest adds a pending request. Returns ErrDuplicateRequest when
	// the identical pending row already exists.
	InsertRequest(senderID, receiverID uuid.UUID) error
	// DeleteRequest removes a pending request; no-op if absent.
	DeleteRequest(senderID, receiverID uuid.UUID) error
	// HasRequest reports whether the directed pending row exists.
	HasRequest(senderID, receiverID uuid.UUID) (bool, error)
	// CreateFriendship atomically inserts both directed friendship rows and
	// removes any pending request in either direction.
	CreateFriendship(userID, friendID uuid.UUID) error
	// DeleteFriendship removes both directed rows; no-op if absent.
	DeleteFriendship(userID, friendID uuid.UUID) error
	// FriendIDs returns all ids that userID has a friendship row toward.
	FriendIDs(userID uuid.UUID) (map[uuid.UUID]struct{}, error)
	// AreFriends reports whether a friendship row (userID -> friendID) exists.
	AreFriends(userID, friendID uuid.UUID) (bool, error)
	// IncomingRequests / OutgoingRequests list pending rows for a user.
	IncomingRequests(userID uuid.UUID) ([]models.FriendRequest, error)
	OutgoingRequests(userID uuid.UUID) ([]models.FriendRequest, error)
}

// FriendGraphService holds the request/accept/decline state machine:
//
//	NONE -> PENDING (send) -> FRIENDS (accept) | NONE (decline)
//	FRIENDS -> NONE (unfriend)
type FriendGraphService struct {
	store FriendStore
}

func NewFriendGraphService(store FriendStore) *FriendGraphService {
	return &FriendGraphService{store: store}
}

// SendRequest creates a pending request from sender to receiver. A duplicate
// send is ignored rather than surfaced: the caller's intent is already true.
func (s *FriendGraphService) SendRequest(senderID, receiverID uuid.UUID) error {
	if senderID == receiverID {
		return ErrSelfFriend
	}
	already, err := s.store.AreFriends(senderID, receiverID)
	if err != nil {
		return err
	}
	if already {
		return ErrAlreadyFriends
	}
	err = s.store.InsertRequest(senderID, receiverID)
	if errors.Is(err, ErrDuplicateRequest) {
		return nil
	}
	return err
}

// AcceptRequest turns a pending request into a bidirectional friendship.
// Friendship rows are inserted before the pending rows are deleted, inside
// one transaction in the Postgres store: if anything fails midway, retrying
// the accept is always safe and can at worst leave a stale pending row, never
// a half-friendship.
func (s *FriendGraphService) AcceptRequest(senderID, receiverID uuid.UUID) error {
	pending, err := s.store.HasRequest(senderID, receiverID)
	if err != nil {
		return err
	}
	if !pending {
		return ErrNotFound
	}
	return s.store.CreateFriendship(senderID, receiverID)
}

// DeclineRequest removes a pending request. Idempotent: declining an absent
// request succeeds.
func (s *FriendGraphService) DeclineRequest(senderID, receiverID uuid.UUID) error {
	return s.store.DeleteRequest(senderID, receiverID)
}

// RemoveFriendship deletes both directed rows. Idempotent if absent.
func (s *FriendGraphService) RemoveFriendship(userID, friendID uuid.UUID) error {
	return s.store.DeleteFriendship(userID, friendID)
}

// FriendIDsOf returns the set of the user's friends.
func (s *FriendGraphService) FriendIDsOf(userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	return s.store.FriendIDs(userID)
}

// ViewerCircle is FriendIDsOf plus the viewer themselves; the feed filter
// treats a user as a friend of their own entries.
func (s *FriendGraphService) ViewerCircle(viewerID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	circle, err := s.store.FriendIDs(viewerID)
	if err != nil {
		return nil, err
	}
	circle[viewerID] = struct{}{}
	return circle, nil
}

// RelationState returns the viewer's relation to another user as a tagged
// value. Row presence stays an implementation detail of the store.
func (s *FriendGraphService) RelationState(viewerID, otherID uuid.UUID) (models.FriendState, error) {
	friends, err := s.store.AreFriends(viewerID, otherID)
	if err != nil {
		return "", err
	}
	if friends {
		return models.FriendStateFriends, nil
	}
	outgoing, err := s.store.HasRequest(viewerID, otherID)
	if err != nil {
		return "", err
	}
	if outgoing {
		return models.FriendStatePendingOutgoing, nil
	}
	incoming, err := s.store.HasRequest(otherID, viewerID)
	if err != nil {
		return "", err
	}
	if incoming {
		return models.FriendStatePendingIncoming, nil
	}
	return models.FriendStateNone, nil
}

// IncomingRequests lists pending requests addressed to the user.
func (s *FriendGraphService) IncomingRequests(userID uuid.UUID) ([]models.FriendRequest, error) {
	return s.store.IncomingRequests(userID)
}

// OutgoingRequests lists pending requests the user has sent.
func (s *FriendGraphService) OutgoingRequests(userID uuid.UUID) ([]models.FriendRequest, error) {
	return s.store.OutgoingRequests(userID)
}

// --- Postgres store ---

const uniqueViolation = "23505"

type postgresFriendStore struct{}

// NewPostgresFriendStore returns the FriendStore backed by database.PostgresDB.
func NewPostgresFriendStore() FriendStore {
	return postgresFriendStore{}
}

func (postgresFriendStore) InsertRequest(senderID, receiverID uuid.UUID) error {
	_, err := database.PostgresDB.Exec(`
		INSERT INTO friend_requests (sender_id, receiver_id, created_at)
		VALUES ($1, $2, NOW())
	`, senderID, receiverID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicateRequest
	}
	return err
}

func (postgresFriendStore) DeleteRequest(senderID, receiverID uuid.UUID) error {
	_, err := database.PostgresDB.Exec(`
		DELETE FROM friend_requests WHERE sender_id = $1 AND receiver_id = $2
	`, senderID, receiverID)
	return err
}

func (postgresFriendStore) HasRequest(senderID, receiverID uuid.UUID) (bool, error) {
	var exists bool
	err := database.PostgresDB.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM friend_requests WHERE sender_id = $1 AND receiver_id = $2)
	`, senderID, receiverID).Scan(&exists)
	return exists, err
}

func (postgresFriendStore) CreateFriendship(userID, friendID uuid.UUID) error {
	tx, err := database.PostgresDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Insert-then-delete ordering: a crash between the two leaves a friendship
	// plus a stale pending request, which a retried accept cleans up.
	_, err = tx.Exec(`
		INSERT INTO friends (user_id, friend_id, created_at)
		VALUES ($1, $2, NOW()), ($2, $1, NOW())
		ON CONFLICT (user_id, friend_id) DO NOTHING
	`, userID, friendID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		DELETE FROM friend_requests
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
	`, userID, friendID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (postgresFriendStore) DeleteFriendship(userID, friendID uuid.UUID) error {
	_, err := database.PostgresDB.Exec(`
		DELETE FROM friends
		WHERE (user_id = $1 AND friend_id = $2)
		   OR (user_id = $2 AND friend_id = $1)
	`, userID, friendID)
	return err
}

func (postgresFriendStore) FriendIDs(userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	rows, err := database.PostgresDB.Query(`
		SELECT friend_id FROM friends WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

func (postgresFriendStore) AreFriends(userID, friendID uuid.UUID) (bool, error) {
	var exists bool
	err := database.PostgresDB.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM friends WHERE user_id = $1 AND friend_id = $2)
	`, userID, friendID).Scan(&exists)
	return exists, err
}

func (postgresFriendStore) IncomingRequests(userID uuid.UUID) ([]models.FriendRequest, error) {
	return scanRequests(`
		SELECT sender_id, receiver_id, created_at
		FROM friend_requests WHERE receiver_id = $1
		ORDER BY created_at DESC
	`, userID)
}

func (postgresFriendStore) OutgoingRequests(userID uuid.UUID) ([]models.FriendRequest, error) {
	return scanRequests(`
		SELECT sender_id, receiver_id, created_at
		FROM friend_requests WHERE sender_id = $1
		ORDER BY created_at DESC
	`, userID)
}

func scanRequests(query string, userID uuid.UUID) ([]models.FriendRequest, error) {
	rows, err := database.PostgresDB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs := make([]models.FriendRequest, 0)
	for rows.Next() {
		var r models.FriendRequest
		if err := rows.Scan(&r.SenderID, &r.ReceiverID, &r.CreatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, r)
	}
	return reqs, rows.Err()
}
