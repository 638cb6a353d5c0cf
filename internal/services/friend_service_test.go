package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawg-app/tawg-backend/internal/models"
)

// memFriendStore is an in-memory FriendStore with the same invariants as the
// Postgres one: unique pending rows, mirrored friendship pairs created and
// deleted together.
type memFriendStore struct {
	requests map[[2]uuid.UUID]time.Time
	friends  map[[2]uuid.UUID]time.Time
}

func newMemFriendStore() *memFriendStore {
	return &memFriendStore{
		requests: make(map[[2]uuid.UUID]time.Time),
		friends:  make(map[[2]uuid.UUID]time.Time),
	}
}

func (m *memFriendStore) InsertRequest(sender, receiver uuid.UUID) error {
	key := [2]uuid.UUID{sender, receiver}
	if _, ok := m.requests[key]; ok {
		return ErrDuplicateRequest
	}
	m.requests[key] = time.Now()
	return nil
}

func (m *memFriendStore) DeleteRequest(sender, receiver uuid.UUID) error {
	delete(m.requests, [2]uuid.UUID{sender, receiver})
	return nil
}

func (m *memFriendStore) HasRequest(sender, receiver uuid.UUID) (bool, error) {
	_, ok := m.requests[[2]uuid.UUID{sender, receiver}]
	return ok, nil
}

func (m *memFriendStore) CreateFriendship(a, b uuid.UUID) error {
	now := time.Now()
	m.friends[[2]uuid.UUID{a, b}] = now
	m.friends[[2]uuid.UUID{b, a}] = now
	delete(m.requests, [2]uuid.UUID{a, b})
	delete(m.requests, [2]uuid.UUID{b, a})
	return nil
}

func (m *memFriendStore) DeleteFriendship(a, b uuid.UUID) error {
	delete(m.friends, [2]uuid.UUID{a, b})
	delete(m.friends, [2]uuid.UUID{b, a})
	return nil
}

func (m *memFriendStore) FriendIDs(userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	ids := make(map[uuid.UUID]struct{})
	for key := range m.friends {
		if key[0] == userID {
			ids[key[1]] = struct{}{}
		}
	}
	return ids, nil
}

func (m *memFriendStore) AreFriends(a, b uuid.UUID) (bool, error) {
	_, ok := m.friends[[2]uuid.UUID{a, b}]
	return ok, nil
}

func (m *memFriendStore) IncomingRequests(userID uuid.UUID) ([]models.FriendRequest, error) {
	var out []models.FriendRequest
	for key, at := range m.requests {
		if key[1] == userID {
			out = append(out, models.FriendRequest{SenderID: key[0], ReceiverID: key[1], CreatedAt: at})
		}
	}
	return out, nil
}

func (m *memFriendStore) OutgoingRequests(userID uuid.UUID) ([]models.FriendRequest, error) {
	var out []models.FriendRequest
	for key, at := range m.requests {
		if key[0] == userID {
			out = append(out, models.FriendRequest{SenderID: key[0], ReceiverID: key[1], CreatedAt: at})
		}
	}
	return out, nil
}

func TestSendThenAcceptCreatesSymmetricFriendship(t *testing.T) {
	store := newMemFriendStore()
	svc := NewFriendGraphService(store)
	a, b := uuid.New(), uuid.New()

	require.NoError(t, svc.SendRequest(a, b))
	require.NoError(t, svc.AcceptRequest(a, b))

	aFriends, err := svc.FriendIDsOf(a)
	require.NoError(t, err)
	bFriends, err := svc.FriendIDsOf(b)
	require.NoError(t, err)

	assert.Contains(t, aFriends, b)
	assert.Contains(t, bFriends, a)

	// No pending request survives in either direction
	for _, pair := range [][2]uuid.UUID{{a, b}, {b, a}} {
		pending, err := store.HasRequest(pair[0], pair[1])
		require.NoError(t, err)
		assert.False(t, pending)
	}
}

func TestDeclineLeavesNothing(t *testing.T) {
	svc := NewFriendGraphService(newMemFriendStore())
	a, b := uuid.New(), uuid.New()

	require.NoError(t, svc.SendRequest(a, b))
	require.NoError(t, svc.DeclineRequest(a, b))

	state, err := svc.RelationState(a, b)
	require.NoError(t, err)
	assert.Equal(t, models.FriendStateNone, state)

	aFriends, err := svc.FriendIDsOf(a)
	require.NoError(t, err)
	assert.Empty(t, aFriends)
}

func TestDeclineIsIdempotent(t *testing.T) {
	svc := NewFriendGraphService(newMemFriendStore())
	assert.NoError(t, svc.DeclineRequest(uuid.New(), uuid.New()))
}

func TestUnfriendSymmetry(t *testing.T) {
	svc := NewFriendGraphService(newMemFriendStore())
	a, b := uuid.New(), uuid.New()

	require.NoError(t, svc.SendRequest(a, b))
	require.NoError(t, svc.AcceptRequest(a, b))
	require.NoError(t, svc.RemoveFriendship(a, b))

	aFriends, err := svc.FriendIDsOf(a)
	require.NoError(t, err)
	bFriends, err := svc.FriendIDsOf(b)
	require.NoError(t, err)
	assert.NotContains(t, aFriends, b)
	assert.NotContains(t, bFriends, a)

	// Unfriending again is a no-op
	assert.NoError(t, svc.RemoveFriendship(a, b))
}

func TestDuplicateSendIsIgnored(t *testing.T) {
	svc := NewFriendGraphService(newMemFriendStore())
	a, b := uuid.New(), uuid.New()

	require.NoError(t, svc.SendRequest(a, b))
	assert.NoError(t, svc.SendRequest(a, b), "duplicate send must be idempotent-safe")
}

func TestSendRejectsSelfAndExistingFriends(t *testing.T) {
	svc := NewFriendGraphService(newMemFriendStore())
	a, b := uuid.New(), uuid.New()

	assert.ErrorIs(t, svc.SendRequest(a, a), ErrSelfFriend)

	require.NoError(t, svc.SendRequest(a, b))
	require.NoError(t, svc.AcceptRequest(a, b))
	assert.ErrorIs(t, svc.SendRequest(a, b), ErrAlreadyFriends)
	assert.ErrorIs(t, svc.SendRequest(b, a), ErrAlreadyFriends)
}

func TestAcceptWithoutPendingRequest(t *testing.T) {
	svc := NewFriendGraphService(newMemFriendStore())
	assert.ErrorIs(t, svc.AcceptRequest(uuid.New(), uuid.New()), ErrNotFound)
}

func TestRelationStates(t *testing.T) {
	svc := NewFriendGraphService(newMemFriendStore())
	a, b := uuid.New(), uuid.New()

	state, err := svc.RelationState(a, b)
	require.NoError(t, err)
	assert.Equal(t, models.FriendStateNone, state)

	require.NoError(t, svc.SendRequest(a, b))

	state, err = svc.RelationState(a, b)
	require.NoError(t, err)
	assert.Equal(t, models.FriendStatePendingOutgoing, state)

	state, err = svc.RelationState(b, a)
	require.NoError(t, err)
	assert.Equal(t, models.FriendStatePendingIncoming, state)

	require.NoError(t, svc.AcceptRequest(a, b))

	for _, pair := range [][2]uuid.UUID{{a, b}, {b, a}} {
		state, err = svc.RelationState(pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, models.FriendStateFriends, state)
	}
}

func TestViewerCircleIncludesSelf(t *testing.T) {
	svc := NewFriendGraphService(newMemFriendStore())
	a, b := uuid.New(), uuid.New()

	require.NoError(t, svc.SendRequest(a, b))
	require.NoError(t, svc.AcceptRequest(a, b))

	circle, err := svc.ViewerCircle(a)
	require.NoError(t, err)
	assert.Contains(t, circle, a)
	assert.Contains(t, circle, b)
}
