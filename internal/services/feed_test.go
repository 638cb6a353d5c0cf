package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawg-app/tawg-backend/internal/models"
)

func TestFeedVisibilityTable(t *testing.T) {
	owner := uuid.New()
	friendCircle := map[uuid.UUID]struct{}{owner: {}}
	strangerCircle := map[uuid.UUID]struct{}{uuid.New(): {}}

	tests := []struct {
		name       string
		visibility models.Visibility
		isFriend   bool
		include    bool
		anonymous  bool
	}{
		{"public_all friend", models.VisibilityPublicAll, true, true, false},
		{"public_all non-friend", models.VisibilityPublicAll, false, true, true},
		{"public_friends friend", models.VisibilityPublicFriends, true, true, false},
		{"public_friends non-friend", models.VisibilityPublicFriends, false, false, false},
		{"private_anonymous friend", models.VisibilityPrivateAnonymous, true, true, true},
		{"private_anonymous non-friend", models.VisibilityPrivateAnonymous, false, true, true},
		{"private_not_seen never included", models.VisibilityPrivateNotSeen, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			circle := strangerCircle
			if tt.isFriend {
				circle = friendCircle
			}
			d := FeedVisibility(owner, tt.visibility, circle)
			assert.Equal(t, tt.include, d.Include, "include")
			if tt.include {
				assert.Equal(t, tt.anonymous, d.Anonymous, "anonymous")
			}
		})
	}
}

func TestFeedVisibilityViewerSeesOwnEntries(t *testing.T) {
	viewer := uuid.New()
	circle := map[uuid.UUID]struct{}{viewer: {}}

	d := FeedVisibility(viewer, models.VisibilityPublicFriends, circle)
	assert.True(t, d.Include)
	assert.False(t, d.Anonymous)
}

func TestFilterFeedPreservesOrderAndStripsPrivate(t *testing.T) {
	friend := uuid.New()
	stranger := uuid.New()
	circle := map[uuid.UUID]struct{}{friend: {}}

	mk := func(owner uuid.UUID, vis models.Visibility, age time.Duration) models.Note {
		return models.Note{
			ID:                   uuid.New(),
			UserID:               owner,
			CreatedAt:            time.Now().Add(-age),
			Visibility:           vis,
			PublicNotesContent:   "shared",
			PrivateNotesContent:  "secret",
			PrivatePrayerContent: "secret prayer",
		}
	}

	candidates := []models.Note{
		mk(friend, models.VisibilityPublicAll, 1*time.Hour),
		mk(stranger, models.VisibilityPublicFriends, 2*time.Hour), // dropped
		mk(stranger, models.VisibilityPrivateAnonymous, 3*time.Hour),
		mk(friend, models.VisibilityPublicFriends, 4*time.Hour),
	}

	items := FilterFeed(candidates, circle)
	require.Len(t, items, 3)

	// Newest-first order of the surviving candidates is preserved
	assert.Equal(t, candidates[0].ID, items[0].Note.ID)
	assert.Equal(t, candidates[2].ID, items[1].Note.ID)
	assert.Equal(t, candidates[3].ID, items[2].Note.ID)

	for _, it := range items {
		assert.Empty(t, it.Note.PrivateNotesContent)
		assert.Empty(t, it.Note.PrivatePrayerContent)
	}

	assert.False(t, items[0].Anonymous)
	assert.True(t, items[1].Anonymous)
	assert.Equal(t, uuid.Nil, items[1].Note.UserID, "anonymous item must not leak owner id")
	assert.False(t, items[2].Anonymous)
}
