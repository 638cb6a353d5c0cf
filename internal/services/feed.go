package services

import (
	"github.com/google/uuid"

	"github.com/tawg-app/tawg-backend/internal/models"
)

// FeedDecision is the outcome of the visibility filter for one note.
type FeedDecision struct {
	Include   bool
	Anonymous bool
}

// FeedVisibility decides whether a note appears in the viewer's feed and
// whether its author is shown as anonymous. viewerCircle is the viewer's
// friend id set including the viewer themselves.
//
//	public_all:        everyone sees it; anonymous unless the owner is in the circle
//	public_friends:    circle only, attributed
//	private_anonymous: everyone sees it, never attributed
//	private_not_seen:  never in the feed
//
// The decision depends only on its arguments, so filtering one page can never
// be affected by a previous page.
func FeedVisibility(ownerID uuid.UUID, visibility models.Visibility, viewerCircle map[uuid.UUID]struct{}) FeedDecision {
	_, isFriend := viewerCircle[ownerID]

	switch visibility {
	case models.VisibilityPublicAll:
		return FeedDecision{Include: true, Anonymous: !isFriend}
	case models.VisibilityPublicFriends:
		return FeedDecision{Include: isFriend, Anonymous: false}
	case models.VisibilityPrivateAnonymous:
		return FeedDecision{Include: true, Anonymous: true}
	default:
		return FeedDecision{}
	}
}

// FeedItem is a note prepared for the feed: anonymous entries carry no owner
// identity at all.
type FeedItem struct {
	Note      models.Note `json:"note"`
	Anonymous bool        `json:"anonymous"`
}

// FilterFeed applies FeedVisibility to a page of candidate notes, preserving
// their order. Anonymous items have the owner id zeroed so it never reaches
// the client.
func FilterFeed(candidates []models.Note, viewerCircle map[uuid.UUID]struct{}) []FeedItem {
	items := make([]FeedItem, 0, len(candidates))
	for _, n := range candidates {
		d := FeedVisibility(n.UserID, n.Visibility, viewerCircle)
		if !d.Include {
			continue
		}
		item := FeedItem{Note: n, Anonymous: d.Anonymous}
		if d.Anonymous {
			item.Note.UserID = uuid.Nil
		}
		// Private halves never leave the owner's own views
		item.Note.PrivateNotesContent = ""
		item.Note.PrivatePrayerContent = ""
		items = append(items, item)
	}
	return items
}
