// Package social attaches community like/save counts and the viewer's own
// like/save state to a batch of enriched articles.
package social

import (
	"fmt"

	"github.com/RonaldMark17/TrueBayan/internal/processor"
)

// CountStore is the slice of the storage layer the annotator needs. All four
// methods are batched: one call covers every URL in the feed.
type CountStore interface {
	LikeCountsByURL(urls []string) (map[string]int64, error)
	SaveCountsByURL(urls []string) (map[string]int64, error)
	LikedURLs(userID uint, urls []string) ([]string, error)
	SavedURLs(userID uint, urls []string) ([]string, error)
}

type Annotator struct {
	store CountStore
}

func NewAnnotator(store CountStore) *Annotator {
	return &Annotator{store: store}
}

// Annotate fills in the Social field of every article that has a URL. An
// empty batch returns immediately without touching the store; viewerID 0
// means anonymous and skips the membership queries. Articles without a URL
// keep zero-valued social data.
func (a *Annotator) Annotate(articles []*processor.Enriched, viewerID uint) error {
	if len(articles) == 0 {
		return nil
	}

	urls := make([]string, 0, len(articles))
	for _, art := range articles {
		if art.URL != "" {
			urls = append(urls, art.URL)
		}
	}
	if len(urls) == 0 {
		return nil
	}

	likeCounts, err := a.store.LikeCountsByURL(urls)
	if err != nil {
		return fmt.Errorf("social: like counts: %w", err)
	}
	saveCounts, err := a.store.SaveCountsByURL(urls)
	if err != nil {
		return fmt.Errorf("social: save counts: %w", err)
	}

	var likedSet, savedSet map[string]bool
	if viewerID != 0 {
		liked, err := a.store.LikedURLs(viewerID, urls)
		if err != nil {
			return fmt.Errorf("social: viewer likes: %w", err)
		}
		saved, err := a.store.SavedURLs(viewerID, urls)
		if err != nil {
			return fmt.Errorf("social: viewer saves: %w", err)
		}
		likedSet = toSet(liked)
		savedSet = toSet(saved)
	}

	for _, art := range articles {
		if art.URL == "" {
			continue
		}
		art.Social = processor.Social{
			Likes:     likeCounts[art.URL],
			Saves:     saveCounts[art.URL],
			UserLiked: likedSet[art.URL],
			UserSaved: savedSet[art.URL],
		}
	}
	return nil
}

func toSet(urls []string) map[string]bool {
	set := make(map[string]bool, len(urls))
	for _, u := range urls {
		set[u] = true
	}
	return set
}
