package social

import (
	"testing"

	"github.com/RonaldMark17/TrueBayan/internal/newsapi"
	"github.com/RonaldMark17/TrueBayan/internal/processor"
)

type fakeStore struct {
	likeCounts map[string]int64
	saveCounts map[string]int64
	liked      []string
	saved      []string

	calls int
}

func (f *fakeStore) LikeCountsByURL(urls []string) (map[string]int64, error) {
	f.calls++
	return f.likeCounts, nil
}

func (f *fakeStore) SaveCountsByURL(urls []string) (map[string]int64, error) {
	f.calls++
	return f.saveCounts, nil
}

func (f *fakeStore) LikedURLs(userID uint, urls []string) ([]string, error) {
	f.calls++
	return f.liked, nil
}

func (f *fakeStore) SavedURLs(userID uint, urls []string) ([]string, error) {
	f.calls++
	return f.saved, nil
}

func enriched(urls ...string) []*processor.Enriched {
	out := make([]*processor.Enriched, len(urls))
	for i, u := range urls {
		out[i] = &processor.Enriched{Article: newsapi.Article{URL: u}}
	}
	return out
}

func TestAnnotateEmptyBatchSkipsStore(t *testing.T) {
	store := &fakeStore{}
	a := NewAnnotator(store)

	if err := a.Annotate(nil, 42); err != nil {
		t.Fatalf("Annotate(nil) error: %v", err)
	}
	if err := a.Annotate([]*processor.Enriched{}, 42); err != nil {
		t.Fatalf("Annotate(empty) error: %v", err)
	}
	if store.calls != 0 {
		t.Fatalf("store called %d times for empty batch, want 0", store.calls)
	}
}

func TestAnnotateAllURLsMissingSkipsStore(t *testing.T) {
	store := &fakeStore{}
	a := NewAnnotator(store)

	arts := enriched("", "")
	if err := a.Annotate(arts, 42); err != nil {
		t.Fatalf("Annotate error: %v", err)
	}
	if store.calls != 0 {
		t.Fatalf("store called %d times when no article has a URL, want 0", store.calls)
	}
}

func TestAnnotateAttachesCountsAndViewerState(t *testing.T) {
	store := &fakeStore{
		likeCounts: map[string]int64{"u1": 3, "u2": 1},
		saveCounts: map[string]int64{"u1": 2},
		liked:      []string{"u2"},
		saved:      []string{"u1"},
	}
	a := NewAnnotator(store)

	arts := enriched("u1", "u2", "u3")
	if err := a.Annotate(arts, 7); err != nil {
		t.Fatalf("Annotate error: %v", err)
	}
	// exactly 4 batched calls, never one per article
	if store.calls != 4 {
		t.Fatalf("store called %d times, want 4", store.calls)
	}

	if arts[0].Social.Likes != 3 || arts[0].Social.Saves != 2 {
		t.Fatalf("u1 social = %+v", arts[0].Social)
	}
	if !arts[0].Social.UserSaved || arts[0].Social.UserLiked {
		t.Fatalf("u1 viewer flags = %+v", arts[0].Social)
	}
	if !arts[1].Social.UserLiked {
		t.Fatalf("u2 should be viewer-liked: %+v", arts[1].Social)
	}
	// unknown URL gets zero counts, not an error
	if arts[2].Social.Likes != 0 || arts[2].Social.Saves != 0 {
		t.Fatalf("u3 social = %+v, want zeros", arts[2].Social)
	}
}

func TestAnnotateAnonymousSkipsMembershipQueries(t *testing.T) {
	store := &fakeStore{
		likeCounts: map[string]int64{"u1": 5},
		saveCounts: map[string]int64{},
	}
	a := NewAnnotator(store)

	arts := enriched("u1")
	if err := a.Annotate(arts, 0); err != nil {
		t.Fatalf("Annotate error: %v", err)
	}
	if store.calls != 2 {
		t.Fatalf("store called %d times for anonymous viewer, want 2", store.calls)
	}
	if arts[0].Social.UserLiked || arts[0].Social.UserSaved {
		t.Fatalf("anonymous viewer flags should stay false: %+v", arts[0].Social)
	}
}

func TestAnnotateSkipsURLLessArticleButAnnotatesRest(t *testing.T) {
	store := &fakeStore{
		likeCounts: map[string]int64{"u1": 1},
		saveCounts: map[string]int64{},
	}
	a := NewAnnotator(store)

	arts := enriched("u1", "")
	if err := a.Annotate(arts, 0); err != nil {
		t.Fatalf("Annotate error: %v", err)
	}
	if arts[0].Social.Likes != 1 {
		t.Fatalf("u1 social = %+v", arts[0].Social)
	}
	if arts[1].Social != (processor.Social{}) {
		t.Fatalf("URL-less article got social data: %+v", arts[1].Social)
	}
}
