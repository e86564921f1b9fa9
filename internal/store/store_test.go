package store

import (
	"testing"
	"time"

	"github.com/ahosmi/content-dashboard/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draft(title string, platform model.Platform, status model.ContentStatus, planned time.Time, tags ...string) model.ContentDraft {
	return model.ContentDraft{
		Title:       title,
		Platform:    platform,
		Status:      status,
		PlannedDate: planned,
		Tags:        tags,
		Notes:       "",
	}
}

func TestAddAssignsIDAndTimestamps(t *testing.T) {
	s := NewStore(nil, nil)
	planned := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	d := draft("React Tips", model.PlatformYouTube, model.StatusIdea, planned, "webdev", "react")
	item := s.Add(d)

	require.NotEmpty(t, item.ID)
	assert.Equal(t, d.Title, item.Title)
	assert.Equal(t, d.Platform, item.Platform)
	assert.Equal(t, d.Status, item.Status)
	assert.Equal(t, d.PlannedDate, item.PlannedDate)
	assert.Equal(t, d.Tags, item.Tags)
	assert.Equal(t, d.Notes, item.Notes)
	assert.False(t, item.CreatedAt.IsZero())
	assert.False(t, item.UpdatedAt.Before(item.CreatedAt))

	got, ok := s.Lookup(item.ID)
	require.True(t, ok)
	assert.Equal(t, item, got)
}

func TestAddNeverReusesIDs(t *testing.T) {
	s := NewStore(nil, nil)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		item := s.Add(draft("a", model.PlatformTwitter, model.StatusIdea, time.Now()))
		require.False(t, seen[item.ID], "id %s reused", item.ID)
		seen[item.ID] = true
	}
}

func TestUpdateMergesOnlyGivenFields(t *testing.T) {
	s := NewStore(nil, nil)
	item := s.Add(draft("Original", model.PlatformYouTube, model.StatusIdea, time.Now(), "tag1"))

	newTitle := "Renamed"
	s.Update(item.ID, model.ContentPatch{Title: &newTitle})

	got, ok := s.Lookup(item.ID)
	require.True(t, ok)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, item.Platform, got.Platform)
	assert.Equal(t, item.Status, got.Status)
	assert.Equal(t, item.PlannedDate, got.PlannedDate)
	assert.Equal(t, item.Tags, got.Tags)
	assert.Equal(t, item.Notes, got.Notes)
	assert.Equal(t, item.CreatedAt, got.CreatedAt)
	assert.False(t, got.UpdatedAt.Before(item.UpdatedAt))
}

func TestUpdateMissingIDIsSilentNoop(t *testing.T) {
	s := NewStore(nil, nil)
	item := s.Add(draft("Keep me", model.PlatformInstagram, model.StatusFilmed, time.Now()))

	newTitle := "should not appear"
	s.Update("no-such-id", model.ContentPatch{Title: &newTitle})

	assert.Equal(t, []model.Content{item}, s.Contents())
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := NewStore(nil, nil)
	a := s.Add(draft("A", model.PlatformYouTube, model.StatusIdea, time.Now()))
	b := s.Add(draft("B", model.PlatformTwitter, model.StatusScripted, time.Now()))

	s.Remove(a.ID)
	assert.Equal(t, []model.Content{b}, s.Contents())

	s.Remove(a.ID)
	assert.Equal(t, []model.Content{b}, s.Contents())
}

func TestFilteredContentsEmptyFiltersReturnAllInOrder(t *testing.T) {
	s := NewStore(nil, nil)
	a := s.Add(draft("First", model.PlatformYouTube, model.StatusIdea, time.Now()))
	b := s.Add(draft("Second", model.PlatformInstagram, model.StatusFilmed, time.Now()))
	c := s.Add(draft("Third", model.PlatformTwitter, model.StatusScheduled, time.Now()))

	assert.Equal(t, []model.Content{a, b, c}, s.FilteredContents())
}

func TestFilteredContentsSearchTitleAndTags(t *testing.T) {
	s := NewStore(nil, nil)
	react := s.Add(draft("React Tips", model.PlatformYouTube, model.StatusIdea, time.Now(), "webdev"))
	s.Add(draft("Cooking Pasta", model.PlatformInstagram, model.StatusIdea, time.Now(), "food"))

	// case-insensitive title substring
	s.SetSearchQuery("REACT")
	assert.Equal(t, []model.Content{react}, s.FilteredContents())

	// tag substring
	s.SetSearchQuery("web")
	assert.Equal(t, []model.Content{react}, s.FilteredContents())

	s.SetSearchQuery("nothing matches this")
	assert.Empty(t, s.FilteredContents())
}

func TestFilteredContentsPlatformAndStatusSets(t *testing.T) {
	s := NewStore(nil, nil)
	yt := s.Add(draft("YT idea", model.PlatformYouTube, model.StatusIdea, time.Now()))
	ig := s.Add(draft("IG filmed", model.PlatformInstagram, model.StatusFilmed, time.Now()))
	tw := s.Add(draft("TW idea", model.PlatformTwitter, model.StatusIdea, time.Now()))

	s.SetSelectedPlatforms([]model.Platform{model.PlatformYouTube, model.PlatformTwitter})
	assert.Equal(t, []model.Content{yt, tw}, s.FilteredContents())

	// AND across criteria
	s.SetSelectedStatuses([]model.ContentStatus{model.StatusIdea})
	assert.Equal(t, []model.Content{yt, tw}, s.FilteredContents())

	s.SetSelectedPlatforms([]model.Platform{model.PlatformInstagram})
	assert.Empty(t, s.FilteredContents())

	s.SetSelectedStatuses([]model.ContentStatus{model.StatusFilmed})
	assert.Equal(t, []model.Content{ig}, s.FilteredContents())
}

func TestContentsOnDateIgnoresTimeOfDay(t *testing.T) {
	s := NewStore(nil, nil)
	late := s.Add(draft("Late", model.PlatformYouTube, model.StatusScheduled,
		time.Date(2024, 3, 5, 23, 50, 0, 0, time.UTC)))
	s.Add(draft("Other day", model.PlatformYouTube, model.StatusScheduled,
		time.Date(2024, 3, 6, 0, 10, 0, 0, time.UTC)))

	query := time.Date(2024, 3, 5, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, []model.Content{late}, s.ContentsOnDate(query))
}

func TestAddAIGenerationMostRecentFirst(t *testing.T) {
	s := NewStore(nil, nil)
	s.AddAIGeneration(model.AIGenerationDraft{Topic: "A", Platform: model.PlatformYouTube})
	s.AddAIGeneration(model.AIGenerationDraft{Topic: "B", Platform: model.PlatformTwitter})

	gens := s.AIGenerations()
	require.Len(t, gens, 2)
	assert.Equal(t, "B", gens[0].Topic)
	assert.Equal(t, "A", gens[1].Topic)
	assert.NotEqual(t, gens[0].ID, gens[1].ID)
}

func TestClearAllResetsEverything(t *testing.T) {
	s := NewStore(nil, nil)
	s.Add(draft("A", model.PlatformYouTube, model.StatusIdea, time.Now()))
	s.AddAIGeneration(model.AIGenerationDraft{Topic: "A", Platform: model.PlatformYouTube})
	s.SetSearchQuery("a")
	s.SetSelectedPlatforms([]model.Platform{model.PlatformYouTube})
	s.SetSelectedStatuses([]model.ContentStatus{model.StatusIdea})

	s.ClearAll()

	assert.Empty(t, s.Contents())
	assert.Empty(t, s.AIGenerations())
	assert.Empty(t, s.SearchQuery())
	assert.Empty(t, s.FilteredContents())
}

func TestSubscribersNotifiedOnMutation(t *testing.T) {
	s := NewStore(nil, nil)
	var calls int
	s.Subscribe(func() { calls++ })

	s.Add(draft("A", model.PlatformYouTube, model.StatusIdea, time.Now()))
	s.SetSearchQuery("x")
	s.ClearAll()

	assert.Equal(t, 3, calls)
}

func TestFilePersisterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p, err := NewFilePersister(dir, ContentStorageKey)
	require.NoError(t, err)

	s := NewStore(nil, p)
	item := s.Add(draft("Persisted", model.PlatformInstagram, model.StatusScripted, time.Now(), "tag"))
	s.SetSearchQuery("persisted")

	// a second store restored from the same directory sees the state
	p2, err := NewFilePersister(dir, ContentStorageKey)
	require.NoError(t, err)
	s2 := NewStore(nil, p2)
	s2.Restore(p2.Load())

	got, ok := s2.Lookup(item.ID)
	require.True(t, ok)
	assert.Equal(t, item.Title, got.Title)
	assert.Equal(t, "persisted", s2.SearchQuery())
}

func TestFilePersisterLoadMissingFileIsEmpty(t *testing.T) {
	p, err := NewFilePersister(t.TempDir(), ContentStorageKey)
	require.NoError(t, err)
	assert.Equal(t, Snapshot{}, p.Load())
}
