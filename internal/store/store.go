package store

import (
	"strings"
	"sync"
	"time"

	"github.com/ahosmi/content-dashboard/pkg/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is the authoritative in-process collection of content items and AI
// generations, plus the current filter state. It is an injected container:
// callers hold a *Store, there is no package-level instance. Every mutation
// persists a snapshot (fire and forget) and notifies subscribers.
//
// None of the operations return errors. Update and Remove on a missing id
// are silent no-ops; callers that need confirmation must look the item up
// first.
type Store struct {
	mu        sync.Mutex
	logger    *zap.Logger
	persister Persister

	subscribers []func()

	contents          []model.Content
	aiGenerations     []model.AIGeneration
	searchQuery       string
	selectedPlatforms []model.Platform
	selectedStatuses  []model.ContentStatus

	now   func() time.Time
	newID func() string
}

func NewStore(logger *zap.Logger, persister Persister) *Store {
	return &Store{
		logger:    logger,
		persister: persister,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// Subscribe registers a callback invoked after every mutation.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Add stores a new item, assigning a fresh id and timestamps.
func (s *Store) Add(draft model.ContentDraft) model.Content {
	s.mu.Lock()
	now := s.now()
	item := model.Content{
		ID:          s.newID(),
		Title:       draft.Title,
		Platform:    draft.Platform,
		Status:      draft.Status,
		PlannedDate: draft.PlannedDate,
		Tags:        append([]string(nil), draft.Tags...),
		Notes:       draft.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.contents = append(s.contents, item)
	s.mu.Unlock()

	s.changed()
	return item
}

// Update merges the non-nil fields of the patch into the item with the given
// id and bumps UpdatedAt. A missing id is a silent no-op.
func (s *Store) Update(id string, patch model.ContentPatch) {
	s.mu.Lock()
	touched := false
	for i := range s.contents {
		if s.contents[i].ID != id {
			continue
		}
		c := &s.contents[i]
		if patch.Title != nil {
			c.Title = *patch.Title
		}
		if patch.Platform != nil {
			c.Platform = *patch.Platform
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		if patch.PlannedDate != nil {
			c.PlannedDate = *patch.PlannedDate
		}
		if patch.Tags != nil {
			c.Tags = append([]string(nil), (*patch.Tags)...)
		}
		if patch.Notes != nil {
			c.Notes = *patch.Notes
		}
		c.UpdatedAt = s.now()
		touched = true
		break
	}
	s.mu.Unlock()

	if touched {
		s.changed()
	}
}

// Remove deletes the item with the given id. A missing id is a silent no-op,
// so removing twice is idempotent.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	touched := false
	for i := range s.contents {
		if s.contents[i].ID == id {
			s.contents = append(s.contents[:i], s.contents[i+1:]...)
			touched = true
			break
		}
	}
	s.mu.Unlock()

	if touched {
		s.changed()
	}
}

// AddAIGeneration records a suggestion result at the front of the history,
// keeping it most-recent-first.
func (s *Store) AddAIGeneration(draft model.AIGenerationDraft) model.AIGeneration {
	s.mu.Lock()
	gen := model.AIGeneration{
		ID:          s.newID(),
		Topic:       draft.Topic,
		Platform:    draft.Platform,
		Suggestions: append([]string(nil), draft.Suggestions...),
		CreatedAt:   s.now(),
	}
	s.aiGenerations = append([]model.AIGeneration{gen}, s.aiGenerations...)
	s.mu.Unlock()

	s.changed()
	return gen
}

func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	s.searchQuery = query
	s.mu.Unlock()
	s.changed()
}

func (s *Store) SetSelectedPlatforms(platforms []model.Platform) {
	s.mu.Lock()
	s.selectedPlatforms = append([]model.Platform(nil), platforms...)
	s.mu.Unlock()
	s.changed()
}

func (s *Store) SetSelectedStatuses(statuses []model.ContentStatus) {
	s.mu.Lock()
	s.selectedStatuses = append([]model.ContentStatus(nil), statuses...)
	s.mu.Unlock()
	s.changed()
}

// Contents returns the full collection in insertion order.
func (s *Store) Contents() []model.Content {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Content(nil), s.contents...)
}

// AIGenerations returns the generation history, most recent first.
func (s *Store) AIGenerations() []model.AIGeneration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.AIGeneration(nil), s.aiGenerations...)
}

// Lookup returns the item with the given id, if present.
func (s *Store) Lookup(id string) (model.Content, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.contents {
		if c.ID == id {
			return c, true
		}
	}
	return model.Content{}, false
}

// FilteredContents returns the items matching all active filters: search
// text against title or any tag (case-insensitive substring), platform
// membership, and status membership. An empty criterion passes everything.
// Insertion order is preserved; the view is computed fresh on every call.
func (s *Store) FilteredContents() []model.Content {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := strings.ToLower(s.searchQuery)

	out := make([]model.Content, 0, len(s.contents))
	for _, c := range s.contents {
		if query != "" && !matchesQuery(c, query) {
			continue
		}
		if len(s.selectedPlatforms) > 0 && !containsPlatform(s.selectedPlatforms, c.Platform) {
			continue
		}
		if len(s.selectedStatuses) > 0 && !containsStatus(s.selectedStatuses, c.Status) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesQuery(c model.Content, query string) bool {
	if strings.Contains(strings.ToLower(c.Title), query) {
		return true
	}
	for _, tag := range c.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func containsPlatform(set []model.Platform, p model.Platform) bool {
	for _, v := range set {
		if v == p {
			return true
		}
	}
	return false
}

func containsStatus(set []model.ContentStatus, st model.ContentStatus) bool {
	for _, v := range set {
		if v == st {
			return true
		}
	}
	return false
}

// ContentsOnDate returns the items planned for the same calendar day as d,
// ignoring the time of day. Both sides are normalized to d's location before
// comparing year/month/day.
func (s *Store) ContentsOnDate(d time.Time) []model.Content {
	s.mu.Lock()
	defer s.mu.Unlock()

	y, m, day := d.Date()
	out := make([]model.Content, 0)
	for _, c := range s.contents {
		cy, cm, cd := c.PlannedDate.In(d.Location()).Date()
		if cy == y && cm == m && cd == day {
			out = append(out, c)
		}
	}
	return out
}

// SearchQuery returns the active search text.
func (s *Store) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

// ClearAll resets contents, generation history and filter state in one step.
func (s *Store) ClearAll() {
	s.mu.Lock()
	s.contents = nil
	s.aiGenerations = nil
	s.searchQuery = ""
	s.selectedPlatforms = nil
	s.selectedStatuses = nil
	s.mu.Unlock()

	s.changed()
}

// Restore replaces the whole state from a snapshot without persisting,
// used on startup and when seeding from the server list.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	s.contents = append([]model.Content(nil), snap.Contents...)
	s.aiGenerations = append([]model.AIGeneration(nil), snap.AIGenerations...)
	s.searchQuery = snap.SearchQuery
	s.selectedPlatforms = append([]model.Platform(nil), snap.SelectedPlatforms...)
	s.selectedStatuses = append([]model.ContentStatus(nil), snap.SelectedStatuses...)
	s.mu.Unlock()

	s.notify()
}

// Flush persists the current state immediately, for callers that just
// restored from an external source.
func (s *Store) Flush() {
	s.changed()
}

func (s *Store) snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Contents:          append([]model.Content(nil), s.contents...),
		AIGenerations:     append([]model.AIGeneration(nil), s.aiGenerations...),
		SearchQuery:       s.searchQuery,
		SelectedPlatforms: append([]model.Platform(nil), s.selectedPlatforms...),
		SelectedStatuses:  append([]model.ContentStatus(nil), s.selectedStatuses...),
	}
}

// changed runs the post-mutation side effects: snapshot persistence (fire
// and forget, last write wins) and subscriber notification.
func (s *Store) changed() {
	if s.persister != nil {
		if err := s.persister.Persist(s.snapshot()); err != nil && s.logger != nil {
			s.logger.Sugar().Warnw("content snapshot persist failed", "err", err)
		}
	}
	s.notify()
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := append([]func(){}, s.subscribers...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
