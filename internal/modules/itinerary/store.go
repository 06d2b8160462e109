package itinerary

import (
	"sync"

	"tripdesk/internal/domain"
)

// DraftStore keeps one in-progress draft per owner. Edits within a session
// are serialized; the mutex only guards the map against different sessions.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[int64]*domain.ItineraryDraft
}

func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[int64]*domain.ItineraryDraft)}
}

// GetOrCreate returns the owner's draft, seeding a fresh one with the
// minimum one day and one hotel night on first access.
func (s *DraftStore) GetOrCreate(ownerID int64) *domain.ItineraryDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := s.drafts[ownerID]; ok {
		return d
	}
	d := newDraft()
	s.drafts[ownerID] = d
	return d
}

// Reset discards the owner's draft; the next access starts clean. Called
// after a successful submit.
func (s *DraftStore) Reset(ownerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, ownerID)
}

func newDraft() *domain.ItineraryDraft {
	return &domain.ItineraryDraft{
		Days:   []domain.Day{{DayNumber: 1}},
		Hotels: []domain.HotelNight{{NightNumber: 1, NumberOfRooms: 1}},
		Inclusions: domain.InclusionSet{
			Selected: []string{},
		},
		Exclusions: domain.InclusionSet{
			Selected: []string{},
		},
	}
}
