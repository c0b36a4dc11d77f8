package services

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/s-204-cmd/Scholars-spotlight-india/database"
	"github.com/s-204-cmd/Scholars-spotlight-india/model"
)

// CatalogService is the catalog store: it owns the canonical college
// collection, the active search filters, and the derived filtered view.
// Every mutation persists the full collection before the filtered view is
// recomputed, and the recompute finishes before the mutation returns, so
// readers never observe a stale or partially-applied view.
//
// Shortlist operations are exposed here for interface parity with the search
// surface, but they mutate the current session user through the session
// service; the catalog record is never touched by them.
type CatalogService struct {
	mu       sync.Mutex
	store    database.Storage
	session  *SessionService
	colleges []model.College
	filters  model.SearchFilters
	filtered []model.College
	lastID   int64
}

// NewCatalogService creates a catalog service with the default filter
// criteria active.
func NewCatalogService(store database.Storage, session *SessionService) *CatalogService {
	return &CatalogService{
		store:   store,
		session: session,
		filters: model.DefaultFilters(),
	}
}

// Load reads the persisted collection, seeding it with the default catalog on
// first run. A corrupt or unreadable record also falls back to the seed set
// rather than failing hard; worst case is default data.
func (s *CatalogService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var colleges []model.College
	err := s.store.GetJSON(ctx, database.KeyColleges, &colleges)
	switch {
	case err == nil:
		s.colleges = colleges
	case errors.Is(err, database.ErrNotFound):
		s.colleges = database.SeedColleges()
		if err := s.store.SetJSON(ctx, database.KeyColleges, s.colleges); err != nil {
			return err
		}
	default:
		log.Warnf("college collection unreadable, reseeding: %v", err)
		s.colleges = database.SeedColleges()
		if err := s.store.SetJSON(ctx, database.KeyColleges, s.colleges); err != nil {
			return err
		}
	}

	s.recompute()
	return nil
}

// Add assigns a fresh id, appends the college to the canonical collection,
// persists it, and recomputes the filtered view. The stored college is
// returned with its assigned id.
func (s *CatalogService) Add(ctx context.Context, college model.College) (model.College, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	college.ID = s.nextID()
	s.colleges = append(s.colleges, college)
	if err := s.persist(ctx); err != nil {
		return model.College{}, err
	}
	s.recompute()
	return college, nil
}

// Update shallow-merges the patch into the college with the given id. Nested
// objects present in the patch replace the stored value wholesale. An unknown
// id is a no-op, not an error.
func (s *CatalogService) Update(ctx context.Context, id string, patch model.CollegePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	patch.Apply(&s.colleges[idx])
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.recompute()
	return nil
}

// Delete removes the college with the given id. An unknown id is a no-op.
// Shortlists referencing the id are deliberately left alone; dangling
// references are allowed.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	s.colleges = append(s.colleges[:idx], s.colleges[idx+1:]...)
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.recompute()
	return nil
}

// Get returns the college with the given id, if present. Pure read.
func (s *CatalogService) Get(id string) (model.College, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return model.College{}, false
	}
	return s.colleges[idx], true
}

// Colleges returns a copy of the canonical collection.
func (s *CatalogService) Colleges() []model.College {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.College(nil), s.colleges...)
}

// Filtered returns a copy of the derived filtered view.
func (s *CatalogService) Filtered() []model.College {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.College(nil), s.filtered...)
}

// Filters returns a copy of the active criteria.
func (s *CatalogService) Filters() model.SearchFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters.Clone()
}

// UpdateFilters shallow-merges the patch into the active criteria and
// recomputes the filtered view synchronously. Criteria are transient and
// never persisted. Debouncing, if any, is the caller's concern.
func (s *CatalogService) UpdateFilters(patch model.FilterPatch) model.SearchFilters {
	s.mu.Lock()
	defer s.mu.Unlock()

	patch.Apply(&s.filters)
	s.recompute()
	return s.filters.Clone()
}

// Shortlist adds the college id to the current user's shortlist and persists
// the user record. Idempotent; without an active session it is a silent
// no-op. The userID argument is accepted for interface parity but the store
// only ever operates on the current session.
func (s *CatalogService) Shortlist(ctx context.Context, collegeID, userID string) error {
	user, ok := s.session.Current()
	if !ok {
		return nil
	}

	for _, id := range user.ShortlistedColleges {
		if id == collegeID {
			return nil
		}
	}
	user.ShortlistedColleges = append(user.ShortlistedColleges, collegeID)
	return s.session.SaveUser(ctx, user)
}

// Unshortlist removes the college id from the current user's shortlist.
// Removing a non-member is a no-op, as is the unauthenticated case.
func (s *CatalogService) Unshortlist(ctx context.Context, collegeID, userID string) error {
	user, ok := s.session.Current()
	if !ok {
		return nil
	}

	kept := user.ShortlistedColleges[:0]
	for _, id := range user.ShortlistedColleges {
		if id != collegeID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(user.ShortlistedColleges) {
		return nil
	}
	user.ShortlistedColleges = kept
	return s.session.SaveUser(ctx, user)
}

// IsShortlisted reports whether the college id is on the current user's
// shortlist. False when unauthenticated.
func (s *CatalogService) IsShortlisted(collegeID, userID string) bool {
	user, ok := s.session.Current()
	if !ok {
		return false
	}
	for _, id := range user.ShortlistedColleges {
		if id == collegeID {
			return true
		}
	}
	return false
}

// recompute derives the filtered view from the canonical collection and the
// active criteria. The filter is stable: surviving colleges keep the order of
// the canonical collection. Callers must hold s.mu.
func (s *CatalogService) recompute() {
	filtered := make([]model.College, 0, len(s.colleges))
	for _, college := range s.colleges {
		if s.filters.Matches(college) {
			filtered = append(filtered, college)
		}
	}
	s.filtered = filtered
}

// persist writes the full canonical collection. Callers must hold s.mu.
func (s *CatalogService) persist(ctx context.Context) error {
	return s.store.SetJSON(ctx, database.KeyColleges, s.colleges)
}

func (s *CatalogService) indexOf(id string) int {
	for i := range s.colleges {
		if s.colleges[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID derives ids from the creation timestamp. The guard keeps ids
// strictly increasing when two adds land in the same millisecond. Callers
// must hold s.mu.
func (s *CatalogService) nextID() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}
