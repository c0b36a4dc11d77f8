package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/s-204-cmd/Scholars-spotlight-india/database"
	"github.com/s-204-cmd/Scholars-spotlight-india/model"
)

func newTestStores(t *testing.T) (*database.RedisStore, *SessionService, *CatalogService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := database.NewRedisStore("redis://" + mr.Addr())
	if err != nil {
		t.Fatalf("connect store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	session := NewSessionService(store)
	catalog := NewCatalogService(store, session)
	return store, session, catalog, mr
}

func loadedCatalog(t *testing.T) (*database.RedisStore, *SessionService, *CatalogService) {
	t.Helper()

	store, session, catalog, _ := newTestStores(t)
	if err := session.Restore(context.Background()); err != nil {
		t.Fatalf("restore session: %v", err)
	}
	if err := catalog.Load(context.Background()); err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return store, session, catalog
}

func collegeIDs(colleges []model.College) []string {
	ids := make([]string, 0, len(colleges))
	for _, c := range colleges {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestLoadSeedsDefaultCatalog(t *testing.T) {
	store, _, catalog, _ := newTestStores(t)

	if err := catalog.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	colleges := catalog.Colleges()
	if len(colleges) != 5 {
		t.Fatalf("expected 5 seeded colleges, got %d", len(colleges))
	}
	if colleges[0].ID != "1" || colleges[0].Name != "Indian Institute of Technology Mumbai" {
		t.Fatalf("unexpected first seed entry: %s %q", colleges[0].ID, colleges[0].Name)
	}

	// The seed must be persisted, not just held in memory.
	var persisted []model.College
	if err := store.GetJSON(context.Background(), database.KeyColleges, &persisted); err != nil {
		t.Fatalf("read persisted collection: %v", err)
	}
	if len(persisted) != 5 {
		t.Fatalf("expected 5 persisted colleges, got %d", len(persisted))
	}
}

func TestLoadReadsPersistedCollection(t *testing.T) {
	store, _, catalog, _ := newTestStores(t)

	want := []model.College{{ID: "42", Name: "Persisted College", Location: model.Location{City: "Pune", State: "Maharashtra"}, Ranking: 3, Courses: []string{"Law"}}}
	if err := store.SetJSON(context.Background(), database.KeyColleges, want); err != nil {
		t.Fatalf("seed persisted collection: %v", err)
	}

	if err := catalog.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := catalog.Colleges(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected persisted collection, got %+v", got)
	}
}

func TestLoadFallsBackToSeedOnCorruptRecord(t *testing.T) {
	store, _, catalog, mr := newTestStores(t)

	if err := mr.Set(database.KeyColleges, "{definitely not json"); err != nil {
		t.Fatalf("corrupt record: %v", err)
	}

	if err := catalog.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := len(catalog.Colleges()); got != 5 {
		t.Fatalf("expected seed fallback of 5 colleges, got %d", got)
	}

	// The corrupt record must have been replaced by a readable one.
	var persisted []model.College
	if err := store.GetJSON(context.Background(), database.KeyColleges, &persisted); err != nil {
		t.Fatalf("persisted record still unreadable: %v", err)
	}
}

func TestAddAssignsDistinctIncreasingIDs(t *testing.T) {
	_, _, catalog := loadedCatalog(t)

	seen := make(map[string]bool)
	var last string
	for i := 0; i < 10; i++ {
		created, err := catalog.Add(context.Background(), model.College{Name: "Test College", Courses: []string{"Arts"}})
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if created.ID == "" {
			t.Fatal("expected assigned id")
		}
		if seen[created.ID] {
			t.Fatalf("duplicate id %s", created.ID)
		}
		seen[created.ID] = true
		if last != "" && !(len(created.ID) > len(last) || created.ID > last) {
			t.Fatalf("ids not increasing: %s after %s", created.ID, last)
		}
		last = created.ID
	}
}

func TestMutationsPersistRoundTrip(t *testing.T) {
	store, session, catalog := loadedCatalog(t)

	created, err := catalog.Add(context.Background(), model.College{
		Name:     "Round Trip College",
		Location: model.Location{City: "Pune", State: "Maharashtra"},
		Ranking:  7,
		Courses:  []string{"Design"},
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := catalog.Update(context.Background(), "2", model.CollegePatch{Ranking: intPtr(4)}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := catalog.Delete(context.Background(), "5"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// A fresh catalog built over the same store must load an identical
	// collection.
	reloaded := NewCatalogService(store, session)
	if err := reloaded.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(reloaded.Colleges(), catalog.Colleges()) {
		t.Fatal("reloaded collection differs from in-memory collection")
	}
	if _, ok := reloaded.Get(created.ID); !ok {
		t.Fatalf("added college %s missing after reload", created.ID)
	}
	if _, ok := reloaded.Get("5"); ok {
		t.Fatal("deleted college still present after reload")
	}
}

func TestUpdateReplacesNestedObjectsWholesale(t *testing.T) {
	_, _, catalog := loadedCatalog(t)

	patch := model.CollegePatch{
		Name:     strPtr("Delhi University (Updated)"),
		Location: &model.Location{City: "New Delhi"}, // state deliberately absent
	}
	if err := catalog.Update(context.Background(), "2", patch); err != nil {
		t.Fatalf("update: %v", err)
	}

	updated, ok := catalog.Get("2")
	if !ok {
		t.Fatal("college 2 missing")
	}
	if updated.Name != "Delhi University (Updated)" {
		t.Fatalf("name not merged: %q", updated.Name)
	}
	// Nested objects are replaced wholesale, not deep-merged.
	if updated.Location.State != "" {
		t.Fatalf("expected wholesale location replacement, state = %q", updated.Location.State)
	}
	if updated.Location.City != "New Delhi" {
		t.Fatalf("location city not replaced: %q", updated.Location.City)
	}
	// Untouched fields are retained.
	if updated.Ranking != 2 {
		t.Fatalf("ranking should be retained, got %d", updated.Ranking)
	}
}

func TestUpdateAndDeleteUnknownIDAreNoOps(t *testing.T) {
	_, _, catalog := loadedCatalog(t)

	before := catalog.Colleges()
	if err := catalog.Update(context.Background(), "no-such-id", model.CollegePatch{Name: strPtr("X")}); err != nil {
		t.Fatalf("update unknown id: %v", err)
	}
	if err := catalog.Delete(context.Background(), "no-such-id"); err != nil {
		t.Fatalf("delete unknown id: %v", err)
	}
	if !reflect.DeepEqual(catalog.Colleges(), before) {
		t.Fatal("collection changed by unknown-id mutations")
	}
}

func TestDefaultFilterIsActiveOnLoad(t *testing.T) {
	_, _, catalog := loadedCatalog(t)

	// Default criteria: location "Mumbai". Only the two Mumbai colleges
	// survive, in canonical order.
	got := collegeIDs(catalog.Filtered())
	want := []string{"1", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterConjunctionWithRankingBound(t *testing.T) {
	_, _, catalog := loadedCatalog(t)

	// Ranking <= 5 combined with the default Mumbai location leaves ids 1
	// (rank 1) and 3 (rank 5).
	catalog.UpdateFilters(model.FilterPatch{Ranking: intPtr(5)})
	got := collegeIDs(catalog.Filtered())
	if want := []string{"1", "3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// Clearing the location keeps the ranking bound only: 1, 2, 3 qualify,
	// still in canonical order.
	catalog.UpdateFilters(model.FilterPatch{Location: strPtr("")})
	got = collegeIDs(catalog.Filtered())
	if want := []string{"1", "2", "3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterMergeRetainsAbsentCriteria(t *testing.T) {
	_, _, catalog := loadedCatalog(t)

	catalog.UpdateFilters(model.FilterPatch{Ranking: intPtr(5)})
	filters := catalog.UpdateFilters(model.FilterPatch{Stream: strPtr("science")})

	// The earlier criteria survive a later partial update.
	if filters.Location != "Mumbai" || filters.Ranking != 5 || filters.Stream != "science" {
		t.Fatalf("unexpected merged criteria: %+v", filters)
	}
	// "science" matches Computer Science (id 1) and Science (id 3).
	got := collegeIDs(catalog.Filtered())
	if want := []string{"1", "3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterByCoursesAndFees(t *testing.T) {
	_, _, catalog := loadedCatalog(t)

	catalog.UpdateFilters(model.FilterPatch{
		Location: strPtr(""),
		Courses:  &[]string{"Arts"},
	})
	got := collegeIDs(catalog.Filtered())
	if want := []string{"2", "3", "5"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("courses filter: expected %v, got %v", want, got)
	}

	// Fee bounds are conjunctive with the course membership.
	catalog.UpdateFilters(model.FilterPatch{
		Fees: &model.FeeBounds{Min: intPtr(15000), Max: intPtr(100000)},
	})
	got = collegeIDs(catalog.Filtered())
	if want := []string{"3", "5"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("fees filter: expected %v, got %v", want, got)
	}

	// An empty fees object clears the bounds.
	catalog.UpdateFilters(model.FilterPatch{Fees: &model.FeeBounds{}})
	got = collegeIDs(catalog.Filtered())
	if want := []string{"2", "3", "5"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("cleared fees: expected %v, got %v", want, got)
	}
}

func TestShortlistIsIdempotent(t *testing.T) {
	store, session, catalog := loadedCatalog(t)

	user, err := session.Login(context.Background(), "priya@example.com", "user123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := catalog.Shortlist(context.Background(), "2", user.ID); err != nil {
		t.Fatalf("shortlist: %v", err)
	}
	if err := catalog.Shortlist(context.Background(), "2", user.ID); err != nil {
		t.Fatalf("shortlist again: %v", err)
	}

	current, _ := session.Current()
	if !reflect.DeepEqual(current.ShortlistedColleges, []string{"2"}) {
		t.Fatalf("expected single shortlist entry, got %v", current.ShortlistedColleges)
	}
	if !catalog.IsShortlisted("2", user.ID) {
		t.Fatal("expected college 2 to be shortlisted")
	}

	// Removing a non-member is a no-op.
	if err := catalog.Unshortlist(context.Background(), "4", user.ID); err != nil {
		t.Fatalf("unshortlist non-member: %v", err)
	}
	if err := catalog.Unshortlist(context.Background(), "2", user.ID); err != nil {
		t.Fatalf("unshortlist: %v", err)
	}
	if catalog.IsShortlisted("2", user.ID) {
		t.Fatal("expected college 2 to be removed from shortlist")
	}

	// The user record, not the catalog record, carries the change.
	var persisted model.User
	if err := store.GetJSON(context.Background(), database.KeyCurrentUser, &persisted); err != nil {
		t.Fatalf("read persisted user: %v", err)
	}
	if len(persisted.ShortlistedColleges) != 0 {
		t.Fatalf("expected empty persisted shortlist, got %v", persisted.ShortlistedColleges)
	}
}

func TestShortlistWithoutSessionIsNoOp(t *testing.T) {
	_, _, catalog := loadedCatalog(t)

	if err := catalog.Shortlist(context.Background(), "1", "ghost"); err != nil {
		t.Fatalf("shortlist without session: %v", err)
	}
	if catalog.IsShortlisted("1", "ghost") {
		t.Fatal("expected false without an active session")
	}
}

func TestDeleteLeavesShortlistDangling(t *testing.T) {
	_, session, catalog := loadedCatalog(t)

	user, err := session.Login(context.Background(), "priya@example.com", "user123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := catalog.Shortlist(context.Background(), "1", user.ID); err != nil {
		t.Fatalf("shortlist: %v", err)
	}

	if err := catalog.Delete(context.Background(), "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, ok := catalog.Get("1"); ok {
		t.Fatal("college 1 should be gone from the collection")
	}
	// No cascading delete: the shortlist keeps the dangling reference.
	current, _ := session.Current()
	if !reflect.DeepEqual(current.ShortlistedColleges, []string{"1"}) {
		t.Fatalf("expected dangling shortlist entry, got %v", current.ShortlistedColleges)
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
