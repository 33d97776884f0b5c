package mirror

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"mensahub/internal/docstore"
	"mensahub/internal/menu"
	"mensahub/internal/provider"
)

// --------------------------------------------------
// Fakes
// --------------------------------------------------

type fakeServer struct {
	providers []docstore.Document
	meals     []docstore.Document
	err       error

	mealQuery docstore.Query
}

func (f *fakeServer) Name() string { return "server" }

func (f *fakeServer) Fetch(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	switch q.Collection {
	case provider.Collection:
		return f.providers, nil
	case menu.Collection:
		f.mealQuery = q
		return f.meals, nil
	}
	return nil, nil
}

type recordingEvents struct {
	updated   []*provider.FoodProvider
	refreshed int
}

func (r *recordingEvents) ProviderUpdated(p *provider.FoodProvider) {
	r.updated = append(r.updated, p)
}

func (r *recordingEvents) MenusRefreshed() {
	r.refreshed++
}

func newTestCache(t *testing.T) *docstore.CacheStore {
	t.Helper()

	store, err := docstore.OpenCache(filepath.Join(t.TempDir(), "docstore.db"))
	if err != nil {
		t.Fatalf("Failed to open cache: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func providerDoc(id, name, photo string, mondayHours []any) docstore.Document {
	fields := map[string]any{
		"name":     name,
		"location": "Würzburg",
		"category": "canteen",
		"type":     "mensa",
		"address":  "Am Hubland",
	}
	if photo != "" {
		fields["photo"] = photo
	}
	if mondayHours != nil {
		fields["hours_mon"] = mondayHours
	}
	return docstore.Document{ID: id, Fields: fields}
}

func mealDoc(id, name, date string) docstore.Document {
	return docstore.Document{ID: id, Fields: map[string]any{
		"name":           name,
		"foodProviderId": "p1",
		"date":           date,
	}}
}

// 2024-01-01 was a Monday.
var syncClock = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

// --------------------------------------------------
// Sync
// --------------------------------------------------

func TestSyncOnceMirrorsProvidersAndMeals(t *testing.T) {
	server := &fakeServer{
		providers: []docstore.Document{
			providerDoc("p1", "Mensa am Studentenhaus", "", nil),
			providerDoc("p2", "Burse", "", nil),
		},
		meals: []docstore.Document{
			mealDoc("m1", "Pasta", "2024-01-01T11:00:00Z"),
			mealDoc("m2", "Curry", "2024-01-02T11:00:00Z"),
		},
	}
	cache := newTestCache(t)
	events := &recordingEvents{}

	svc := NewService(server, cache, events, time.Minute, 7, time.UTC)
	svc.now = func() time.Time { return syncClock }

	if err := svc.SyncOnce(context.Background()); err != nil {
		t.Fatalf("SyncOnce failed: %v", err)
	}

	providers, err := cache.Fetch(context.Background(), docstore.Query{Collection: provider.Collection})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("expected 2 cached providers, got %d", len(providers))
	}

	meals, err := cache.Fetch(context.Background(), docstore.Query{Collection: menu.Collection})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(meals) != 2 {
		t.Fatalf("expected 2 cached meals, got %d", len(meals))
	}

	wantFrom := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !server.mealQuery.From.Equal(wantFrom) || !server.mealQuery.To.Equal(wantFrom.AddDate(0, 0, 7)) {
		t.Fatalf("expected meal window [%v, +7d), got [%v, %v)", wantFrom, server.mealQuery.From, server.mealQuery.To)
	}
	if server.mealQuery.TimeField != "date" {
		t.Fatalf("expected meal query on the date field, got %q", server.mealQuery.TimeField)
	}

	if events.refreshed != 1 {
		t.Fatalf("expected one menus.refreshed event, got %d", events.refreshed)
	}
	// First run has nothing to diff against.
	if len(events.updated) != 0 {
		t.Fatalf("expected no provider.updated events on first run, got %d", len(events.updated))
	}
}

func TestSyncOncePublishesProviderChanges(t *testing.T) {
	cache := newTestCache(t)
	if err := cache.ReplaceCollection(context.Background(), provider.Collection, []docstore.Document{
		providerDoc("p1", "Mensa am Studentenhaus", "old.jpg", nil),
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	server := &fakeServer{
		providers: []docstore.Document{
			providerDoc("p1", "Mensa am Studentenhaus", "new.jpg", nil),
			providerDoc("p2", "Burse", "", nil),
		},
	}
	events := &recordingEvents{}

	svc := NewService(server, cache, events, time.Minute, 7, time.UTC)
	svc.now = func() time.Time { return syncClock }

	if err := svc.SyncOnce(context.Background()); err != nil {
		t.Fatalf("SyncOnce failed: %v", err)
	}

	// Only the changed existing provider is published; p2 is brand new.
	if len(events.updated) != 1 {
		t.Fatalf("expected 1 provider.updated event, got %d", len(events.updated))
	}
	if events.updated[0].ID != "p1" || events.updated[0].Photo != "new.jpg" {
		t.Fatalf("unexpected event payload: %+v", events.updated[0])
	}

	// A second run over unchanged data stays silent.
	if err := svc.SyncOnce(context.Background()); err != nil {
		t.Fatalf("SyncOnce failed: %v", err)
	}
	if len(events.updated) != 1 {
		t.Fatalf("expected no further events, got %d", len(events.updated))
	}
}

func TestSyncOncePublishesHoursChanges(t *testing.T) {
	cache := newTestCache(t)
	if err := cache.ReplaceCollection(context.Background(), provider.Collection, []docstore.Document{
		providerDoc("p1", "Mensa am Studentenhaus", "", []any{"8.00", "14.00", "13.30", true}),
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	server := &fakeServer{
		providers: []docstore.Document{
			providerDoc("p1", "Mensa am Studentenhaus", "", []any{"9.00", "15.00", "14.30", true}),
		},
	}
	events := &recordingEvents{}

	svc := NewService(server, cache, events, time.Minute, 7, time.UTC)
	svc.now = func() time.Time { return syncClock }

	if err := svc.SyncOnce(context.Background()); err != nil {
		t.Fatalf("SyncOnce failed: %v", err)
	}

	// Monday 10:00: "open until 14:00" became "open until 15:00".
	if len(events.updated) != 1 {
		t.Fatalf("expected 1 provider.updated event, got %d", len(events.updated))
	}
	if events.updated[0].OpeningHoursText != "open until 15:00" {
		t.Fatalf("unexpected status text: %q", events.updated[0].OpeningHoursText)
	}
}

func TestSyncOnceDropsMealsGoneUpstream(t *testing.T) {
	cache := newTestCache(t)
	if err := cache.Put(context.Background(), menu.Collection, []docstore.Document{
		mealDoc("gone", "Yesterday's stew", "2024-01-01T11:00:00Z"),
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	server := &fakeServer{
		meals: []docstore.Document{
			mealDoc("fresh", "Pasta", "2024-01-02T11:00:00Z"),
		},
	}

	svc := NewService(server, cache, nil, time.Minute, 7, time.UTC)

	if err := svc.SyncOnce(context.Background()); err != nil {
		t.Fatalf("SyncOnce failed: %v", err)
	}

	meals, err := cache.Fetch(context.Background(), docstore.Query{Collection: menu.Collection})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(meals) != 1 || meals[0].ID != "fresh" {
		t.Fatalf("expected only the freshly mirrored meal, got %v", meals)
	}
}

func TestSyncOnceServerErrorLeavesCache(t *testing.T) {
	cache := newTestCache(t)
	if err := cache.ReplaceCollection(context.Background(), provider.Collection, []docstore.Document{
		providerDoc("p1", "Mensa am Studentenhaus", "", nil),
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	server := &fakeServer{err: errors.New("upstream down")}
	events := &recordingEvents{}

	svc := NewService(server, cache, events, time.Minute, 7, time.UTC)

	if err := svc.SyncOnce(context.Background()); err == nil {
		t.Fatal("expected SyncOnce to fail")
	}

	providers, err := cache.Fetch(context.Background(), docstore.Query{Collection: provider.Collection})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(providers) != 1 {
		t.Fatalf("expected cached providers untouched, got %d", len(providers))
	}
	if events.refreshed != 0 || len(events.updated) != 0 {
		t.Fatal("expected no events on a failed run")
	}
}

// --------------------------------------------------
// HTTP Handlers
// --------------------------------------------------

func setupSyncTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(svc)
	r.POST("/admin/sync", handler.TriggerSync)
	return r
}

func TestTriggerSyncEndpoint(t *testing.T) {
	server := &fakeServer{
		providers: []docstore.Document{providerDoc("p1", "Mensa am Studentenhaus", "", nil)},
	}
	svc := NewService(server, newTestCache(t), nil, time.Minute, 7, time.UTC)
	router := setupSyncTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/admin/sync", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "sync completed") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestTriggerSyncEndpointReportsFailure(t *testing.T) {
	server := &fakeServer{err: errors.New("upstream down")}
	svc := NewService(server, newTestCache(t), nil, time.Minute, 7, time.UTC)
	router := setupSyncTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/admin/sync", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
}
