// Test helpers: an in-memory fake of the Shopfront admin API implementing
// the conventional REST semantics (GET list, POST create, PUT update,
// DELETE remove) for any entity collection.
package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/shopfront-io/shopfront/pkg/types"
)

// fakeBackend holds one ordered collection per entity path.
type fakeBackend struct {
	mu     sync.Mutex
	data   map[string][]types.Record
	nextID int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{data: make(map[string][]types.Record), nextID: 1}
}

// seed replaces the collection at path.
func (b *fakeBackend) seed(path string, records ...types.Record) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[path] = records
}

func (b *fakeBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		w.Header().Set("Content-Type", "application/json")

		switch {
		case len(parts) == 1 && r.Method == http.MethodGet:
			b.list(w, parts[0])
		case len(parts) == 1 && r.Method == http.MethodPost:
			b.create(w, r, parts[0])
		case len(parts) == 2 && r.Method == http.MethodPut:
			b.update(w, r, parts[0], parts[1])
		case len(parts) == 2 && r.Method == http.MethodDelete:
			b.remove(w, parts[0], parts[1])
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
			w.Write([]byte(`{"message":"unsupported"}`))
		}
	})
}

func (b *fakeBackend) list(w http.ResponseWriter, path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	records := b.data[path]
	if records == nil {
		records = []types.Record{}
	}
	json.NewEncoder(w).Encode(records)
}

func (b *fakeBackend) create(w http.ResponseWriter, r *http.Request, path string) {
	var payload types.Record
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"bad payload"}`))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	record := payload.Clone()
	record["id"] = fmt.Sprintf("%s-%d", strings.TrimSuffix(path, "s"), b.nextID)
	b.nextID++
	b.data[path] = append(b.data[path], record)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

func (b *fakeBackend) update(w http.ResponseWriter, r *http.Request, path, id string) {
	var patch types.Record
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"bad payload"}`))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, rec := range b.data[path] {
		if rec.ID() == id {
			merged := types.MergeRecords(rec, patch)
			merged["id"] = rec["id"]
			b.data[path][i] = merged
			json.NewEncoder(w).Encode(merged)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"message":"not found"}`))
}

func (b *fakeBackend) remove(w http.ResponseWriter, path, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	records := b.data[path]
	for i, rec := range records {
		if rec.ID() == id {
			b.data[path] = append(records[:i], records[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"message":"not found"}`))
}

// startBackend serves the fake API for one test.
func startBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()
	backend := newFakeBackend()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	return backend, srv
}
