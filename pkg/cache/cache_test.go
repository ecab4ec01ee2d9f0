package cache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopfront-io/shopfront/pkg/client"
	"github.com/shopfront-io/shopfront/pkg/types"
)

func newCustomerCache(t *testing.T, handler http.Handler) *Cache[types.Record] {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := client.New(types.Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, nil)
	require.NoError(t, err)

	cc, err := NewRecordCache(c, types.EntityCustomers, nil)
	require.NoError(t, err)
	return cc
}

// The customers list scenario end to end: fetch, update one, remove one.
func TestCustomersListScenario(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"1","name":"Ann","status":"active"},{"id":"2","name":"Bo","status":"inactive"}]`))
	})
	mux.HandleFunc("PUT /customers/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"1","name":"Ann","status":"inactive"}`))
	})
	mux.HandleFunc("DELETE /customers/2", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	cc := newCustomerCache(t, mux)
	ctx := context.Background()

	st := cc.Store().State()
	assert.Empty(t, st.Collection)
	assert.False(t, st.Loading)

	require.NoError(t, cc.FetchAll(ctx))
	st = cc.Store().State()
	require.Len(t, st.Collection, 2)
	assert.False(t, st.Loading)
	assert.NoError(t, st.Err)

	_, err := cc.Update(ctx, "1", types.Record{"status": "inactive"})
	require.NoError(t, err)

	ann, ok := cc.Store().Get("1")
	require.True(t, ok)
	assert.Equal(t, "inactive", ann["status"])
	assert.Equal(t, "Ann", ann["name"])
	bo, ok := cc.Store().Get("2")
	require.True(t, ok)
	assert.Equal(t, "inactive", bo["status"])

	require.NoError(t, cc.Remove(ctx, "2"))
	st = cc.Store().State()
	require.Len(t, st.Collection, 1)
	assert.Equal(t, "1", st.Collection[0].ID())
}

func TestFetchFailureKeepsStaleCollection(t *testing.T) {
	var fail atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"message":"upstream down"}`))
			return
		}
		w.Write([]byte(`[{"id":"1","name":"Ann"}]`))
	})

	cc := newCustomerCache(t, mux)
	ctx := context.Background()

	require.NoError(t, cc.FetchAll(ctx))
	require.Equal(t, 1, cc.Store().Len())

	fail.Store(true)
	err := cc.FetchAll(ctx)
	require.Error(t, err)

	// Previous collection still displayed, error surfaced.
	st := cc.Store().State()
	assert.Len(t, st.Collection, 1)
	var statusErr *client.StatusError
	require.ErrorAs(t, st.Err, &statusErr)
	assert.Equal(t, "upstream down", statusErr.Message)
}

func TestCreateFailureIsolation(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"1","name":"Ann"}]`))
	})
	mux.HandleFunc("POST /customers", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"email taken"}`))
	})

	cc := newCustomerCache(t, mux)
	ctx := context.Background()
	require.NoError(t, cc.FetchAll(ctx))
	before := cc.Store().Snapshot()

	_, err := cc.Create(ctx, types.Record{"name": "Dup", "email": "ann@example.com"})
	require.Error(t, err)

	after := cc.Store().State()
	assert.Equal(t, before, after.Collection)
	assert.Error(t, after.Err)
}

func TestCreateResponseWithoutIDRejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /customers", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"no id here"}`))
	})

	cc := newCustomerCache(t, mux)
	_, err := cc.Create(context.Background(), types.Record{"name": "x"})

	var decodeErr *client.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, 0, cc.Store().Len())
}

func TestUpdateFallsBackToSentPatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"1","name":"Ann","status":"active"}]`))
	})
	mux.HandleFunc("PUT /customers/1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	cc := newCustomerCache(t, mux)
	ctx := context.Background()
	require.NoError(t, cc.FetchAll(ctx))

	merged, err := cc.Update(ctx, "1", types.Record{"status": "inactive"})
	require.NoError(t, err)
	assert.Equal(t, "inactive", merged["status"])
	assert.Equal(t, "Ann", merged["name"])
}

// A delete that wins the race against an update must leave the update as a
// harmless no-op, never a crash or a resurrected record.
func TestUpdateAfterDeleteRace(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"1","name":"Ann"}]`))
	})
	mux.HandleFunc("DELETE /customers/1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("PUT /customers/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"1","name":"Zed"}`))
	})

	cc := newCustomerCache(t, mux)
	ctx := context.Background()
	require.NoError(t, cc.FetchAll(ctx))

	require.NoError(t, cc.Remove(ctx, "1"))
	_, err := cc.Update(ctx, "1", types.Record{"name": "Zed"})
	require.NoError(t, err)

	assert.Equal(t, 0, cc.Store().Len())
}

func TestIndependentCaches(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"c1"}]`))
	})
	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"products down"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c, err := client.New(types.Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, nil)
	require.NoError(t, err)

	customers, err := NewRecordCache(c, types.EntityCustomers, nil)
	require.NoError(t, err)
	products, err := NewRecordCache(c, types.EntityProducts, nil)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, customers.FetchAll(ctx))
	require.Error(t, products.FetchAll(ctx))

	// One entity type failing does not bleed into another.
	assert.Equal(t, 1, customers.Store().Len())
	assert.NoError(t, customers.Store().State().Err)
	assert.Error(t, products.Store().State().Err)
}

func TestTypedCache(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"p1","sku":"SKU-1","name":"Mug","stock":3}]`))
	})
	mux.HandleFunc("PUT /products/p1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"p1","sku":"SKU-1","name":"Mug","stock":10}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c, err := client.New(types.Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, nil)
	require.NoError(t, err)

	pc := New(c, "products", func(p types.Product) string { return p.ID }, nil)
	ctx := context.Background()
	require.NoError(t, pc.FetchAll(ctx))

	mug, ok := pc.Store().Get("p1")
	require.True(t, ok)
	mug.Stock = 10

	updated, err := pc.Update(ctx, "p1", mug)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Stock)
}
