package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/sims/internal/models"
)

type recorded struct {
	method string
	path   string
	body   []byte
}

type fakeES struct {
	mu       sync.Mutex
	requests []recorded
	status   int
	hits     string
}

func (f *fakeES) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recorded{method: r.Method, path: r.URL.Path, body: body})
	status := f.status
	f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	if r.URL.Path == "/" {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"version":{"number":"9.0.0"},"tagline":"You Know, for Search"}`))
		return
	}
	w.WriteHeader(status)
	if strings.HasSuffix(r.URL.Path, "/_search") {
		_, _ = w.Write([]byte(f.hits))
		return
	}
	_, _ = w.Write([]byte(`{}`))
}

func (f *fakeES) last() recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func newTestIndexer(t *testing.T, status int) (*Indexer, *fakeES) {
	t.Helper()
	fake := &fakeES{status: status}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), srv.URL, "", "")
	require.NoError(t, err)
	return NewIndexer(client, "items"), fake
}

func TestIndexItem(t *testing.T) {
	ix, fake := newTestIndexer(t, http.StatusCreated)

	item := &models.Item{ID: 42, Name: "pen", Price: 2, Quantity: 5, Status: models.StatusAvailable}
	require.NoError(t, ix.IndexItem(context.Background(), item))

	req := fake.last()
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/items/_doc/42", req.path)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(req.body, &doc))
	assert.Equal(t, "pen", doc["name"])
}

func TestIndexItem_ServerError(t *testing.T) {
	ix, _ := newTestIndexer(t, http.StatusInternalServerError)
	err := ix.IndexItem(context.Background(), &models.Item{ID: 1, Name: "pen"})
	assert.Error(t, err)
}

func TestDeleteItem(t *testing.T) {
	ix, fake := newTestIndexer(t, http.StatusOK)
	require.NoError(t, ix.DeleteItem(context.Background(), 3))

	req := fake.last()
	assert.Equal(t, http.MethodDelete, req.method)
	assert.Equal(t, "/items/_doc/3", req.path)
}

func TestDeleteItem_MissingDocIsNotAnError(t *testing.T) {
	ix, _ := newTestIndexer(t, http.StatusNotFound)
	assert.NoError(t, ix.DeleteItem(context.Background(), 3))
}

func TestSearchItems(t *testing.T) {
	ix, fake := newTestIndexer(t, http.StatusOK)
	fake.hits = `{"hits":{"hits":[
		{"_id":"1","_source":{"id":1,"name":"blue pen","price":2,"quantity":5,"date":"2024-03-01","status":"Available"}},
		{"_id":"2","_source":{"id":2,"name":"red pen","price":3,"quantity":1,"date":null,"status":"Available"}}
	]}}`

	items, err := ix.SearchItems(context.Background(), "pen", 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "blue pen", items[0].Name)
	assert.Equal(t, models.NewDate(2024, 3, 1), items[0].Date)
	assert.True(t, items[1].Date.IsZero())

	req := fake.last()
	assert.Equal(t, "/items/_search", req.path)

	var body map[string]any
	require.NoError(t, json.Unmarshal(req.body, &body))
	assert.EqualValues(t, 10, body["size"])
}

func TestSearchItems_MissingIndex(t *testing.T) {
	ix, _ := newTestIndexer(t, http.StatusNotFound)

	_, err := ix.SearchItems(context.Background(), "pen", 10)
	assert.ErrorIs(t, err, ErrIndexMissing)
}
