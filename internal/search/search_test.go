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

	"github.com/Skotchmaster/storefront/internal/models"
)

type fakeES struct {
	mu       sync.Mutex
	requests []string
	bodies   []string
}

func (f *fakeES) handler(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
	f.bodies = append(f.bodies, string(body))
	f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	switch {
	case strings.HasSuffix(r.URL.Path, "/_search"):
		_, _ = io.WriteString(w, `{"hits":{"total":{"value":1},"hits":[{"_source":{"id":3,"name":"widget","price":9.99,"category":"tools"}}]}}`)
	case r.Method == http.MethodDelete && strings.HasSuffix(r.URL.Path, "/404"):
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"result":"not_found"}`)
	default:
		_, _ = io.WriteString(w, `{"result":"ok","version":{"number":"9.0.0"}}`)
	}
}

func newTestIndex(t *testing.T) (*Index, *fakeES) {
	t.Helper()
	f := &fakeES{}
	srv := httptest.NewServer(http.HandlerFunc(f.handler))
	t.Cleanup(srv.Close)

	idx, err := NewIndex(Config{URL: srv.URL, Index: "products"})
	require.NoError(t, err)
	return idx, f
}

func TestIndex_IndexAndDeleteProduct(t *testing.T) {
	idx, f := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.Ping(ctx))
	require.NoError(t, idx.IndexProduct(ctx, models.Product{ID: 3, Name: "widget", Price: 9.99, Category: "tools"}))
	require.NoError(t, idx.DeleteProduct(ctx, 3))
	require.NoError(t, idx.DeleteProduct(ctx, 404))

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Contains(t, f.requests, "PUT /products/_doc/3")
	assert.Contains(t, f.requests, "DELETE /products/_doc/3")

	var doc models.Product
	for i, r := range f.requests {
		if r == "PUT /products/_doc/3" {
			require.NoError(t, json.Unmarshal([]byte(f.bodies[i]), &doc))
		}
	}
	assert.Equal(t, "widget", doc.Name)
}

func TestIndex_Search(t *testing.T) {
	idx, f := newTestIndex(t)

	total, items, err := idx.Search(context.Background(), "widgt", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "widget", items[0].Name)

	f.mu.Lock()
	defer f.mu.Unlock()
	last := f.bodies[len(f.bodies)-1]
	assert.Contains(t, last, `"multi_match"`)
	assert.Contains(t, last, `"widgt"`)
}
