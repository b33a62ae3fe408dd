package pricelist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oilwatch/backend/internal/domain"
)

func TestFetchPagesHTTPError(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	pages, err := client.FetchPages(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Nil(t, pages)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits), "transient failures retry 3 times")
}

func TestFetchPagesUnreadableDocument(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte("this is not a document"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.FetchPages(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentUnreadable)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "malformed bodies must not retry")
}

func TestFetchPagesSendsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("junk"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.FetchPages(context.Background())

	assert.Equal(t, "oilwatch/1.0", gotAgent)
}

func TestFetchPagesContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// The first attempt fails fast; cancellation must interrupt the backoff.
	start := time.Now()
	_, err := client.FetchPages(ctx)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestExponentialBackoff(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, exponentialBackoff(1))
	assert.Equal(t, time.Second, exponentialBackoff(2))
	assert.Equal(t, 2*time.Second, exponentialBackoff(3))
}
