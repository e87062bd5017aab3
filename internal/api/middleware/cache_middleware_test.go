package middleware

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ginzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	entries map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: make(map[string]string)}
}

func (s *fakeStore) Get(ctx context.Context, key string) (string, error) {
	value, ok := s.entries[key]
	if !ok {
		return "", errors.New("cache miss")
	}
	return value, nil
}

func (s *fakeStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.entries[key] = value
	return nil
}

func (s *fakeStore) DeletePattern(ctx context.Context, pattern string) error {
	s.entries = make(map[string]string)
	return nil
}

func gunzipBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	reader, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	defer reader.Close()
	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	return string(body)
}

func TestCacheResponseStoresPlainBodyUnderCompression(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakeStore()
	cacheMiddleware := NewCacheMiddleware(store, "test", time.Minute)

	handlerCalls := 0
	router := gin.New()
	router.GET("/api/exercises",
		ginzip.Gzip(ginzip.DefaultCompression),
		cacheMiddleware.CacheResponse(),
		func(c *gin.Context) {
			handlerCalls++
			c.JSON(http.StatusOK, gin.H{"exercises": []string{"box breathing"}})
		})

	doRequest := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/exercises", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		router.ServeHTTP(rec, req)
		return rec
	}

	miss := doRequest()
	require.Equal(t, http.StatusOK, miss.Code)
	assert.Equal(t, "gzip", miss.Header().Get("Content-Encoding"))
	missBody := gunzipBody(t, miss)

	// The stored entry is the uncompressed JSON, never gzip bytes.
	require.Len(t, store.entries, 1)
	for _, value := range store.entries {
		assert.JSONEq(t, missBody, value)
	}

	hit := doRequest()
	require.Equal(t, http.StatusOK, hit.Code)
	assert.Equal(t, 1, handlerCalls)
	assert.Equal(t, "gzip", hit.Header().Get("Content-Encoding"))
	assert.JSONEq(t, missBody, gunzipBody(t, hit))
}

func TestCacheResponseSkipsWrites(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakeStore()
	cacheMiddleware := NewCacheMiddleware(store, "test", time.Minute)

	router := gin.New()
	router.POST("/api/exercises", cacheMiddleware.CacheResponse(), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/exercises", nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, store.entries)
}
