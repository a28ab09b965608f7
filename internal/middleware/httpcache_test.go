package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHTTPCacheNilClientPassthrough(t *testing.T) {
	r := gin.New()
	r.Use(HTTPCache(nil, HTTPCacheOptions{PathPrefixes: []string{"/api/casinos"}}))
	r.GET("/api/casinos", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"items": []string{}}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/casinos", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-Cache"))
}

func TestMatchesPrefix(t *testing.T) {
	prefixes := []string{"/api/casinos", "/api/blogs"}

	assert.True(t, matchesPrefix("/api/casinos", prefixes))
	assert.True(t, matchesPrefix("/api/casinos/lucky-spin", prefixes))
	assert.True(t, matchesPrefix("/api/blogs", prefixes))
	assert.False(t, matchesPrefix("/api/reviews", prefixes))
	assert.False(t, matchesPrefix("/api", prefixes))
	assert.False(t, matchesPrefix("/api/casinos", nil))
}

func TestCacheBodyWriterCapsCapturedBody(t *testing.T) {
	w := &cacheBodyWriter{maxBodyBytes: 4}
	w.capture([]byte("abc"))
	w.capture([]byte("def"))

	assert.True(t, w.overflow)
	assert.Equal(t, []byte("abcd"), w.body)
}
