package httpx

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var compressibleBody = strings.Repeat("<p>hello cars</p>", 64)

func compressionTestHandler(contentType string) http.Handler {
	return Compression(CompressionConfig{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		_, _ = w.Write([]byte(compressibleBody))
	}))
}

func TestCompression_GzipsHTML(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()
	compressionTestHandler("text/html; charset=utf-8").ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Empty(t, rec.Header().Get("Content-Length"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	defer zr.Close()

	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, compressibleBody, string(body))
}

func TestCompression_SkipsWithoutAcceptEncoding(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	compressionTestHandler("text/html").ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, compressibleBody, rec.Body.String())
}

func TestCompression_SkipsNonCompressibleContentType(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	compressionTestHandler("image/png").ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
}

func TestCompression_RespectsZeroQuality(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip;q=0")
	rec := httptest.NewRecorder()
	compressionTestHandler("text/html").ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
}

func TestCompression_SkipsNoContentStatus(t *testing.T) {
	t.Parallel()

	handler := Compression(CompressionConfig{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
}

func TestAcceptsGzip(t *testing.T) {
	t.Parallel()

	assert.True(t, acceptsGzip("gzip"))
	assert.True(t, acceptsGzip("gzip, deflate, br"))
	assert.True(t, acceptsGzip("gzip;q=0.8"))
	assert.False(t, acceptsGzip("gzip;q=0"))
	assert.False(t, acceptsGzip("deflate"))
	assert.False(t, acceptsGzip(""))
}
