package httpx

import (
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
)

// CompressionConfig holds configuration for the compression middleware.
type CompressionConfig struct {
	Level         int // Compression level (1-9, where 6 is default)
	writerPool    *gzipWriterPool
	compressTypes map[string]bool
	Logger        *slog.Logger
}

// gzipWriterPool manages per-level pools of gzip writers for reuse.
type gzipWriterPool struct {
	mu    sync.Mutex
	pools map[int]*sync.Pool
}

func newGzipWriterPool() *gzipWriterPool {
	return &gzipWriterPool{pools: make(map[int]*sync.Pool)}
}

func (p *gzipWriterPool) get(level int) *gzip.Writer {
	p.mu.Lock()
	pool, ok := p.pools[level]
	if !ok {
		pool = &sync.Pool{New: func() any { return newGzipWriter(level) }}
		p.pools[level] = pool
	}
	p.mu.Unlock()

	w, _ := pool.Get().(*gzip.Writer)
	if w == nil {
		return newGzipWriter(level)
	}
	return w
}

func (p *gzipWriterPool) put(w *gzip.Writer, level int) {
	p.mu.Lock()
	pool, ok := p.pools[level]
	p.mu.Unlock()
	if ok {
		w.Reset(io.Discard)
		pool.Put(w)
	}
}

func newGzipWriter(level int) *gzip.Writer {
	w, err := gzip.NewWriterLevel(io.Discard, level)
	if err != nil {
		// Invalid levels fall back to the default; NewWriter never fails.
		return gzip.NewWriter(io.Discard)
	}
	return w
}

func getDefaultCompressibleTypes() map[string]bool {
	return map[string]bool{
		"text/html":                true,
		"text/css":                 true,
		"text/plain":               true,
		"text/xml":                 true,
		"text/javascript":          true,
		"application/javascript":   true,
		"application/x-javascript": true,
		"application/json":         true,
		"application/xml":          true,
		"application/rss+xml":      true,
		"application/atom+xml":     true,
		"image/svg+xml":            true,
	}
}

// Compression returns a middleware that compresses HTTP responses using gzip.
// It compresses responses only when:
// - Client accepts gzip encoding (via Accept-Encoding header).
// - Content-Type is compressible (text/html, text/css, application/json, etc.).
// - Request method is not HEAD.
func Compression(cfg CompressionConfig) func(http.Handler) http.Handler {
	if cfg.writerPool == nil {
		cfg.writerPool = newGzipWriterPool()
	}
	if cfg.compressTypes == nil {
		cfg.compressTypes = getDefaultCompressibleTypes()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Check if client accepts gzip encoding (with basic q-value handling)
			if !acceptsGzip(r.Header.Get("Accept-Encoding")) {
				next.ServeHTTP(w, r)
				return
			}

			// Skip compression for HEAD requests
			if r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			// Wrap response writer to intercept writes and decide compression at WriteHeader time
			gzw := &gzipResponseWriter{
				ResponseWriter: w,
				config:         &cfg,
			}

			// Add Vary header for cache compatibility
			w.Header().Add("Vary", "Accept-Encoding")

			next.ServeHTTP(gzw, r)
			gzw.finish(r)
		})
	}
}

// acceptsGzip checks if the client accepts gzip encoding, respecting q-values.
func acceptsGzip(acceptEncoding string) bool {
	if acceptEncoding == "" {
		return false
	}

	parts := strings.Split(acceptEncoding, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)

		encoding := part
		if idx := strings.Index(part, ";"); idx != -1 {
			encoding = strings.TrimSpace(part[:idx])
		}
		if !strings.EqualFold(encoding, "gzip") {
			continue
		}

		// Check for explicit q=0 or q=0.0 (disabled)
		if strings.Contains(part, "q=0.0") || strings.Contains(part, "q=0;") || strings.HasSuffix(part, "q=0") {
			return false
		}
		return true
	}
	return false
}

// isCompressibleContentType checks if the content type should be compressed.
func isCompressibleContentType(contentType string, compressTypes map[string]bool) bool {
	// Extract media type without parameters (e.g., "text/html; charset=utf-8" -> "text/html")
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	contentType = strings.TrimSpace(strings.ToLower(contentType))
	return compressTypes[contentType]
}

// gzipResponseWriter wraps http.ResponseWriter and compresses the body when
// the response turns out to be compressible. The compression decision is
// deferred until headers are final so Content-Type is known.
type gzipResponseWriter struct {
	http.ResponseWriter
	config         *CompressionConfig
	gzipWriter     *gzip.Writer
	headerWritten  bool
	shouldCompress bool
	status         int
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	if w.headerWritten {
		return
	}
	w.headerWritten = true
	w.status = status

	contentType := w.Header().Get("Content-Type")
	compressible := isCompressibleContentType(contentType, w.config.compressTypes) &&
		status != http.StatusNoContent &&
		status != http.StatusNotModified &&
		status >= http.StatusOK

	if compressible {
		w.shouldCompress = true
		w.Header().Del("Content-Length")
		w.Header().Set("Content-Encoding", "gzip")
		gz := w.config.writerPool.get(w.config.Level)
		gz.Reset(w.ResponseWriter)
		w.gzipWriter = gz
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if !w.headerWritten {
		// Sniff content type the same way net/http does before deciding
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(b))
		}
		w.WriteHeader(http.StatusOK)
	}
	if w.shouldCompress {
		return w.gzipWriter.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

// finish flushes and returns the gzip writer to the pool.
func (w *gzipResponseWriter) finish(r *http.Request) {
	if w.gzipWriter == nil {
		return
	}
	if err := w.gzipWriter.Close(); err != nil {
		w.config.Logger.ErrorContext(r.Context(), "closing gzip writer failed", "error", err)
	}
	w.config.writerPool.put(w.gzipWriter, w.config.Level)
	w.gzipWriter = nil
}
