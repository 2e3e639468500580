package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var gzipWriters = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// compressReader распаковывает тело запроса
type compressReader struct {
	r          io.ReadCloser
	gzipReader *gzip.Reader
}

func newCompressReader(r io.ReadCloser) (*compressReader, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	return &compressReader{
		r:          r,
		gzipReader: gzipReader,
	}, nil
}

func (c *compressReader) Read(p []byte) (n int, err error) {
	return c.gzipReader.Read(p)
}

func (c *compressReader) Close() error {
	if err := c.gzipReader.Close(); err != nil {
		return err
	}
	return c.r.Close()
}

// compressibleTypes ответы, которые имеет смысл сжимать: JSON панели и статистики
var compressibleTypes = map[string]bool{
	"application/json":         true,
	"application/problem+json": true,
	"text/html":                true,
	"text/plain":               true,
}

func shouldCompress(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	return compressibleTypes[ct]
}

// gzipResponseWriter решает сжимать ли ответ по Content-Type при записи заголовков
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter  *gzip.Writer
	wroteHeader bool
	compressing bool
}

func newGzipResponseWriter(w http.ResponseWriter) *gzipResponseWriter {
	return &gzipResponseWriter{ResponseWriter: w}
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	h := w.Header()
	if h.Get("Content-Encoding") == "" && statusCode != http.StatusNoContent && statusCode >= 200 &&
		shouldCompress(h.Get("Content-Type")) {
		h.Set("Content-Encoding", "gzip")
		h.Del("Content-Length")
		w.gzipWriter = gzipWriters.Get().(*gzip.Writer)
		w.gzipWriter.Reset(w.ResponseWriter)
		w.compressing = true
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	if w.compressing {
		return w.gzipWriter.Write(data)
	}

	return w.ResponseWriter.Write(data)
}

func (w *gzipResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Close дописывает поток gzip и возвращает writer в пул
func (w *gzipResponseWriter) Close() error {
	if !w.compressing {
		return nil
	}
	err := w.gzipWriter.Close()
	w.gzipWriter.Reset(io.Discard)
	gzipWriters.Put(w.gzipWriter)
	w.compressing = false
	return err
}

// GzipMiddleware распаковывает сжатые запросы и сжимает ответы клиентам с Accept-Encoding: gzip
func GzipMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				cr, err := newCompressReader(r.Body)
				if err != nil {
					logger.Warn("failed to decompress request body",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
						zap.String("method", r.Method),
						zap.String("remote_addr", r.RemoteAddr),
					)
					http.Error(w, "Failed to decompress request body", http.StatusBadRequest)
					return
				}
				defer func() {
					if err := cr.Close(); err != nil {
						logger.Warn("failed to close compress reader", zap.Error(err), zap.String("uri", r.RequestURI))
					}
				}()
				r.Body = cr
				r.Header.Del("Content-Encoding")
				r.ContentLength = -1
			}

			w.Header().Add("Vary", "Accept-Encoding")

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gzipWriter := newGzipResponseWriter(w)
			defer func() {
				if err := gzipWriter.Close(); err != nil {
					logger.Error("failed to close gzip writer", zap.Error(err), zap.String("uri", r.RequestURI))
				}
			}()

			next.ServeHTTP(gzipWriter, r)
		})
	}
}
