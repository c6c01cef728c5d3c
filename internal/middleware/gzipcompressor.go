package middleware

import (
	"net/http"
	"strings"

	"github.com/qrmaster/qr-master-bot/internal/gzipcomp"
	"github.com/qrmaster/qr-master-bot/internal/logger"
)

// minCompressSize минимальный размер тела ответа для сжатия
const minCompressSize = 500

// GzipCompressor is middleware compressor
type GzipCompressor struct {
	log logger.Logger
}

func NewGzipCompressor(log logger.Logger) *GzipCompressor {
	return &GzipCompressor{
		log: log,
	}
}

func (c *GzipCompressor) CompressHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Распаковываем сжатое тело запроса
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			cr, err := gzipcomp.NewCompressReader(r.Body)
			if err != nil {
				c.log.Errorf("Ошибка чтения сжатого тела запроса: %v", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			r.Body = cr
			defer cr.Close()
		}

		if !acceptsGzip(r) {
			next.ServeHTTP(w, r)
			return
		}

		rb := gzipcomp.NewResponseBuffer(w)
		next.ServeHTTP(rb, r)

		compress := rb.Len() >= minCompressSize && compressible(rb.ContentType())
		if err := rb.FlushTo(compress); err != nil {
			c.log.Errorf("Ошибка записи ответа: %v", err)
		}
	})
}

func acceptsGzip(r *http.Request) bool {
	for _, value := range r.Header.Values("Accept-Encoding") {
		if strings.Contains(value, "gzip") {
			return true
		}
	}
	return false
}

// compressible проверяет, имеет ли смысл сжимать ответ данного типа
func compressible(contentType string) bool {
	return strings.HasPrefix(contentType, "text/html") ||
		strings.HasPrefix(contentType, "application/json")
}
