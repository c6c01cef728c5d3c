package middleware

import (
	"net/http"
	"strings"
)

// cacheMaxAge время кэширования статики в секундах
const cacheMaxAge = "public, max-age=3600"

// CacheHeaders добавляет заголовки кэширования для статических файлов
func CacheHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cacheable(r.URL.Path) {
			w.Header().Set("Cache-Control", cacheMaxAge)
		}
		next.ServeHTTP(w, r)
	})
}

func cacheable(path string) bool {
	return strings.HasSuffix(path, ".html") ||
		strings.HasSuffix(path, ".css") ||
		strings.HasSuffix(path, ".js")
}
