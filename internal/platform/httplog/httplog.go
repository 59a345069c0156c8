package httplog

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestLogger logs one line per request: request id, method, path,
// response status, and latency. The timestamp comes from the standard
// log package prefix.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		log.Printf("%s %s %s %d %s", reqID, r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}
