package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/precise-api/internal/platform/requestlog"
)

// EntrySink receives one entry per completed request.
type EntrySink interface {
	Append(requestlog.Entry)
}

// RequestLog records every request, including rejected and unmatched ones,
// once the response has been written.
func RequestLog(sink EntrySink) func(http.Handler) http.Handler {
	return requestLog(sink, time.Now)
}

func requestLog(sink EntrySink, now func() time.Time) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := now()
			peer, method, target := r.RemoteAddr, r.Method, r.URL.RequestURI()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				// The line is stamped when the request finishes.
				end := now()
				sink.Append(requestlog.Entry{
					Time:     end,
					Peer:     peer,
					Method:   method,
					Path:     target,
					Status:   status,
					Duration: end.Sub(start),
				})
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
