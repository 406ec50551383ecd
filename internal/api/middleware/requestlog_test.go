package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/precise-api/internal/platform/requestlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu      sync.Mutex
	entries []requestlog.Entry
}

func (s *recordingSink) Append(e requestlog.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
}

func (s *recordingSink) snapshot() []requestlog.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]requestlog.Entry(nil), s.entries...)
}

func TestRequestLog(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 9, 29, 59, 980_000_000, time.UTC)
	end := start.Add(1042 * time.Millisecond)
	ticks := []time.Time{start, end}
	now := func() time.Time {
		tm := ticks[0]
		ticks = ticks[1:]
		return tm
	}

	sink := &recordingSink{}
	handler := requestLog(sink, now)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/master/cities/9?force=false", nil)
	req.RemoteAddr = "10.1.2.3:5555"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entries := sink.snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, requestlog.Entry{
		Time:     end,
		Peer:     "10.1.2.3:5555",
		Method:   http.MethodDelete,
		Path:     "/master/cities/9?force=false",
		Status:   http.StatusNotFound,
		Duration: 1042 * time.Millisecond,
	}, entries[0])
	assert.Equal(t, "[2026-03-01 09:30:01] 10.1.2.3:5555 DELETE /master/cities/9?force=false 404 1042ms\n", entries[0].Line())
}

func TestRequestLog_DefaultStatus(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	handler := RequestLog(sink)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	entries := sink.snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, http.StatusOK, entries[0].Status)
}

func TestRequestLog_Concurrent(t *testing.T) {
	t.Parallel()

	const n = 100
	sink := &recordingSink{}
	handler := RequestLog(sink)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/master/countries/%d", i), nil)
			handler.ServeHTTP(httptest.NewRecorder(), req)
		}(i)
	}
	wg.Wait()

	entries := sink.snapshot()
	require.Len(t, entries, n)
	seen := make(map[string]bool, n)
	for _, e := range entries {
		seen[e.Path] = true
	}
	assert.Len(t, seen, n)
}
