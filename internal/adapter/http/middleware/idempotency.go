package middleware

import (
	"bytes"
	"net/http"
	"sync"
	"time"
)

// IdempotencyKeyHeader is the header name for idempotency keys.
const IdempotencyKeyHeader = "Idempotency-Key"

// IdempotencyMiddleware replays cached responses for repeated mutating
// requests carrying the same key, so a duplicated submit cannot create
// two rows. Entries live in memory and expire after ttl.
type IdempotencyMiddleware struct {
	mu      sync.Mutex
	entries map[string]idempotencyEntry
	ttl     time.Duration
}

type idempotencyEntry struct {
	status   int
	body     []byte
	storedAt time.Time
}

// NewIdempotencyMiddleware creates a new IdempotencyMiddleware.
func NewIdempotencyMiddleware(ttl time.Duration) *IdempotencyMiddleware {
	return &IdempotencyMiddleware{
		entries: make(map[string]idempotencyEntry),
		ttl:     ttl,
	}
}

// Wrap wraps an http.Handler with idempotency checking.
func (m *IdempotencyMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Only mutating requests carry keys.
		if r.Method != http.MethodPost && r.Method != http.MethodPut {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get(IdempotencyKeyHeader)
		if key == "" {
			next.ServeHTTP(w, r)
			return
		}

		if entry, ok := m.lookup(key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Idempotency-Replay", "true")
			w.WriteHeader(entry.status)
			w.Write(entry.body)
			return
		}

		recorder := &responseRecorder{
			ResponseWriter: w,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
		}
		next.ServeHTTP(recorder, r)

		if recorder.statusCode >= 200 && recorder.statusCode < 300 {
			m.store(key, recorder.statusCode, recorder.body.Bytes())
		}
	})
}

func (m *IdempotencyMiddleware) lookup(key string) (idempotencyEntry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return idempotencyEntry{}, false
	}
	if time.Since(entry.storedAt) > m.ttl {
		delete(m.entries, key)
		return idempotencyEntry{}, false
	}
	return entry, true
}

func (m *IdempotencyMiddleware) store(key string, status int, body []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Opportunistic expiry keeps the map from growing unbounded.
	for k, e := range m.entries {
		if time.Since(e.storedAt) > m.ttl {
			delete(m.entries, k)
		}
	}

	m.entries[key] = idempotencyEntry{status: status, body: body, storedAt: time.Now()}
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}
