package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"eventPandey/internal/clock"
	"eventPandey/internal/site"
)

type Config struct {
	CookieName string
	TTL        time.Duration
	Site       site.Options
}

type entry struct {
	store    *site.Store
	lastSeen time.Time
}

// Manager keeps one site.Store per visitor, keyed by a cookie.
type Manager struct {
	cfg   Config
	clock clock.Clock

	mu       sync.Mutex
	sessions map[string]*entry
}

func NewManager(cfg Config, c clock.Clock) *Manager {
	if cfg.CookieName == "" {
		cfg.CookieName = "ep_session"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Minute
	}

	return &Manager{
		cfg:      cfg,
		clock:    c,
		sessions: make(map[string]*entry),
	}
}

// Store returns the visitor's store, starting a new session and setting the
// cookie when the request carries no live one. The new id is also recorded on
// r, so later calls for the same request resolve to the same store.
func (m *Manager) Store(w http.ResponseWriter, r *http.Request) *site.Store {
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if c, err := r.Cookie(m.cfg.CookieName); err == nil {
		if e, ok := m.sessions[c.Value]; ok {
			e.lastSeen = now
			return e.store
		}
	}

	id := uuid.NewString()
	e := &entry{
		store:    site.NewStore(m.clock, m.cfg.Site),
		lastSeen: now,
	}
	m.sessions[id] = e

	c := &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, c)
	replaceCookie(r, c)

	return e.store
}

// replaceCookie swaps any cookie named c.Name on r for c.
func replaceCookie(r *http.Request, c *http.Cookie) {
	cookies := r.Cookies()
	r.Header.Del("Cookie")

	for _, old := range cookies {
		if old.Name != c.Name {
			r.AddCookie(old)
		}
	}
	r.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
}

// Sweep closes and forgets sessions idle for longer than the TTL.
func (m *Manager) Sweep() int {
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, e := range m.sessions {
		if now.Sub(e.lastSeen) > m.cfg.TTL {
			e.store.Close()
			delete(m.sessions, id)
			evicted++
		}
	}

	return evicted
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}

// Close ends every session.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, e := range m.sessions {
		e.store.Close()
		delete(m.sessions, id)
	}
}

func (m *Manager) Dispatch(w http.ResponseWriter, r *http.Request, msg site.Msg) error {
	return m.Store(w, r).Dispatch(msg)
}

func (m *Manager) Snapshot(w http.ResponseWriter, r *http.Request) site.Snapshot {
	return m.Store(w, r).Snapshot()
}
