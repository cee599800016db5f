package ledger

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultSessionTTL is how long an untouched session ledger is kept
	DefaultSessionTTL = 30 * time.Minute

	// CleanupInterval is how often the background cleanup runs
	CleanupInterval = 30 * time.Second
)

// SessionStore owns one Ledger per application session. Ledgers live in memory
// only and are dropped once idle for longer than the TTL.
type SessionStore struct {
	mu      sync.RWMutex
	ledgers map[string]*Ledger // sessionID -> ledger
	ttl     time.Duration
	logger  *zap.Logger

	onExpire []func(sessionID string)

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

// NewSessionStore creates the store and starts its cleanup loop
func NewSessionStore(ttl time.Duration, logger *zap.Logger) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	s := &SessionStore{
		ledgers:     make(map[string]*Ledger),
		ttl:         ttl,
		logger:      logger,
		stopCleanup: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.cleanupLoop()

	return s
}

// Get returns the ledger of sessionID, creating an empty one on first use.
// Every call counts as activity and restarts the idle timer.
func (s *SessionStore) Get(sessionID string) *Ledger {
	// touch while holding the store lock so expireIdle cannot drop the ledger in between
	s.mu.RLock()
	l, ok := s.ledgers[sessionID]
	if ok {
		l.touch()
	}
	s.mu.RUnlock()
	if ok {
		return l
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok = s.ledgers[sessionID]; ok {
		l.touch()
		return l
	}
	l = New()
	s.ledgers[sessionID] = l
	return l
}

// Drop forgets the ledger of sessionID
func (s *SessionStore) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ledgers, sessionID)
}

// OnExpire registers fn to run for every session the idle cleanup drops. Other
// per-session state, like the wishlist, uses it to share the ledger's lifetime.
func (s *SessionStore) OnExpire(fn func(sessionID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExpire = append(s.onExpire, fn)
}

// Len returns the number of live sessions
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ledgers)
}

func (s *SessionStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			s.expireIdle(now)
		case <-s.stopCleanup:
			return
		}
	}
}

// expireIdle drops every ledger untouched since now-ttl and runs the expiry hooks
func (s *SessionStore) expireIdle(now time.Time) {
	s.mu.Lock()
	var expired []string
	for id, l := range s.ledgers {
		if now.Sub(l.lastTouched()) > s.ttl {
			delete(s.ledgers, id)
			expired = append(expired, id)
		}
	}
	remaining := len(s.ledgers)
	hooks := s.onExpire
	s.mu.Unlock()

	if len(expired) == 0 {
		return
	}
	for _, id := range expired {
		for _, fn := range hooks {
			fn(id)
		}
	}
	s.logger.Info("expired idle carts", zap.Int("count", len(expired)), zap.Int("remaining", remaining))
}

// Close stops the background cleanup and waits for it to finish
func (s *SessionStore) Close() error {
	close(s.stopCleanup)
	s.wg.Wait()
	return nil
}
