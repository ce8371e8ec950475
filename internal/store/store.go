// Package store holds the mutable in-process application state: active admin
// sessions and the cached data the dashboard endpoints serve between database
// refreshes. All access goes through named methods under a single mutex.
package store

import (
	"sync"
	"time"

	"coastal/internal/domain/entity"
)

// Store is the single holder of session and cached dashboard state.
type Store struct {
	mu sync.RWMutex

	sessions map[string]*entity.Session

	barracas      []*entity.Barraca
	registrations []*entity.BarracaRegistration
	subscriptions []*entity.EmailSubscription

	weatherOverride        bool
	weatherOverrideExpires *time.Time

	loading   bool
	lastError string
}

// New creates an empty store.
func New() *Store {
	return &Store{
		sessions: make(map[string]*entity.Session),
	}
}

// Login registers a session under its token.
func (s *Store) Login(session *entity.Session) {
	if session == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
}

// Logout removes the session and clears the cached dashboard data: a
// signed-out client must not retain privileged state.
func (s *Store) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	s.barracas = nil
	s.registrations = nil
	s.subscriptions = nil
	s.lastError = ""
}

// Session returns the live session for a token. Expired sessions are evicted
// and reported as absent.
func (s *Store) Session(token string, now time.Time) (*entity.Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if !session.Valid(now) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()

		return nil, false
	}

	return session, true
}

// SessionCount reports the number of registered sessions, expired included.
func (s *Store) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

// SetBarracas replaces the cached barraca list.
func (s *Store) SetBarracas(barracas []*entity.Barraca) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.barracas = barracas
}

// Barracas returns the cached barraca list.
func (s *Store) Barracas() []*entity.Barraca {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.barracas
}

// AddBarraca appends a barraca to the cache.
func (s *Store) AddBarraca(barraca *entity.Barraca) {
	if barraca == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.barracas = append(s.barracas, barraca)
}

// UpdateBarraca replaces the cached element with a matching id. A miss is a
// no-op; the next full refresh reconciles.
func (s *Store) UpdateBarraca(barraca *entity.Barraca) {
	if barraca == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cached := range s.barracas {
		if cached.ID == barraca.ID {
			s.barracas[i] = barraca

			return
		}
	}
}

// DeleteBarraca removes the cached element with a matching id.
func (s *Store) DeleteBarraca(id entity.BarracaID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cached := range s.barracas {
		if cached.ID == id {
			s.barracas = append(s.barracas[:i], s.barracas[i+1:]...)

			return
		}
	}
}

// SetRegistrations replaces the cached registration list.
func (s *Store) SetRegistrations(registrations []*entity.BarracaRegistration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registrations = registrations
}

// Registrations returns the cached registration list.
func (s *Store) Registrations() []*entity.BarracaRegistration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.registrations
}

// SetSubscriptions replaces the cached subscription list.
func (s *Store) SetSubscriptions(subscriptions []*entity.EmailSubscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscriptions = subscriptions
}

// Subscriptions returns the cached subscription list.
func (s *Store) Subscriptions() []*entity.EmailSubscription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.subscriptions
}

// SetWeatherOverride records the cached bad-weather flag and its optional
// expiry. A nil expiry keeps the flag set until toggled off.
func (s *Store) SetWeatherOverride(enabled bool, expiresAt *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weatherOverride = enabled
	s.weatherOverrideExpires = expiresAt
}

// WeatherOverride returns the cached bad-weather flag. A flag past its expiry
// reads as false.
func (s *Store) WeatherOverride() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.weatherOverrideExpires != nil && !time.Now().Before(*s.weatherOverrideExpires) {
		return false
	}

	return s.weatherOverride
}

// WeatherOverrideExpires returns the cached expiry, nil when the flag has no
// expiry.
func (s *Store) WeatherOverrideExpires() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.weatherOverrideExpires
}

// SetLoading flips the loading flag.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// Loading reports whether a refresh is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

// SetLastError records the most recent refresh failure, empty to clear.
func (s *Store) SetLastError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = message
}

// LastError returns the most recent refresh failure message.
func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastError
}
