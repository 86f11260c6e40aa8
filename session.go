package bookmyshow

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jaydeepparmar2244/BookMyShow-FE/storage"
	"github.com/jaydeepparmar2244/BookMyShow-FE/token"
)

type hydrationOutcome uint8

const (
	hydrationEmpty hydrationOutcome = iota
	hydrationRestored
	hydrationDiscarded
)

// sessionStore owns the credential, the profile, and the phase they imply.
// All mutation goes through it, serialized by one mutex. The generation
// counter invalidates in-flight login results: logout bumps it, and a
// commit carrying an older generation is discarded instead of resurrecting
// a session the user already left.
type sessionStore struct {
	store storage.Store
	clock func() time.Time

	mu         sync.Mutex
	hydrated   bool
	credential string
	profile    UserProfile
	generation uint64
}

func newSessionStore(store storage.Store, clock func() time.Time) *sessionStore {
	if clock == nil {
		clock = time.Now
	}
	return &sessionStore{
		store: store,
		clock: clock,
	}
}

// hydrate restores persisted state exactly once. A persisted credential
// that is no longer live is discarded, and the backing store is cleared so
// the dead credential is not re-read on the next start.
func (s *sessionStore) hydrate(ctx context.Context) (hydrationOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return hydrationEmpty, nil
	}
	s.hydrated = true

	rec, err := s.store.Load(ctx)
	if err != nil {
		return hydrationEmpty, fmt.Errorf("load session: %w", err)
	}
	if rec.Empty() {
		return hydrationEmpty, nil
	}

	if !token.IsLive(rec.Credential, s.clock()) {
		if err := s.store.Clear(ctx); err != nil {
			return hydrationDiscarded, fmt.Errorf("clear dead session: %w", err)
		}
		return hydrationDiscarded, nil
	}

	s.credential = rec.Credential
	s.profile = decodeProfile(rec)
	return hydrationRestored, nil
}

// decodeProfile unmarshals the persisted profile, falling back to a
// minimal profile synthesized from credential claims when the stored bytes
// are missing or corrupt.
func decodeProfile(rec storage.Record) UserProfile {
	var profile UserProfile
	if len(rec.Profile) > 0 {
		if err := json.Unmarshal(rec.Profile, &profile); err == nil && profile.SubjectID != "" {
			return profile
		}
	}
	return synthesizeProfile(rec.Credential)
}

// synthesizeProfile builds the smallest usable profile out of credential
// claims alone.
func synthesizeProfile(credential string) UserProfile {
	claims, err := token.Decode(credential)
	if err != nil {
		return UserProfile{}
	}
	return UserProfile{
		SubjectID: claims.SubjectID,
		Role:      claims.Role,
	}
}

// beginAttempt marks the start of an async auth attempt and returns the
// generation it belongs to.
func (s *sessionStore) beginAttempt() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// commitLogin installs a fresh credential and profile, persisting both.
// A commit from a generation older than the current one returns
// [ErrStaleResult] and changes nothing.
func (s *sessionStore) commitLogin(ctx context.Context, gen uint64, credential string, profile UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return ErrStaleResult
	}

	if profile.SubjectID == "" {
		profile = synthesizeProfile(credential)
	}

	if err := s.persistLocked(ctx, credential, profile); err != nil {
		return err
	}
	s.credential = credential
	s.profile = profile
	return nil
}

// updateProfile replaces the profile of the current session, preserving
// the selected city when the replacement does not carry one.
func (s *sessionStore) updateProfile(ctx context.Context, gen uint64, profile UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return ErrStaleResult
	}
	if s.credential == "" {
		return ErrNotAuthenticated
	}

	if profile.City == "" {
		profile.City = s.profile.City
	}
	if err := s.persistLocked(ctx, s.credential, profile); err != nil {
		return err
	}
	s.profile = profile
	return nil
}

// updateCity records the selected operating city on the current session.
func (s *sessionStore) updateCity(ctx context.Context, city string) error {
	if city == "" {
		return ErrCityRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.credential == "" || !token.IsLive(s.credential, s.clock()) {
		return ErrNotAuthenticated
	}

	profile := s.profile
	if profile.SubjectID == "" {
		profile = synthesizeProfile(s.credential)
	}
	profile.City = city

	if err := s.persistLocked(ctx, s.credential, profile); err != nil {
		return err
	}
	s.profile = profile
	return nil
}

// logout clears session state and persisted storage. It is idempotent; a
// second call is a no-op that still succeeds. Every call bumps the
// generation so in-flight attempts cannot land afterward.
func (s *sessionStore) logout(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++

	hadSession := s.credential != "" || s.profile != (UserProfile{})
	s.credential = ""
	s.profile = UserProfile{}

	if err := s.store.Clear(ctx); err != nil {
		return hadSession, fmt.Errorf("clear session: %w", err)
	}
	return hadSession, nil
}

func (s *sessionStore) persistLocked(ctx context.Context, credential string, profile UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.store.Save(ctx, storage.Record{Credential: credential, Profile: data}); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// isAuthenticated re-checks credential liveness on every call rather than
// trusting the phase computed at an earlier instant.
func (s *sessionStore) isAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticatedLocked()
}

func (s *sessionStore) authenticatedLocked() bool {
	return s.hydrated && s.credential != "" && token.IsLive(s.credential, s.clock())
}

func (s *sessionStore) currentCredential() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential, s.credential != ""
}

func (s *sessionStore) hydrating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.hydrated
}

func (s *sessionStore) city() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.City
}

func (s *sessionStore) role() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Role
}

// snapshot derives the externally visible phase from current state.
func (s *sessionStore) snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := SessionSnapshot{Profile: s.profile}

	switch {
	case !s.hydrated:
		snap.Phase = PhaseHydrating
	case !s.authenticatedLocked():
		snap.Phase = PhaseAnonymous
		snap.Profile = UserProfile{}
	case s.profile.City == "":
		snap.Phase = PhaseNeedsCity
		snap.Authenticated = true
	default:
		snap.Phase = PhaseActive
		snap.Authenticated = true
	}

	if snap.Authenticated {
		if claims, err := token.Decode(s.credential); err == nil && claims.ExpiresAt != nil {
			snap.ExpiresAt = claims.ExpiresAt.Time
		}
	}
	return snap
}
