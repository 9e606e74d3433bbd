// internal/domain/session/service.go
package session

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/S-Khan786/Medicine-Mart-App/internal/infrastructure/store"
	"github.com/sirupsen/logrus"
)

// User represents the current signed-in customer
type User struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// Validate applies the signup form's client-side checks
func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !phonePattern.MatchString(u.Phone) {
		return fmt.Errorf("phone number must be 10 digits")
	}
	return nil
}

// Service holds the auth session: Anonymous or Authenticated, with at
// most one current user, mirrored into the preference store. There is
// no server credential check and no token expiry at this level; this
// is the client-convenience session of the storefront.
type Service struct {
	mu     sync.RWMutex
	store  store.Store
	logger *logrus.Logger
	user   *User
}

// NewService creates the session service and hydrates it from the
// store. A missing or malformed stored user yields the Anonymous
// state; hydration failures are logged, never surfaced.
func NewService(st store.Store, logger *logrus.Logger) *Service {
	s := &Service{store: st, logger: logger}
	s.hydrate()
	return s
}

func (s *Service) hydrate() {
	data, ok, err := s.store.Read(store.KeyUser)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read stored user, starting anonymous")
		return
	}
	if !ok {
		return
	}

	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		s.logger.WithError(err).Warn("Malformed stored user, starting anonymous")
		return
	}

	s.user = &u
}

// Login transitions to Authenticated, overwriting any existing user,
// and writes the user through to the store. It accepts any user
// value; field validation is the signup form's concern and happens
// before this is called.
func (s *Service) Login(u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &u

	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := s.store.Write(store.KeyUser, data); err != nil {
		s.logger.WithError(err).Error("Failed to persist user")
	}

	s.logger.WithField("phone", u.Phone).Info("User logged in")
	return nil
}

// Logout transitions to Anonymous and removes the stored user
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.store.Remove(store.KeyUser); err != nil {
		s.logger.WithError(err).Error("Failed to remove stored user")
	}
}

// Current returns the signed-in user, if any
func (s *Service) Current() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a user is signed in
func (s *Service) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}
