// internal/domain/address/service.go
package address

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/S-Khan786/Medicine-Mart-App/internal/infrastructure/store"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned when an address id does not exist
var ErrNotFound = errors.New("address not found")

// Service manages the per-user address book, mirrored into the
// preference store
type Service struct {
	mu     sync.Mutex
	store  store.Store
	logger *logrus.Logger
}

// NewService creates a new address service
func NewService(st store.Store, logger *logrus.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// List returns the user's saved addresses
func (s *Service) List(phone string) []Address {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(phone)
}

// Create validates and saves a new address. The first address, or one
// marked default, becomes the user's default; only one default exists
// at a time.
func (s *Service) Create(phone string, addr Address) (Address, error) {
	if errs := addr.Validate(); errs != nil {
		return Address{}, errs
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.load(phone)

	addr.ID = uuid.New().String()
	if len(book) == 0 {
		addr.IsDefault = true
	}
	if addr.IsDefault {
		clearDefault(book)
	}

	book = append(book, addr)
	s.save(phone, book)
	return addr, nil
}

// Update validates and replaces an existing address
func (s *Service) Update(phone, id string, addr Address) (Address, error) {
	if errs := addr.Validate(); errs != nil {
		return Address{}, errs
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.load(phone)
	for i := range book {
		if book[i].ID != id {
			continue
		}

		addr.ID = id
		if addr.IsDefault {
			clearDefault(book)
		}
		book[i] = addr
		s.save(phone, book)
		return addr, nil
	}

	return Address{}, ErrNotFound
}

// Delete removes an address. Deleting the default promotes the first
// remaining address.
func (s *Service) Delete(phone, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.load(phone)
	for i := range book {
		if book[i].ID != id {
			continue
		}

		wasDefault := book[i].IsDefault
		book = append(book[:i], book[i+1:]...)
		if wasDefault && len(book) > 0 {
			book[0].IsDefault = true
		}
		s.save(phone, book)
		return nil
	}

	return ErrNotFound
}

// load reads the stored book; absent or malformed values yield an
// empty book, logged only. Caller holds the lock.
func (s *Service) load(phone string) []Address {
	data, ok, err := s.store.Read(store.KeyAddrPrefix + phone)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read address book")
		return nil
	}
	if !ok {
		return nil
	}

	var book []Address
	if err := json.Unmarshal(data, &book); err != nil {
		s.logger.WithError(err).Warn("Malformed address book, treating as empty")
		return nil
	}
	return book
}

// save persists the book. Caller holds the lock.
func (s *Service) save(phone string, book []Address) {
	data, err := json.Marshal(book)
	if err != nil {
		s.logger.WithError(err).Error("Failed to encode address book")
		return
	}
	if err := s.store.Write(store.KeyAddrPrefix+phone, data); err != nil {
		s.logger.WithError(err).Error("Failed to persist address book")
	}
}

func clearDefault(book []Address) {
	for i := range book {
		book[i].IsDefault = false
	}
}
