// internal/infrastructure/store/store.go
package store

// Preference store keys shared across the application
const (
	KeyUser        = "mediquick_user"
	KeyCart        = "mediquick_cart"
	KeyOrderPrefix = "mediquick_orders:"
	KeyAddrPrefix  = "mediquick_addresses:"
)

// Store is a durable key-value store for opaque JSON blobs: the
// localStorage analog the session, cart, order and address services
// write through to. Values carry no version field; consumers must
// treat absent or malformed values as empty defaults.
type Store interface {
	// Read returns the stored value and whether the key exists.
	Read(key string) ([]byte, bool, error)
	// Write stores the value, replacing any previous one.
	Write(key string, value []byte) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
}
