package kv

// Store defines the interface for durable key-value persistence.
type Store interface {
	// Get retrieves the value for a key. The boolean reports presence;
	// absent keys are not errors.
	Get(key string) (string, bool, error)

	// Set stores a value under a key, replacing any previous value.
	Set(key, value string) error

	// Delete removes a key. Deleting an absent key is a no-op.
	Delete(key string) error

	// Close releases any resources held by the store.
	Close() error
}
