// Package storage provides the durable key-value stores backing the profile.
// The contract mirrors browser local storage: a flat namespace of string keys
// owning opaque byte values, where each Get/Set is atomic from the caller's
// perspective.
package storage

// KV is a durable key-value store.
type KV interface {
	// Get returns the value for key. The second return is false when the key
	// does not exist; that is not an error.
	Get(key string) ([]byte, bool, error)
	// Set writes the value for key, replacing any previous value.
	Set(key string, value []byte) error
	// Delete removes the key. Deleting a missing key is a no-op.
	Delete(key string) error
}
