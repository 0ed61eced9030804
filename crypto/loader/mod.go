// Package loader defines an abstraction to load the pinned trusted key
// material from a persistent storage. The trusted key is the root of the
// client's trust in remote definitions, so the loader only ever reads: a
// missing or unreadable key means the client installation is broken and there
// is nothing sensible to generate in its place.
//
// Documentation Last Review: 10.02.2025
package loader

// Loader is an abstraction to load key material from a storage, for instance
// the trusted public key from the disk.
type Loader interface {
	// Load returns the key material, or an error when it cannot be read.
	Load() ([]byte, error)
}
