//
// Documentation Last Review: 10.02.2025
//

package crypto

import (
	"crypto/sha256"
	"hash"

	"golang.org/x/crypto/ripemd160"
)

type HashAlgorithm int

const (
	// Ripemd160 is the algorithm the definition signature scheme digests
	// with. The signature file suffix on the wire refers to it.
	Ripemd160 HashAlgorithm = iota
	Sha256
)

// hashFactory is a hash factory bound to a fixed algorithm.
//
// - implements crypto.HashFactory
type hashFactory struct {
	hashType HashAlgorithm
}

// NewHashFactory returns a new instance of the factory.
func NewHashFactory(a HashAlgorithm) hashFactory {
	return hashFactory{a}
}

// New implements crypto.HashFactory. It returns a new Hash instance.
func (f hashFactory) New() hash.Hash {
	switch f.hashType {
	case Ripemd160:
		return ripemd160.New()
	case Sha256:
		return sha256.New()
	default:
		panic("unknown hash type")
	}
}
