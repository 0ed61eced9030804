// Package crypto defines the cryptographic primitives used to authenticate a
// vote definition before it is parsed. A definition is signed with a detached
// signature that the client checks against a single pinned public key; the
// abstractions here keep the hash algorithm and the signature scheme behind
// interfaces so that the verification call sites stay agnostic of both.
//
// Documentation Last Review: 10.02.2025
package crypto

import (
	"encoding"
	"hash"

	"golang.org/x/xerrors"
)

// ErrSignature is the single outcome of a failed verification. It carries no
// detail on purpose: the caller must not be able to tell a malformed signature
// from a tampered message or a wrong key.
var ErrSignature = xerrors.New("document is not correctly signed")

// HashFactory is an interface to produce a hash digest.
type HashFactory interface {
	New() hash.Hash
}

// PublicKey is a public identity that can be used to verify a signature.
type PublicKey interface {
	encoding.TextMarshaler

	// Verify returns nil if the signature matches the message under this
	// key, and ErrSignature in every other case.
	Verify(msg []byte, sig []byte) error
}

// Verifier provides the primitive to verify a detached signature w.r.t. a
// message. Implementations are bound to a key and a hash algorithm at
// construction time.
type Verifier interface {
	Verify(msg []byte, sig []byte) error
}

// Signer provides the primitives to sign a message so that it can later be
// checked by the matching Verifier. The voting client itself only verifies;
// the signer is the tooling used by a vote authority to publish definitions.
type Signer interface {
	GetPublicKey() PublicKey

	Sign(msg []byte) ([]byte, error)
}
