// Package pkcs1 implements the signature scheme of the vote definitions with
// RSASSA-PKCS1-v1_5 over a RIPEMD-160 digest. The scheme is deterministic,
// which is a requirement for a detached signature that anyone can re-check
// against the exact published bytes.
//
// Documentation Last Review: 10.02.2025
package pkcs1

import (
	stdcrypto "crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"

	"github.com/neverpanic/mp-vote/crypto"
	"golang.org/x/xerrors"
)

const (
	// Algorithm is the name of the signature scheme.
	Algorithm = "RSASSA-PKCS1-V1_5-RMD160"

	// KeySize is the size in bits of the generated RSA keys.
	KeySize = 2048
)

// publicKey can be provided to verify a definition signature.
//
// - implements crypto.PublicKey
type publicKey struct {
	key *rsa.PublicKey
}

// NewPublicKey returns the public key from PEM-encoded key material, or an
// error when the material does not hold a structurally valid RSA public key.
func NewPublicKey(material []byte) (crypto.PublicKey, error) {
	block, _ := pem.Decode(material)
	if block == nil {
		return nil, xerrors.New("no PEM block found in key material")
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, xerrors.Errorf("while parsing public key: %v", err)
	}

	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, xerrors.Errorf("expected an RSA public key, got '%T'", key)
	}

	return publicKey{key: pub}, nil
}

// Verify implements crypto.PublicKey. It returns nil if the signature matches
// the message under this key, and crypto.ErrSignature in every other case.
func (pk publicKey) Verify(msg []byte, sig []byte) error {
	digest := crypto.NewHashFactory(crypto.Ripemd160).New()
	digest.Write(msg)

	err := rsa.VerifyPKCS1v15(pk.key, stdcrypto.RIPEMD160, digest.Sum(nil), sig)
	if err != nil {
		return crypto.ErrSignature
	}

	return nil
}

// MarshalText implements encoding.TextMarshaler. It returns the PEM encoding
// of the public key.
func (pk publicKey) MarshalText() ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pk.key)
	if err != nil {
		return nil, xerrors.Errorf("couldn't marshal key: %v", err)
	}

	buf := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	return buf, nil
}

// verifier is bound to a single trusted public key.
//
// - implements crypto.Verifier
type verifier struct {
	pubkey crypto.PublicKey
}

// NewVerifier returns a verifier that accepts only messages signed by the
// given trusted key.
func NewVerifier(pubkey crypto.PublicKey) crypto.Verifier {
	return verifier{pubkey: pubkey}
}

// Verify implements crypto.Verifier. It delegates to the trusted key and
// reports nothing more than success or failure.
func (v verifier) Verify(msg []byte, sig []byte) error {
	return v.pubkey.Verify(msg, sig)
}

// signer signs definitions on behalf of a vote authority.
//
// - implements crypto.Signer
type signer struct {
	key *rsa.PrivateKey
}

// NewSigner returns a signer with a freshly generated key pair.
func NewSigner() (crypto.Signer, error) {
	key, err := rsa.GenerateKey(rand.Reader, KeySize)
	if err != nil {
		return nil, xerrors.Errorf("couldn't generate key: %v", err)
	}

	return signer{key: key}, nil
}

// NewSignerFromKey returns a signer using an existing private key.
func NewSignerFromKey(key *rsa.PrivateKey) crypto.Signer {
	return signer{key: key}
}

// GetPublicKey implements crypto.Signer.
func (s signer) GetPublicKey() crypto.PublicKey {
	return publicKey{key: &s.key.PublicKey}
}

// Sign implements crypto.Signer. It produces the detached signature of the
// message, deterministic for a given key and message.
func (s signer) Sign(msg []byte) ([]byte, error) {
	digest := crypto.NewHashFactory(crypto.Ripemd160).New()
	digest.Write(msg)

	sig, err := rsa.SignPKCS1v15(nil, s.key, stdcrypto.RIPEMD160, digest.Sum(nil))
	if err != nil {
		return nil, xerrors.Errorf("couldn't sign: %v", err)
	}

	return sig, nil
}
