// Package jws implements the JSON Web Signature envelope defined in
// RFC 7515: a protected header, an optional unprotected header, and a
// MAC value computed over the base64url forms of the protected header
// and the payload.
//
// The signed/unsigned distinction is carried in the type system. An
// Unsigned envelope is built with NewUnsigned and has no signature; the
// only way to obtain a Signed envelope is Unsigned.Sign (or decoding a
// wire form, which asserts nothing until Verify is called). A Signed
// envelope cannot be edited; Unsign returns it to the unsigned state,
// dropping the signature and resetting the algorithm to "none".
//
// The envelope does not own the payload: callers pass payload bytes to
// Sign, Verify, and the compact serialization, matching the outer
// message type (e.g. a JWT) that composes header + payload + signature.
//
// https://datatracker.ietf.org/doc/html/rfc7515
package jws

import (
	"fmt"

	"github.com/tgross35/JOSE/pkg/base64"
	"github.com/tgross35/JOSE/pkg/header"
	"github.com/tgross35/JOSE/pkg/jwa"
)

// Envelope is implemented by exactly the two envelope states, Unsigned
// and Signed. The interface is sealed so that no third state can be
// introduced from outside the package.
type Envelope interface {
	// Protected returns the protected header value.
	Protected() Protected

	// Header returns the unprotected header parameters, which are
	// never covered by the signature.
	Header() header.Parameters

	envelope()
}

// Unsigned is an envelope that has no valid signature. Its algorithm
// is always "none".
type Unsigned struct {
	protected   Protected
	unprotected header.Parameters
}

// NewUnsigned constructs an unsigned envelope from caller-supplied
// protected header extension parameters and unprotected header
// parameters. Either may be nil.
func NewUnsigned(extension header.Parameters, unprotected header.Parameters) *Unsigned {
	if len(extension) == 0 {
		extension = nil
	}
	if len(unprotected) == 0 {
		unprotected = nil
	}
	return &Unsigned{
		protected: Protected{
			Algorithm: jwa.None,
			Extra:     extension,
		},
		unprotected: unprotected,
	}
}

// Protected returns the protected header value. The algorithm is
// always jwa.None for an unsigned envelope.
func (u *Unsigned) Protected() Protected {
	return u.protected
}

// Header returns the unprotected header parameters.
func (u *Unsigned) Header() header.Parameters {
	return u.unprotected
}

func (u *Unsigned) envelope() {}

// Sign produces a signed envelope from an unsigned one. The input is
// not mutated.
//
// The signing input is built exactly as RFC 7515 section 5.1 requires:
// the protected header, with "alg" set to the given algorithm, is
// serialized to its canonical bytes and base64url encoded; the payload
// is base64url encoded; and the MAC is computed over the two encoded
// values joined by a single "." octet. The signed envelope retains the
// encoded protected header so the wire form is byte-for-byte the value
// that was MACed.
//
// Errors: ErrKeyLength if the key is unsuitable for the algorithm,
// ErrUnknownAlgorithm if the algorithm is not a supported MAC, and
// serialization failures (including ErrAlgParameterReserved) if the
// header cannot be canonicalized.
func (u *Unsigned) Sign(alg jwa.Algorithm, key []byte, payload []byte) (*Signed, error) {
	protected := Protected{
		Algorithm: alg,
		Extra:     u.protected.Extra,
	}

	encoded, err := protected.Encode()
	if err != nil {
		return nil, fmt.Errorf("failed to encode protected header: %w", err)
	}

	engine, err := NewEngine(alg, key)
	if err != nil {
		return nil, err
	}

	engine.Write([]byte(encoded))
	engine.Write([]byte{'.'})
	engine.Write([]byte(base64.Encode(payload)))

	return &Signed{
		protected:   protected,
		encoded:     encoded,
		unprotected: u.unprotected,
		signature:   engine.Sum(),
	}, nil
}

// Signed is an envelope whose signature value was computed over its
// protected header and a payload. It is immutable: the only transition
// out of the signed state is Unsign.
type Signed struct {
	protected Protected

	// encoded is the base64url protected header exactly as it was
	// absorbed by the MAC engine. Serialization reuses these bytes
	// rather than re-deriving them.
	encoded string

	unprotected header.Parameters
	signature   []byte
}

// Protected returns the protected header value.
func (s *Signed) Protected() Protected {
	return s.protected
}

// Header returns the unprotected header parameters.
func (s *Signed) Header() header.Parameters {
	return s.unprotected
}

// Algorithm returns the algorithm that produced the signature value.
func (s *Signed) Algorithm() jwa.Algorithm {
	return s.protected.Algorithm
}

// EncodedProtected returns the base64url protected header segment that
// the signature covers.
func (s *Signed) EncodedProtected() string {
	return s.encoded
}

// Signature returns a copy of the signature value.
func (s *Signed) Signature() []byte {
	sig := make([]byte, len(s.signature))
	copy(sig, s.signature)
	return sig
}

func (s *Signed) envelope() {}

// Unsign discards the signature and returns the envelope to the
// unsigned state, resetting the algorithm to "none". It never fails.
func (s *Signed) Unsign() *Unsigned {
	return NewUnsigned(s.protected.Extra, s.unprotected)
}

// Verify recomputes the MAC over the envelope's own protected header
// segment and the given payload, using the algorithm recorded in the
// protected header, and compares it to the stored signature value in
// constant time.
//
// A mismatch yields ErrSignatureMismatch. An algorithm this
// implementation does not support, including "none", yields
// ErrUnknownAlgorithm: verification fails closed.
func (s *Signed) Verify(key []byte, payload []byte) error {
	engine, err := NewEngine(s.protected.Algorithm, key)
	if err != nil {
		return err
	}

	engine.Write([]byte(s.encoded))
	engine.Write([]byte{'.'})
	engine.Write([]byte(base64.Encode(payload)))

	if !equalTags(engine.Sum(), s.signature) {
		return ErrSignatureMismatch
	}

	return nil
}

// VerifyAllowed is Verify restricted to an allow-set of algorithms:
// an envelope whose recorded algorithm is outside the set is rejected
// before any MAC computation.
func (s *Signed) VerifyAllowed(key []byte, payload []byte, allowed jwa.AllowedAlgorithms) error {
	if !allowed.Allowed(s.protected.Algorithm) {
		return fmt.Errorf("%w: %q is not allowed", ErrUnknownAlgorithm, s.protected.Algorithm)
	}
	return s.Verify(key, payload)
}
