package jws

import "errors"

// Signing errors.
var (
	// ErrKeyLength is returned when the given key is unsuitable for the
	// chosen algorithm. Keys are never truncated or padded to fit.
	ErrKeyLength = errors.New("jws: key length unsuitable for algorithm")

	// ErrAlgParameterReserved is returned when a protected header
	// extension attempts to define the "alg" parameter, which is owned
	// by the envelope.
	ErrAlgParameterReserved = errors.New(`jws: protected header extension must not define "alg"`)
)

// Verification errors.
var (
	// ErrSignatureMismatch is returned when the recomputed tag differs
	// from the stored one. No byte-level detail is reported.
	ErrSignatureMismatch = errors.New("jws: signature mismatch")

	// ErrUnknownAlgorithm is returned when the envelope names an
	// algorithm the implementation does not support. Verification
	// fails closed rather than falling back to unsigned acceptance.
	ErrUnknownAlgorithm = errors.New("jws: unknown or unsupported algorithm")
)

// Serialization errors.
var (
	// ErrUnprotectedNotSupported is returned when an envelope carrying
	// unprotected header data is adapted to the compact serialization,
	// which admits only protected header data.
	ErrUnprotectedNotSupported = errors.New("jws: compact serialization does not support unprotected headers")

	// ErrMissingSignature is returned when a decoded envelope names a
	// real algorithm but carries no signature value.
	ErrMissingSignature = errors.New("jws: missing signature for signing algorithm")
)
