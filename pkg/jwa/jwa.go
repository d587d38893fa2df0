// Package jwa enumerates the registered JSON Web Algorithm identifiers
// defined in RFC 7518, used for the JWS and JWE "alg" header parameter.
package jwa

import (
	"golang.org/x/exp/slices"
)

// Algorithm is a registered algorithm identifier, used both as a wire
// string and as a dispatch key.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.1
type Algorithm string

// String returns the identifier as registered in the IANA "JSON Web
// Signature and Encryption Algorithms" registry.
func (a Algorithm) String() string {
	return string(a)
}

// HMAC with SHA-2 Functions
//
// These algorithms are used to construct a MAC using a shared secret
// and the Hash-based Message Authentication Code (HMAC) construction
// [RFC2104] employing SHA-2 [SHS] hash functions.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.2
const (
	HS256 Algorithm = "HS256"
	HS384 Algorithm = "HS384"
	HS512 Algorithm = "HS512"
)

// RSASSA-PKCS1-v1_5
//
// These algorithms are used to digitally sign a JWS and produce a
// JWS Signature using PKCS #1 v1.5 methods.
//
// # RSA Key Size
//
// A key of size 2048 bits or larger MUST be used with these algorithms.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.3
const (
	RS256 Algorithm = "RS256"
	RS384 Algorithm = "RS384"
	RS512 Algorithm = "RS512"
)

// ECDSA
//
// These algorithms are used to digitally sign a JWS and produce a
// JWS Signature using ECDSA algorithms.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.4
const (
	ES256 Algorithm = "ES256"
	ES384 Algorithm = "ES384"
	ES512 Algorithm = "ES512"
)

// RSASSA-PSS
//
// These algorithms are used to digitally sign a JWS and produce a
// JWS Signature using the RSASSA-PSS algorithms.
//
// # RSA Key Size
//
// A key of size 2048 bits or larger MUST be used with these algorithms.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.5
const (
	PS256 Algorithm = "PS256"
	PS384 Algorithm = "PS384"
	PS512 Algorithm = "PS512"
)

// No signature or MAC performed (unprotected JWS). This algorithm is
// intended to be used to create a JWS that is not integrity protected.
//
// # Warning
//
// The use of this algorithm is considered dangerous. Do NOT use this
// algorithm, it's only implemented for completeness.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.6
const None Algorithm = "none"

// Registered by other specifications (secp256k1 per RFC 8812,
// EdDSA per RFC 8037).
const (
	ES256K Algorithm = "ES256K"
	EdDSA  Algorithm = "EdDSA"
)

// Symmetric reports whether the algorithm uses a shared secret key.
func (a Algorithm) Symmetric() bool {
	switch a {
	case HS256, HS384, HS512:
		return true
	}
	return false
}

// MAC reports whether the algorithm produces a message authentication
// code rather than a digital signature.
func (a Algorithm) MAC() bool {
	return a.Symmetric()
}

// AllowedAlgorithms is a set of algorithms that are allowed to be used
// for an operation, typically signature verification.
type AllowedAlgorithms map[Algorithm]struct{}

// NewAllowedAlgorithms returns the allow-set containing exactly the
// given algorithms.
func NewAllowedAlgorithms(algs ...Algorithm) AllowedAlgorithms {
	set := make(AllowedAlgorithms, len(algs))
	for _, alg := range algs {
		set[alg] = struct{}{}
	}
	return set
}

// List returns the algorithms in the set, in sorted order.
func (a AllowedAlgorithms) List() []Algorithm {
	list := make([]Algorithm, 0, len(a))
	for alg := range a {
		list = append(list, alg)
	}
	slices.Sort(list)
	return list
}

// Allowed reports whether every given algorithm is in the set.
// Calling it with no arguments reports false.
func (a AllowedAlgorithms) Allowed(algs ...Algorithm) bool {
	if len(algs) == 0 {
		return false
	}
	for _, alg := range algs {
		if _, ok := a[alg]; !ok {
			return false
		}
	}
	return true
}

// DefaultAllowedAlgorithms returns the algorithms that are allowed to
// be used when a caller does not configure an explicit allow-set.
func DefaultAllowedAlgorithms() AllowedAlgorithms {
	return NewAllowedAlgorithms(RS256, ES256)
}
