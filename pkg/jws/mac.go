package jws

import (
	"crypto"
	"crypto/hmac"
	"fmt"
	"hash"

	// Register the SHA-2 hash functions used by the HMAC engines.
	_ "crypto/sha256"
	_ "crypto/sha512"

	"github.com/tgross35/JOSE/pkg/jwa"
)

// Engine is a keyed MAC primitive in progress: it is created for one
// algorithm and key, absorbs message bytes incrementally, and finalizes
// to an opaque tag. An Engine is single-use and not safe for concurrent
// use; each signing or verification call builds its own.
type Engine interface {
	// Write absorbs message bytes. It never returns an error.
	Write(p []byte) (int, error)

	// Sum finalizes the computation and returns the tag.
	Sum() []byte

	// Algorithm returns the algorithm identifier for this engine.
	Algorithm() jwa.Algorithm
}

// algorithm to corresponding hash function
var macHash = map[jwa.Algorithm]crypto.Hash{
	jwa.HS256: crypto.SHA256,
	jwa.HS384: crypto.SHA384,
	jwa.HS512: crypto.SHA512,
}

// NewEngine returns a MAC engine for the given algorithm, keyed with
// the given key.
//
// Non-MAC algorithms (including "none") yield ErrUnknownAlgorithm,
// and an empty key yields ErrKeyLength: keys are never defaulted,
// truncated, or padded.
func NewEngine(alg jwa.Algorithm, key []byte) (Engine, error) {
	h, ok := macHash[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}

	if len(key) == 0 {
		return nil, fmt.Errorf("%w: empty key for %q", ErrKeyLength, alg)
	}

	return &hmacEngine{
		alg: alg,
		mac: hmac.New(h.New, key),
	}, nil
}

// hmacEngine computes HMAC with a SHA-2 function, per RFC 7518
// section 3.2.
type hmacEngine struct {
	alg jwa.Algorithm
	mac hash.Hash
}

func (e *hmacEngine) Write(p []byte) (int, error) {
	return e.mac.Write(p)
}

func (e *hmacEngine) Sum() []byte {
	return e.mac.Sum(nil)
}

func (e *hmacEngine) Algorithm() jwa.Algorithm {
	return e.alg
}

// equalTags compares two MAC tags in constant time.
func equalTags(a, b []byte) bool {
	return hmac.Equal(a, b)
}
