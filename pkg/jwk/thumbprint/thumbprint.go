// Package thumbprint computes JWK Thumbprints as defined in RFC 7638,
// the content-derived digest commonly used as a key identifier.
package thumbprint

import (
	"bytes"
	"crypto"
	"errors"
	"fmt"

	// Default hash used for thumbprints.
	_ "crypto/sha256"

	"github.com/tgross35/JOSE/pkg/base64"
	"github.com/tgross35/JOSE/pkg/jwk"
)

var ErrInvalidKey = errors.New("thumbprint: invalid key")

// requiredMembers returns the required JWK members for the key's type,
// already ordered lexicographically by member name as RFC 7638 (and
// RFC 8037 section 2 for OKP) requires.
func requiredMembers(key jwk.Key) ([][2]string, error) {
	switch key.KeyType {
	case jwk.TypeEC:
		return [][2]string{
			{"crv", string(key.Curve)},
			{"kty", string(key.KeyType)},
			{"x", key.X},
			{"y", key.Y},
		}, nil
	case jwk.TypeRSA:
		return [][2]string{
			{"e", key.E},
			{"kty", string(key.KeyType)},
			{"n", key.N},
		}, nil
	case jwk.TypeOctet:
		return [][2]string{
			{"k", key.K},
			{"kty", string(key.KeyType)},
		}, nil
	case jwk.TypeOKP:
		return [][2]string{
			{"crv", string(key.Curve)},
			{"kty", string(key.KeyType)},
			{"x", key.X},
		}, nil
	}

	return nil, fmt.Errorf("%w: unknown key type %q", ErrInvalidKey, key.KeyType)
}

// Generate returns the JWK Thumbprint for the given key following the
// steps defined in RFC 7638.
func Generate(key jwk.Key, h crypto.Hash) ([]byte, error) {
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	members, err := requiredMembers(key)
	if err != nil {
		return nil, err
	}

	// 1. Construct a JSON object containing only the required members,
	// with no whitespace or line breaks before or after any syntactic
	// elements and with the members ordered lexicographically by name.
	//
	// The member values are base64url strings or registered constants,
	// so they can be written without escaping.
	b := bytes.NewBuffer(nil)
	b.WriteByte('{')
	for i, member := range members {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(b, "%q:%q", member[0], member[1])
	}
	b.WriteByte('}')

	// 2. Hash the octets of the UTF-8 representation of this JSON
	// object with a cryptographic hash function H. SHA-256 is used
	// when none is specified.
	if h == 0 {
		h = crypto.SHA256
	}

	hash := h.New()
	hash.Write(b.Bytes())

	return hash.Sum(nil), nil
}

// GenerateString returns the JWK Thumbprint for the given key following
// the steps defined in RFC 7638 as an unpadded base64url string, the
// form used for "kid" values.
func GenerateString(key jwk.Key, h crypto.Hash) (string, error) {
	tp, err := Generate(key, h)
	if err != nil {
		return "", err
	}

	return base64.Encode(tp), nil
}
