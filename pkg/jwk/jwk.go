// Package jwk implements the JSON Web Key data model of RFC 7517: typed
// records for elliptic-curve, RSA, octet-sequence, and octet key pair
// keys, together with the common key parameters. The package carries no
// cryptographic operations of its own; consumers obtain raw key
// material from a record and hand it to an algorithm implementation.
//
// https://datatracker.ietf.org/doc/html/rfc7517
package jwk

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tgross35/JOSE/pkg/base64"
	"github.com/tgross35/JOSE/pkg/jwa"
)

// KeyType is the "kty" parameter value identifying the cryptographic
// algorithm family used with the key.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-6.1
type KeyType string

const (
	// TypeEC is an Elliptic Curve key.
	TypeEC KeyType = "EC"

	// TypeRSA is an RSA key.
	TypeRSA KeyType = "RSA"

	// TypeOctet is an octet sequence, used to represent symmetric keys.
	TypeOctet KeyType = "oct"

	// TypeOKP is an octet key pair, used by EdDSA (RFC 8037).
	TypeOKP KeyType = "OKP"
)

// Curve is the "crv" parameter value identifying the curve of an EC or
// OKP key.
type Curve string

const (
	CurveP256      Curve = "P-256"
	CurveP384      Curve = "P-384"
	CurveP521      Curve = "P-521"
	CurveSecp256k1 Curve = "secp256k1"
	CurveEd25519   Curve = "Ed25519"
	CurveX25519    Curve = "X25519"
)

// Use is the "use" parameter value identifying the intended use of a
// public key.
//
// https://datatracker.ietf.org/doc/html/rfc7517#section-4.2
type Use string

const (
	UseSignature  Use = "sig"
	UseEncryption Use = "enc"
)

var (
	// ErrInvalidKey is returned when a key record is missing required
	// parameters for its type, or holds malformed values.
	ErrInvalidKey = errors.New("jwk: invalid key")

	// ErrNotSymmetric is returned when symmetric key material is
	// requested from a non-octet key.
	ErrNotSymmetric = errors.New("jwk: key is not a symmetric key")
)

// Key is a JSON Web Key record. The key type selects which parameter
// fields are meaningful; unused fields are omitted from the JSON form.
//
// All binary parameters hold unpadded base64url strings, exactly as
// they appear on the wire.
type Key struct {
	// KeyType identifies the algorithm family. Required.
	KeyType KeyType `json:"kty"`

	// Common parameters.
	// https://datatracker.ietf.org/doc/html/rfc7517#section-4
	Algorithm     jwa.Algorithm `json:"alg,omitempty"`
	KeyID         string        `json:"kid,omitempty"`
	Use           Use           `json:"use,omitempty"`
	KeyOperations []string      `json:"key_ops,omitempty"`

	// X.509 parameters.
	X509URL              string   `json:"x5u,omitempty"`
	X509CertificateChain []string `json:"x5c,omitempty"`
	X509SHA1Thumbprint   string   `json:"x5t,omitempty"`
	X509SHA256Thumbprint string   `json:"x5t#S256,omitempty"`

	// EC and OKP parameters.
	Curve Curve  `json:"crv,omitempty"`
	X     string `json:"x,omitempty"`
	Y     string `json:"y,omitempty"`

	// D is the private key value for EC, OKP, and RSA keys.
	D string `json:"d,omitempty"`

	// RSA parameters.
	N   string       `json:"n,omitempty"`
	E   string       `json:"e,omitempty"`
	P   string       `json:"p,omitempty"`
	Q   string       `json:"q,omitempty"`
	DP  string       `json:"dp,omitempty"`
	DQ  string       `json:"dq,omitempty"`
	QI  string       `json:"qi,omitempty"`
	Oth []OtherPrime `json:"oth,omitempty"`

	// Octet sequence parameter.
	K string `json:"k,omitempty"`
}

// OtherPrime is an additional RSA prime, per RFC 7518 section 6.3.2.7.
type OtherPrime struct {
	R string `json:"r"`
	D string `json:"d"`
	T string `json:"t"`
}

// NewSymmetric returns an octet-sequence key holding the given raw key
// bytes, with a freshly generated key ID.
func NewSymmetric(key []byte) Key {
	return Key{
		KeyType: TypeOctet,
		KeyID:   NewKeyID(),
		K:       base64.Encode(key),
	}
}

// NewKeyID generates a random key identifier. Deterministic,
// content-derived identifiers are available via the thumbprint
// subpackage.
func NewKeyID() string {
	return uuid.NewString()
}

// Validate checks that the required parameters for the record's key
// type are present and well formed.
//
// https://datatracker.ietf.org/doc/html/rfc7517#section-4
func (k Key) Validate() error {
	switch k.KeyType {
	case TypeEC:
		switch k.Curve {
		case CurveP256, CurveP384, CurveP521, CurveSecp256k1:
		case "":
			return fmt.Errorf("%w: missing required parameter %q", ErrInvalidKey, "crv")
		default:
			return fmt.Errorf("%w: invalid curve %q", ErrInvalidKey, k.Curve)
		}
		if err := requireBase64(map[string]string{"x": k.X, "y": k.Y}); err != nil {
			return err
		}
	case TypeOKP:
		switch k.Curve {
		case CurveEd25519, CurveX25519:
		case "":
			return fmt.Errorf("%w: missing required parameter %q", ErrInvalidKey, "crv")
		default:
			return fmt.Errorf("%w: invalid curve %q", ErrInvalidKey, k.Curve)
		}
		if err := requireBase64(map[string]string{"x": k.X}); err != nil {
			return err
		}
	case TypeRSA:
		if err := requireBase64(map[string]string{"n": k.N, "e": k.E}); err != nil {
			return err
		}
	case TypeOctet:
		if err := requireBase64(map[string]string{"k": k.K}); err != nil {
			return err
		}
	case "":
		return fmt.Errorf("%w: missing required parameter %q", ErrInvalidKey, "kty")
	default:
		return fmt.Errorf("%w: unknown key type %q", ErrInvalidKey, k.KeyType)
	}

	return nil
}

func requireBase64(params map[string]string) error {
	for name, value := range params {
		if value == "" {
			return fmt.Errorf("%w: missing required parameter %q", ErrInvalidKey, name)
		}
		if _, err := base64.Decode(value); err != nil {
			return fmt.Errorf("%w: invalid base64 encoding for %q: %v", ErrInvalidKey, name, err)
		}
	}
	return nil
}

// Private reports whether the record carries private key material.
func (k Key) Private() bool {
	switch k.KeyType {
	case TypeOctet:
		return true
	default:
		return k.D != ""
	}
}

// Public returns a copy of the record with all private parameters
// removed. Octet-sequence keys have no public form and are returned
// unchanged; callers must not publish them.
func (k Key) Public() Key {
	pub := k
	pub.D = ""
	pub.P = ""
	pub.Q = ""
	pub.DP = ""
	pub.DQ = ""
	pub.QI = ""
	pub.Oth = nil
	return pub
}

// SymmetricKey returns the raw key bytes of an octet-sequence key,
// suitable for use with a MAC algorithm.
func (k Key) SymmetricKey() ([]byte, error) {
	if k.KeyType != TypeOctet {
		return nil, fmt.Errorf("%w: type is %q", ErrNotSymmetric, k.KeyType)
	}

	b, err := base64.Decode(k.K)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 encoding for %q: %v", ErrInvalidKey, "k", err)
	}
	return b, nil
}
