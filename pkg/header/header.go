package header

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tgross35/JOSE/pkg/base64"
	"github.com/tgross35/JOSE/pkg/jwa"
)

// There are three classes of Header Parameter names: Registered Header
// Parameter names, Public Header Parameter names, and Private Header
// Parameter names.
//
// https://datatracker.ietf.org/doc/html/rfc7515#section-4
type (
	ParameterName = string

	Registered = ParameterName
	Public     = ParameterName
	Private    = ParameterName
)

// Registered Header Parameter Names
//
// https://datatracker.ietf.org/doc/html/rfc7515#section-4.1
const (
	Type                            Registered = "typ"
	Algorithm                       Registered = "alg"
	JWKSetURL                       Registered = "jku"
	JSONWebKey                      Registered = "jwk"
	KeyID                           Registered = "kid"
	X509URL                         Registered = "x5u"
	X509CertificateChain            Registered = "x5c"
	X509CertificateSHA1Thumbprint   Registered = "x5t"
	X509CertificateSHA256Thumbprint Registered = "x5t#S256"
	ContentType                     Registered = "cty"
	Critical                        Registered = "crit"
)

const TypeJWT = "JWT"

var (
	// ErrParameterNotFound is returned when a requested parameter is
	// not present in the header.
	ErrParameterNotFound = errors.New("header: parameter not found")

	// ErrInvalidParameterType is returned when a parameter is present
	// but holds a value of an unexpected type.
	ErrInvalidParameterType = errors.New("header: invalid parameter type")
)

// Parameters is a JSON object containing the parameters describing
// the cryptographic operations and parameters employed.
//
// The JOSE (JSON Object Signing and Encryption) Header is comprised
// of a set of Header Parameters.
type Parameters map[ParameterName]any

// MarshalBytes returns the exact JSON byte representation of the
// parameters, with member names in sorted order and no surrounding
// whitespace or trailing newline.
func (h Parameters) MarshalBytes() ([]byte, error) {
	b, err := json.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JOSE header JSON: %w", err)
	}
	return b, nil
}

// Base64URLString returns the unpadded base64url form of the header's
// JSON byte representation.
func (h Parameters) Base64URLString() (string, error) {
	b, err := h.MarshalBytes()
	if err != nil {
		return "", fmt.Errorf("failed to encode JOSE header base64 URL string: %w", err)
	}
	return base64.Encode(b), nil
}

// Type returns the "typ" parameter value, or an error if it is absent
// or not a string.
func (h Parameters) Type() (string, error) {
	value, ok := h[Type]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrParameterNotFound, Type)
	}
	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is %T, not a string", ErrInvalidParameterType, Type, value)
	}
	return strValue, nil
}

// Algorithm returns the "alg" parameter value, or an error if it is
// absent or not a string-like algorithm identifier.
func (h Parameters) Algorithm() (jwa.Algorithm, error) {
	value, ok := h[Algorithm]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrParameterNotFound, Algorithm)
	}

	switch v := value.(type) {
	case jwa.Algorithm:
		return v, nil
	case string:
		return jwa.Algorithm(v), nil
	}

	return "", fmt.Errorf("%w: %q is %T, not an algorithm", ErrInvalidParameterType, Algorithm, value)
}

// Get returns the value of the given parameter, or an error if it is
// not present.
func (h Parameters) Get(param ParameterName) (any, error) {
	value, ok := h[param]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParameterNotFound, param)
	}
	return value, nil
}
