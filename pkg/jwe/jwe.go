// Package jwe declares the JSON Web Encryption data model of RFC 7516:
// the header parameter names and the encrypted-message container.
// Encryption and key management operations are out of scope; the
// records exist so that JOSE consumers can carry JWE messages through
// the same header machinery as JWS envelopes.
//
// https://datatracker.ietf.org/doc/html/rfc7516
package jwe

import (
	"github.com/tgross35/JOSE/pkg/header"
)

// Header is a JSON object containing the parameters describing the
// encryption operations and parameters employed.
type Header = header.Parameters

// Registered JWE Header Parameter Names
//
// https://www.rfc-editor.org/rfc/rfc7516.html#section-4.1
const (
	Algorithm                       header.ParameterName = "alg"
	EncryptionAlgorithm             header.ParameterName = "enc"
	CompressionAlgorithm            header.ParameterName = "zip"
	JWKSetURL                       header.ParameterName = "jku"
	JSONWebKey                      header.ParameterName = "jwk"
	KeyID                           header.ParameterName = "kid"
	X509URL                         header.ParameterName = "x5u"
	X509CertificateChain            header.ParameterName = "x5c"
	X509CertificateSHA1Thumbprint   header.ParameterName = "x5t"
	X509CertificateSHA256Thumbprint header.ParameterName = "x5t#S256"
	Type                            header.ParameterName = "typ"
	ContentType                     header.ParameterName = "cty"
	Critical                        header.ParameterName = "crit"
)

// Message is an encrypted and integrity-protected message in the JWE
// JSON serialization. All binary fields hold unpadded base64url
// strings, exactly as they appear on the wire.
//
// https://datatracker.ietf.org/doc/html/rfc7516#section-7.2.2
type Message struct {
	// Protected is the integrity-protected header, base64url encoded.
	Protected string `json:"protected,omitempty"`

	// Unprotected holds header parameters that are shared by all
	// recipients but not integrity protected.
	Unprotected Header `json:"unprotected,omitempty"`

	// Header holds per-recipient header parameters, not integrity
	// protected.
	Header Header `json:"header,omitempty"`

	// EncryptedKey is the encrypted Content Encryption Key value. For
	// some key-management algorithms this is the empty octet sequence.
	EncryptedKey string `json:"encrypted_key,omitempty"`

	// InitVector is the initialization vector used when encrypting the
	// plaintext. Some algorithms do not use one.
	InitVector string `json:"iv,omitempty"`

	// AAD is additional data integrity protected by the authenticated
	// encryption operation, beyond the protected header.
	AAD string `json:"aad,omitempty"`

	// Ciphertext is the result of authenticated encryption of the
	// plaintext.
	Ciphertext string `json:"ciphertext"`

	// AuthTag is the authentication tag produced by the authenticated
	// encryption operation.
	AuthTag string `json:"tag,omitempty"`
}
