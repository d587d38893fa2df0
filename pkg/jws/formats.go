package jws

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tgross35/JOSE/pkg/base64"
	"github.com/tgross35/JOSE/pkg/header"
	"github.com/tgross35/JOSE/pkg/jwa"
)

// Format is one of the serializations registered by RFC 7515. The
// interface is sealed: Compact and Flat are the only implementations,
// so downstream code cannot introduce an unregistered wire shape.
//
// The General (multi-signature) JSON serialization is intentionally
// not implemented.
type Format interface {
	format()
}

// Compact is the compact serialization: the single string
//
//	BASE64URL(protected header) "." BASE64URL(payload) "." BASE64URL(signature)
//
// It represents a single signature and admits no unprotected header
// data. The signature segment is empty for an unsigned envelope.
//
// https://datatracker.ietf.org/doc/html/rfc7515#section-7.1
type Compact struct{}

func (Compact) format() {}

// Encode serializes the envelope and payload to the compact form.
// Envelopes carrying unprotected header data yield
// ErrUnprotectedNotSupported.
func (Compact) Encode(env Envelope, payload []byte) (string, error) {
	if len(env.Header()) > 0 {
		return "", ErrUnprotectedNotSupported
	}

	var encoded, sig string
	switch e := env.(type) {
	case *Signed:
		encoded = e.encoded
		sig = base64.Encode(e.signature)
	case *Unsigned:
		var err error
		encoded, err = e.protected.Encode()
		if err != nil {
			return "", fmt.Errorf("failed to encode protected header: %w", err)
		}
	}

	return encoded + "." + base64.Encode(payload) + "." + sig, nil
}

// Decode parses a compact serialization into an envelope and the raw
// payload bytes. No cryptographic verification is performed; callers
// must invoke Verify explicitly before trusting the result.
func (Compact) Decode(input string) (Envelope, []byte, error) {
	parts := strings.Split(input, ".")
	if len(parts) != 3 {
		return nil, nil, fmt.Errorf("jws: invalid number of segments in compact serialization: %d", len(parts))
	}

	protected, err := decodeProtected(parts[0])
	if err != nil {
		return nil, nil, err
	}

	var payload []byte
	if parts[1] != "" {
		payload, err = base64.Decode(parts[1])
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decode payload base64: %w", err)
		}
	}

	if parts[2] == "" {
		if protected.Algorithm != jwa.None {
			return nil, nil, fmt.Errorf("%w: %q", ErrMissingSignature, protected.Algorithm)
		}
		return NewUnsigned(protected.Extra, nil), payload, nil
	}

	if protected.Algorithm == jwa.None {
		return nil, nil, fmt.Errorf("jws: unexpected signature segment for algorithm %q", jwa.None)
	}

	sig, err := base64.Decode(parts[2])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode signature base64: %w", err)
	}

	return &Signed{
		protected: protected,
		encoded:   parts[0],
		signature: sig,
	}, payload, nil
}

// Flat is the flattened JSON serialization: a JSON object representing
// a single signature, with room for unprotected header data.
//
//	{"protected":"<base64url>","header":{...},"signature":"<base64url>"}
//
// The header and signature members are omitted when empty. The payload
// is owned by the outer message type and is not part of this object.
//
// https://datatracker.ietf.org/doc/html/rfc7515#section-7.2.2
type Flat struct{}

func (Flat) format() {}

// flatJSON is the wire shape of the flattened serialization.
type flatJSON struct {
	Protected string            `json:"protected"`
	Header    header.Parameters `json:"header,omitempty"`
	Signature string            `json:"signature,omitempty"`
}

// Encode serializes the envelope to the flattened JSON form. For a
// signed envelope the protected segment is the exact value the
// signature covers.
func (Flat) Encode(env Envelope) ([]byte, error) {
	out := flatJSON{
		Header: env.Header(),
	}

	switch e := env.(type) {
	case *Signed:
		out.Protected = e.encoded
		out.Signature = base64.Encode(e.signature)
	case *Unsigned:
		encoded, err := e.protected.Encode()
		if err != nil {
			return nil, fmt.Errorf("failed to encode protected header: %w", err)
		}
		out.Protected = encoded
	}

	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode flattened serialization: %w", err)
	}
	return b, nil
}

// Decode parses a flattened JSON serialization into an envelope. The
// protected segment is retained byte-for-byte and the signature is
// kept as opaque bytes; nothing is verified until Verify is invoked.
func (Flat) Decode(data []byte) (Envelope, error) {
	var in flatJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to decode flattened serialization: %w", err)
	}

	protected, err := decodeProtected(in.Protected)
	if err != nil {
		return nil, err
	}

	if in.Signature == "" {
		if protected.Algorithm != jwa.None {
			return nil, fmt.Errorf("%w: %q", ErrMissingSignature, protected.Algorithm)
		}
		return NewUnsigned(protected.Extra, in.Header), nil
	}

	if protected.Algorithm == jwa.None {
		return nil, fmt.Errorf("jws: unexpected signature value for algorithm %q", jwa.None)
	}

	sig, err := base64.Decode(in.Signature)
	if err != nil {
		return nil, fmt.Errorf("failed to decode signature base64: %w", err)
	}

	unprotected := in.Header
	if len(unprotected) == 0 {
		unprotected = nil
	}

	return &Signed{
		protected:   protected,
		encoded:     in.Protected,
		unprotected: unprotected,
		signature:   sig,
	}, nil
}
