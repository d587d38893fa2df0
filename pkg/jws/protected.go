package jws

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/tgross35/JOSE/pkg/base64"
	"github.com/tgross35/JOSE/pkg/header"
	"github.com/tgross35/JOSE/pkg/jwa"
)

// Protected is the integrity-protected header of a signature: the
// algorithm that produced (or will produce) the signature value, plus
// any caller-supplied extension parameters.
//
// On the wire the two parts are merged into a single JSON object, with
// the extension parameters at the same level as "alg":
//
//	{"alg":"HS256","typ":"JWT","kid":"key-1"}
//
// https://datatracker.ietf.org/doc/html/rfc7515#section-4
type Protected struct {
	// Algorithm identifies the MAC algorithm used to produce the
	// current signature value, or jwa.None when unsigned.
	Algorithm jwa.Algorithm

	// Extra holds the caller-supplied extension parameters. It must
	// not define "alg".
	Extra header.Parameters
}

// MarshalJSON emits the canonical byte representation of the protected
// header: one JSON object with "alg" first and the extension parameters
// following in sorted name order, no whitespace. The same bytes are
// used as MAC input and as the wire form, so the encoding must be
// stable for a given header value.
func (p Protected) MarshalJSON() ([]byte, error) {
	if _, ok := p.Extra[header.Algorithm]; ok {
		return nil, ErrAlgParameterReserved
	}

	buff := bytes.NewBuffer(nil)
	buff.WriteString(`{"alg":`)

	alg, err := json.Marshal(p.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to encode algorithm: %w", err)
	}
	buff.Write(alg)

	names := make([]string, 0, len(p.Extra))
	for name := range p.Extra {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		buff.WriteByte(',')

		nameJSON, err := json.Marshal(name)
		if err != nil {
			return nil, fmt.Errorf("failed to encode parameter name %q: %w", name, err)
		}
		buff.Write(nameJSON)
		buff.WriteByte(':')

		valueJSON, err := json.Marshal(p.Extra[name])
		if err != nil {
			return nil, fmt.Errorf("failed to encode parameter %q: %w", name, err)
		}
		buff.Write(valueJSON)
	}

	buff.WriteByte('}')
	return buff.Bytes(), nil
}

// UnmarshalJSON reconstructs a protected header from its JSON byte
// representation. The "alg" member is required.
func (p *Protected) UnmarshalJSON(data []byte) error {
	var params header.Parameters
	if err := json.Unmarshal(data, &params); err != nil {
		return fmt.Errorf("failed to decode protected header JSON: %w", err)
	}

	alg, err := params.Algorithm()
	if err != nil {
		return fmt.Errorf("failed to decode protected header: %w", err)
	}
	delete(params, header.Algorithm)

	p.Algorithm = alg
	if len(params) > 0 {
		p.Extra = params
	} else {
		p.Extra = nil
	}
	return nil
}

// Encode returns the unpadded base64url form of the canonical byte
// representation.
func (p Protected) Encode() (string, error) {
	b, err := p.MarshalJSON()
	if err != nil {
		return "", err
	}
	return base64.Encode(b), nil
}

// decodeProtected parses a base64url protected header segment.
func decodeProtected(segment string) (Protected, error) {
	b, err := base64.Decode(segment)
	if err != nil {
		return Protected{}, fmt.Errorf("failed to decode protected header base64: %w", err)
	}

	var p Protected
	if err := json.Unmarshal(b, &p); err != nil {
		return Protected{}, err
	}
	return p, nil
}
