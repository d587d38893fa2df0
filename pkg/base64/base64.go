package base64

import (
	"encoding/base64"
	"fmt"
)

// Encode returns the base64url encoded string from the given input.
// This function implements base64url encoding as defined in RFC 4648
// Section 5, which is used in the JWS specification (RFC 7515).
//
// Padding characters are omitted, as required by RFC 7515. Empty input
// encodes to the empty string, which is how absent signature values are
// represented on the wire.
func Encode(input []byte) string {
	return base64.RawURLEncoding.EncodeToString(input)
}

// Decode returns the base64url decoded bytes from the given input.
// This function implements base64url decoding as defined in RFC 4648
// Section 5, which is used in the JWS specification (RFC 7515).
//
// Both padded and unpadded input is accepted.
func Decode(input string) ([]byte, error) {
	if len(input) == 0 {
		return nil, fmt.Errorf("base64: input cannot be empty")
	}

	// Strip padding, if any, so both forms decode identically.
	end := len(input)
	for end > 0 && input[end-1] == '=' {
		end--
	}

	result, err := base64.RawURLEncoding.DecodeString(input[:end])
	if err != nil {
		return nil, fmt.Errorf("base64: invalid base64url input: %w", err)
	}
	return result, nil
}
