// Package base64 provides base64url encoding and decoding functions
// as defined in RFC 4648 Section 5, specifically for use in JSON Web
// Signatures (JWS) as specified in RFC 7515.
//
// The key difference from standard base64 encoding is:
//   - Uses URL-safe characters (- and _ instead of + and /)
//   - Omits padding characters (=) in the encoded output
//   - Automatically handles padding when decoding
//
// Encoded values produced by this package are byte-for-byte stable,
// which matters because JWS uses the encoded form as MAC input.
//
// http://www.rfc-editor.org/rfc/rfc4648#section-5
package base64
