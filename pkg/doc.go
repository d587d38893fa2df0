// Package jose implements JavaScript Object Signing and Encryption (JOSE) related functionality.
//
// The heart of the module is the pkg/jws package, which implements the
// signing envelope of RFC7515: an unsigned envelope is built, signed with
// a MAC algorithm identified by pkg/jwa, and projected onto one of the
// registered serializations (Compact or Flattened JSON). The remaining
// packages are the data models the envelope consumes: header parameters,
// algorithm identifiers, key records, and the JWE message container.
//
// Related RFCs:
//   - RFC7515 https://datatracker.ietf.org/doc/html/rfc7515 JWS, JSON Web Signature
//   - RFC7516 https://datatracker.ietf.org/doc/html/rfc7516 JWE, JSON Web Encryption
//   - RFC7517 https://datatracker.ietf.org/doc/html/rfc7517 JWK, JSON Web Key
//   - RFC7518 https://datatracker.ietf.org/doc/html/rfc7518 JWA, JSON Web Algorithms
//
// Related Information:
//   - https://datatracker.ietf.org/wg/jose/charter/
package jose
