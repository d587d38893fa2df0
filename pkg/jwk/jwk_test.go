package jwk_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tgross35/JOSE/pkg/jwa"
	"github.com/tgross35/JOSE/pkg/jwk"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		Name  string
		Key   jwk.Key
		Valid bool
	}{
		{
			Name: "EC P-256",
			Key: jwk.Key{
				KeyType: jwk.TypeEC,
				Curve:   jwk.CurveP256,
				X:       "f83OJ3D2xF1Bg8vub9tLe1gHMzV76e8Tus9uPHvRVEU",
				Y:       "x_FEzRu9m36HLN_tue659LNpXW6pCyStikYjKIWI5a0",
			},
			Valid: true,
		},
		{
			Name: "EC missing curve",
			Key: jwk.Key{
				KeyType: jwk.TypeEC,
				X:       "f83OJ3D2xF1Bg8vub9tLe1gHMzV76e8Tus9uPHvRVEU",
				Y:       "x_FEzRu9m36HLN_tue659LNpXW6pCyStikYjKIWI5a0",
			},
			Valid: false,
		},
		{
			Name: "EC unknown curve",
			Key: jwk.Key{
				KeyType: jwk.TypeEC,
				Curve:   "P-224",
				X:       "f83OJ3D2xF1Bg8vub9tLe1gHMzV76e8Tus9uPHvRVEU",
				Y:       "x_FEzRu9m36HLN_tue659LNpXW6pCyStikYjKIWI5a0",
			},
			Valid: false,
		},
		{
			Name: "EC bad base64 coordinate",
			Key: jwk.Key{
				KeyType: jwk.TypeEC,
				Curve:   jwk.CurveP256,
				X:       "not*base64url",
				Y:       "x_FEzRu9m36HLN_tue659LNpXW6pCyStikYjKIWI5a0",
			},
			Valid: false,
		},
		{
			Name: "RSA public",
			Key: jwk.Key{
				KeyType: jwk.TypeRSA,
				N:       "sXchDaQebHnPiGvyDOAT4saGEUetSyo9MKLOoWFsueri23bOdgWp4Dy1Wl",
				E:       "AQAB",
			},
			Valid: true,
		},
		{
			Name: "RSA missing exponent",
			Key: jwk.Key{
				KeyType: jwk.TypeRSA,
				N:       "sXchDaQebHnPiGvyDOAT4saGEUetSyo9MKLOoWFsueri23bOdgWp4Dy1Wl",
			},
			Valid: false,
		},
		{
			Name: "OKP Ed25519",
			Key: jwk.Key{
				KeyType: jwk.TypeOKP,
				Curve:   jwk.CurveEd25519,
				X:       "11qYAYKxCrfVS_7TyWQHOg7hcvPapiMlrwIaaPcHURo",
			},
			Valid: true,
		},
		{
			Name:  "octet sequence",
			Key:   jwk.NewSymmetric([]byte("hi")),
			Valid: true,
		},
		{
			Name:  "missing key type",
			Key:   jwk.Key{K: "aGk"},
			Valid: false,
		},
		{
			Name:  "unknown key type",
			Key:   jwk.Key{KeyType: "PQC"},
			Valid: false,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			err := test.Key.Validate()
			if test.Valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.ErrorIs(t, err, jwk.ErrInvalidKey)
			}
		})
	}
}

func TestSymmetricKey(t *testing.T) {
	key := jwk.NewSymmetric([]byte("my-shared-secret-key"))
	require.Equal(t, jwk.TypeOctet, key.KeyType)
	require.NotEmpty(t, key.KeyID)
	require.NoError(t, key.Validate())

	raw, err := key.SymmetricKey()
	require.NoError(t, err)
	require.Equal(t, []byte("my-shared-secret-key"), raw)

	_, err = jwk.Key{KeyType: jwk.TypeRSA, N: "AQAB", E: "AQAB"}.SymmetricKey()
	require.Error(t, err)
	require.ErrorIs(t, err, jwk.ErrNotSymmetric)
}

func TestPublic(t *testing.T) {
	key := jwk.Key{
		KeyType: jwk.TypeEC,
		KeyID:   "key-1",
		Curve:   jwk.CurveP256,
		X:       "f83OJ3D2xF1Bg8vub9tLe1gHMzV76e8Tus9uPHvRVEU",
		Y:       "x_FEzRu9m36HLN_tue659LNpXW6pCyStikYjKIWI5a0",
		D:       "jpsQnnGQmL-YBIffH1136cspYG6-0iY7X1fCE9-E9LI",
	}
	require.True(t, key.Private())

	pub := key.Public()
	require.False(t, pub.Private())
	require.Equal(t, "", pub.D)
	require.Equal(t, key.KeyID, pub.KeyID)
	require.Equal(t, key.X, pub.X)

	// The original is not modified.
	require.True(t, key.Private())
}

func TestJSONRoundTrip(t *testing.T) {
	key := jwk.Key{
		KeyType:   jwk.TypeOctet,
		KeyID:     "hmac-key-1",
		Algorithm: jwa.HS256,
		Use:       jwk.UseSignature,
		K:         "aGk",
	}

	b, err := json.Marshal(key)
	require.NoError(t, err)

	// Unused parameter fields are omitted entirely.
	require.NotContains(t, string(b), `"crv"`)
	require.NotContains(t, string(b), `"n"`)
	require.Contains(t, string(b), `"kty":"oct"`)
	require.Contains(t, string(b), `"alg":"HS256"`)

	var decoded jwk.Key
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, key, decoded)
}

func TestNewKeyID(t *testing.T) {
	a := jwk.NewKeyID()
	b := jwk.NewKeyID()
	require.NotEmpty(t, a)
	require.NotEmpty(t, b)
	require.NotEqual(t, a, b)
}
