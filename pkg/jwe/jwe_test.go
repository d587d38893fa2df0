package jwe_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tgross35/JOSE/pkg/jwe"
)

func TestMessageJSON(t *testing.T) {
	msg := jwe.Message{
		Protected:    "eyJhbGciOiJSU0EtT0FFUCIsImVuYyI6IkEyNTZHQ00ifQ",
		EncryptedKey: "UGhIOguC7IuEvf_NPVaXsGMoLOmwvc1GyqlIKOK1nN94nHPoltGRhWhw",
		InitVector:   "48V1_ALb6US04U3b",
		Ciphertext:   "5eym8TW_c8SuK0ltJ3rpYIzOeDQz7TALvtu6UG9oMo4vpzs9tX_EFShS8iB7j6ji",
		AuthTag:      "XFBoMYUZodetZdvTiFvSkQ",
	}

	b, err := json.Marshal(msg)
	require.NoError(t, err)

	// Members that are not set are omitted from the serialization.
	require.NotContains(t, string(b), `"aad"`)
	require.NotContains(t, string(b), `"unprotected"`)
	require.NotContains(t, string(b), `"header"`)

	var decoded jwe.Message
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, msg, decoded)
}

func TestHeaderParameters(t *testing.T) {
	h := jwe.Header{
		jwe.Algorithm:           "RSA-OAEP",
		jwe.EncryptionAlgorithm: "A256GCM",
	}

	alg, err := h.Algorithm()
	require.NoError(t, err)
	require.Equal(t, "RSA-OAEP", alg.String())

	enc, err := h.Get(jwe.EncryptionAlgorithm)
	require.NoError(t, err)
	require.Equal(t, "A256GCM", enc)
}
