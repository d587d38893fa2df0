package base64

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		Name  string
		Input []byte
	}{
		{
			Name:  "plaintext",
			Input: []byte("hello world"),
		},
		{
			Name:  "binary with url-unsafe octets",
			Input: []byte{0xfb, 0xff, 0xbe, 0x00, 0x01},
		},
		{
			Name: "random bytes",
			Input: func() []byte {
				numBytes := 32
				buff := make([]byte, numBytes)

				n, err := rand.Read(buff)
				require.NoError(t, err)
				require.Equal(t, n, numBytes)

				return buff
			}(),
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			encoded := Encode(test.Input)
			require.NotEmpty(t, encoded)
			require.NotContains(t, encoded, "=")
			require.NotContains(t, encoded, "+")
			require.NotContains(t, encoded, "/")

			decoded, err := Decode(encoded)
			require.NoError(t, err)
			require.Equal(t, test.Input, decoded)
		})
	}
}

func TestEncodeEmpty(t *testing.T) {
	require.Equal(t, "", Encode(nil))
	require.Equal(t, "", Encode([]byte{}))
}

func TestDecodePadded(t *testing.T) {
	decoded, err := Decode("aGk=")
	require.NoError(t, err)
	require.Equal(t, []byte("hi"), decoded)
}

func TestDecodeInvalid(t *testing.T) {
	for _, input := range []string{"", "not*base64url", "aGk!"} {
		_, err := Decode(input)
		require.Error(t, err, "input %q should not decode", input)
	}
}
