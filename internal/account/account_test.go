package account

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ed25519"
)

func TestParsePublicKey(t *testing.T) {
	kp, err := NewKeypair()
	require.NoError(t, err)

	parsed, err := ParsePublicKey(kp.PublicKey().String())
	require.NoError(t, err)
	assert.Equal(t, kp.PublicKey(), parsed)
}

func TestParsePublicKeyInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not base58", "0OIl"},
		{"too short", "3yZe7d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePublicKey(tt.input)
			assert.ErrorIs(t, err, ErrInvalidPublicKey)
		})
	}
}

func TestSystemProgramKey(t *testing.T) {
	pk, err := ParsePublicKey("11111111111111111111111111111111")
	require.NoError(t, err)
	assert.True(t, pk.IsZero())
}

func TestPublicKeyJSON(t *testing.T) {
	kp, err := NewKeypair()
	require.NoError(t, err)

	payload := struct {
		Author PublicKey `json:"author"`
	}{Author: kp.PublicKey()}

	b, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Contains(t, string(b), kp.PublicKey().String())

	payload.Author = PublicKey{}
	require.NoError(t, json.Unmarshal(b, &payload))
	assert.Equal(t, kp.PublicKey(), payload.Author)
}

func TestKeypairSignature(t *testing.T) {
	kp, err := NewKeypair()
	require.NoError(t, err)

	msg := []byte("gm")
	sig := ed25519.Sign(kp.PrivateKey(), msg)

	assert.True(t, ed25519.Verify(kp.PublicKey().Bytes(), msg, sig))
	assert.False(t, ed25519.Verify(kp.PublicKey().Bytes(), []byte("gn"), sig))

	other, err := NewKeypair()
	require.NoError(t, err)
	assert.False(t, ed25519.Verify(other.PublicKey().Bytes(), msg, sig))
}
