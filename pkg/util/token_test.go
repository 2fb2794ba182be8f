package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-session-tokens"

func TestSignSessionID(t *testing.T) {
	token, err := SignSessionID("abc-123", testSecret, 30*time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestVerifySessionToken(t *testing.T) {
	token, err := SignSessionID("abc-123", testSecret, 30*time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{
			name:    "Valid token",
			token:   token,
			secret:  testSecret,
			wantErr: nil,
		},
		{
			name:    "Wrong secret",
			token:   token,
			secret:  "other-secret",
			wantErr: ErrInvalidToken,
		},
		{
			name:    "Garbage token",
			token:   "not.a.token",
			secret:  testSecret,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "Empty token",
			token:   "",
			secret:  testSecret,
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionID, err := VerifySessionToken(tt.token, tt.secret)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, sessionID)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "abc-123", sessionID)
			}
		})
	}
}

func TestVerifySessionToken_Expired(t *testing.T) {
	token, err := SignSessionID("abc-123", testSecret, 1*time.Nanosecond)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	sessionID, err := VerifySessionToken(token, testSecret)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Empty(t, sessionID)
}
