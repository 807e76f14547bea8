package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACVerifier(t *testing.T) {
	v := NewHMACVerifier("s3cret")

	valid, err := v.Sign("user-1", time.Hour)
	require.NoError(t, err)
	expired, err := v.Sign("user-1", -time.Hour)
	require.NoError(t, err)
	foreign, err := NewHMACVerifier("other").Sign("user-1", time.Hour)
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "valid", token: valid},
		{name: "expired", token: expired, wantErr: true},
		{name: "wrong secret", token: foreign, wantErr: true},
		{name: "unsigned", token: none, wantErr: true},
		{name: "garbage", token: "not.a.token", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := v.Verify(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidToken))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", claims.Subject)
		})
	}
}

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer  abc", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "Basic dXNlcg==", wantErr: true},
		{header: "abc.def.ghi", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ExtractBearer(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMissingToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
