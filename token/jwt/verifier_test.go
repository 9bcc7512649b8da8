package jwt_test

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-boarding-client/internal/errors"
	"github.com/jrsteele09/go-boarding-client/token/jwt"
	"github.com/stretchr/testify/require"
)

const issuer = "https://auth.riverside.test"

func TestOIDCVerifier(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	verifier := jwt.NewOIDCVerifierFromKeySet(issuer, &oidc.StaticKeySet{
		PublicKeys: []crypto.PublicKey{&key.PublicKey},
	})

	signRS256 := func(claims jwtlib.MapClaims) string {
		raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodRS256, claims).SignedString(key)
		require.NoError(t, err)
		return raw
	}

	t.Run("valid token", func(t *testing.T) {
		raw := signRS256(jwtlib.MapClaims{
			"iss":  issuer,
			"sub":  "alice@riverside",
			"role": "boarding_managers",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})
		require.NoError(t, verifier.Verify(context.Background(), raw))
	})

	t.Run("wrong issuer", func(t *testing.T) {
		raw := signRS256(jwtlib.MapClaims{
			"iss": "https://elsewhere.test",
			"sub": "alice@riverside",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		err := verifier.Verify(context.Background(), raw)
		require.Error(t, err)
		require.True(t, errors.Is(err, errors.ErrInvalidToken))
	})

	t.Run("expired token", func(t *testing.T) {
		raw := signRS256(jwtlib.MapClaims{
			"iss": issuer,
			"sub": "alice@riverside",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		require.Error(t, verifier.Verify(context.Background(), raw))
	})

	t.Run("hmac token is rejected", func(t *testing.T) {
		raw := signHS256(t, jwtlib.MapClaims{
			"iss": issuer,
			"sub": "alice@riverside",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		require.Error(t, verifier.Verify(context.Background(), raw))
	})
}

func TestVerifierFunc(t *testing.T) {
	called := ""
	var v jwt.Verifier = jwt.VerifierFunc(func(_ context.Context, raw string) error {
		called = raw
		return nil
	})
	require.NoError(t, v.Verify(context.Background(), "raw"))
	require.Equal(t, "raw", called)
}
