package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testKid = "test-key"

type jwksFixture struct {
	key    *rsa.PrivateKey
	server *httptest.Server
	hits   atomic.Int32
}

func newJWKSFixture(t *testing.T) *jwksFixture {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}
	f := &jwksFixture{key: key}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		f.hits.Add(1)
		_ = json.NewEncoder(w).Encode(JWKS{Keys: []JWK{{
			Kid: testKid,
			Kty: "RSA",
			Alg: "RS256",
			Use: "sig",
			N:   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
		}}})
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *jwksFixture) sign(t *testing.T, kid string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	signed, err := token.SignedString(f.key)
	if err != nil {
		t.Fatalf("SignedString() failed: %v", err)
	}
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"iss":            "https://issuer.test",
		"sub":            "user-1",
		"exp":            time.Now().Add(time.Hour).Unix(),
		"wallet_address": "0x52908400098527886e0f7030069857d2e4169ee7",
	}
}

func TestJWTValidator_ValidToken(t *testing.T) {
	f := newJWKSFixture(t)
	v := NewJWTValidator(f.server.URL, "https://issuer.test")

	claims, err := v.ValidateToken(context.Background(), f.sign(t, testKid, validClaims()))
	if err != nil {
		t.Fatalf("ValidateToken() failed: %v", err)
	}
	wallet, err := WalletFromClaims(claims, "wallet_address")
	if err != nil {
		t.Fatalf("WalletFromClaims() failed: %v", err)
	}
	if wallet != "0x52908400098527886E0F7030069857D2E4169EE7" {
		t.Fatalf("expected checksummed wallet, got %s", wallet)
	}

	// Cached key: a second validation must not refetch.
	if _, err := v.ValidateToken(context.Background(), f.sign(t, testKid, validClaims())); err != nil {
		t.Fatalf("ValidateToken() failed: %v", err)
	}
	if got := f.hits.Load(); got != 1 {
		t.Fatalf("expected a single JWKS fetch, got %d", got)
	}
}

func TestJWTValidator_Rejections(t *testing.T) {
	f := newJWKSFixture(t)
	v := NewJWTValidator(f.server.URL, "https://issuer.test")

	wrongIssuer := validClaims()
	wrongIssuer["iss"] = "https://evil.test"

	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	noExp := validClaims()
	delete(noExp, "exp")

	tests := []struct {
		name  string
		token string
	}{
		{"wrong issuer", f.sign(t, testKid, wrongIssuer)},
		{"expired", f.sign(t, testKid, expired)},
		{"no expiry", f.sign(t, testKid, noExp)},
		{"unknown kid", f.sign(t, "other", validClaims())},
		{"garbage", "not.a.jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := v.ValidateToken(context.Background(), tt.token); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestJWTValidator_HMACRejected(t *testing.T) {
	f := newJWKSFixture(t)
	v := NewJWTValidator(f.server.URL, "")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims())
	token.Header["kid"] = testKid
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("SignedString() failed: %v", err)
	}
	if _, err := v.ValidateToken(context.Background(), signed); err == nil {
		t.Fatal("expected HMAC token to be rejected")
	}
}

func TestWalletFromClaims_Missing(t *testing.T) {
	_, err := WalletFromClaims(jwt.MapClaims{"sub": "x"}, "wallet_address")
	if !errors.Is(err, ErrMissingWalletClaim) {
		t.Fatalf("expected ErrMissingWalletClaim, got %v", err)
	}
}
