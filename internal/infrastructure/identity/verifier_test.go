package identity

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"encoding/pem"
	"log/slog"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appidentity "github.com/lumira-inc/lumira/internal/application/auth/identity"
	"github.com/lumira-inc/lumira/internal/shared/config"
	"github.com/lumira-inc/lumira/internal/shared/logger"
)

const testProject = "lumira-test"

type tokenServer struct {
	key    *rsa.PrivateKey
	certs  *httptest.Server
	closer func()
}

func newTokenServer(t *testing.T) *tokenServer {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "securetoken"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	require.NoError(t, err)
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_ = json.NewEncoder(w).Encode(map[string]string{"kid-1": string(certPEM)})
	}))

	return &tokenServer{key: key, certs: srv, closer: srv.Close}
}

func (s *tokenServer) sign(t *testing.T, claims jwt.MapClaims, kid string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	signed, err := token.SignedString(s.key)
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss":            "https://securetoken.google.com/" + testProject,
		"aud":            testProject,
		"sub":            "uid-123",
		"email":          "ada@example.com",
		"name":           "Ada",
		"email_verified": true,
		"iat":            now.Unix(),
		"exp":            now.Add(time.Hour).Unix(),
	}
}

func newTestVerifier(srv *tokenServer) *Verifier {
	return NewVerifier(
		config.IdentityConfig{ProjectID: testProject, CertsURL: srv.certs.URL},
		logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler)),
	)
}

func TestVerify(t *testing.T) {
	srv := newTokenServer(t)
	defer srv.closer()
	v := newTestVerifier(srv)

	ident, err := v.Verify(context.Background(), srv.sign(t, validClaims(), "kid-1"))
	require.NoError(t, err)

	assert.Equal(t, "uid-123", ident.SubjectID)
	assert.Equal(t, "ada@example.com", ident.Email)
	assert.Equal(t, "Ada", ident.Name)
	assert.True(t, ident.EmailVerified)
}

func TestVerify_Rejections(t *testing.T) {
	srv := newTokenServer(t)
	defer srv.closer()
	v := newTestVerifier(srv)
	ctx := context.Background()

	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Minute).Unix()
	_, err := v.Verify(ctx, srv.sign(t, expired, "kid-1"))
	assert.ErrorIs(t, err, appidentity.ErrInvalidToken, "expired token")

	wrongAud := validClaims()
	wrongAud["aud"] = "someone-else"
	_, err = v.Verify(ctx, srv.sign(t, wrongAud, "kid-1"))
	assert.ErrorIs(t, err, appidentity.ErrInvalidToken, "wrong audience")

	wrongIss := validClaims()
	wrongIss["iss"] = "https://evil.example.com/" + testProject
	_, err = v.Verify(ctx, srv.sign(t, wrongIss, "kid-1"))
	assert.ErrorIs(t, err, appidentity.ErrInvalidToken, "wrong issuer")

	noSub := validClaims()
	noSub["sub"] = ""
	_, err = v.Verify(ctx, srv.sign(t, noSub, "kid-1"))
	assert.ErrorIs(t, err, appidentity.ErrInvalidToken, "empty subject")

	_, err = v.Verify(ctx, srv.sign(t, validClaims(), "kid-unknown"))
	assert.ErrorIs(t, err, appidentity.ErrInvalidToken, "unknown signing key")

	_, err = v.Verify(ctx, "not-a-token")
	assert.ErrorIs(t, err, appidentity.ErrInvalidToken, "malformed token")
}

func TestVerify_TamperedSignature(t *testing.T) {
	srv := newTokenServer(t)
	defer srv.closer()
	v := newTestVerifier(srv)

	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, validClaims())
	token.Header["kid"] = "kid-1"
	forged, err := token.SignedString(otherKey)
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), forged)
	assert.ErrorIs(t, err, appidentity.ErrInvalidToken)
}
