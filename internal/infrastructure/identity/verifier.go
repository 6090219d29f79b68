// Package identity verifies ID tokens issued by the Firebase-compatible
// identity provider. Tokens are RS256-signed; the signing certificates are
// fetched from the provider's public endpoint and cached.
package identity

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	appidentity "github.com/lumira-inc/lumira/internal/application/auth/identity"
	"github.com/lumira-inc/lumira/internal/shared/config"
	"github.com/lumira-inc/lumira/internal/shared/logger"
)

const defaultCertsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

// Verifier validates provider ID tokens against the project's issuer and
// audience.
type Verifier struct {
	projectID string
	certsURL  string
	client    *http.Client
	logger    logger.Interface

	mu      sync.RWMutex
	keys    map[string]*rsa.PublicKey
	fetched time.Time
	maxAge  time.Duration
}

// NewVerifier creates a Verifier from configuration.
func NewVerifier(cfg config.IdentityConfig, log logger.Interface) *Verifier {
	certsURL := cfg.CertsURL
	if certsURL == "" {
		certsURL = defaultCertsURL
	}
	return &Verifier{
		projectID: cfg.ProjectID,
		certsURL:  certsURL,
		client:    &http.Client{Timeout: 10 * time.Second},
		logger:    log,
	}
}

type tokenClaims struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	jwt.RegisteredClaims
}

// Verify checks the token's signature, issuer, audience, and expiry, and
// returns the identity it asserts.
func (v *Verifier) Verify(ctx context.Context, token string) (*appidentity.Identity, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("token has no kid header")
		}
		return v.publicKey(ctx, kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer("https://securetoken.google.com/"+v.projectID),
		jwt.WithAudience(v.projectID),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", appidentity.ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: empty subject", appidentity.ErrInvalidToken)
	}

	return &appidentity.Identity{
		SubjectID:     claims.Subject,
		Email:         claims.Email,
		Name:          claims.Name,
		EmailVerified: claims.EmailVerified,
	}, nil
}

// publicKey returns the signing key for kid, refreshing the certificate cache
// when the kid is unknown or the cache expired.
func (v *Verifier) publicKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.RLock()
	key, ok := v.keys[kid]
	fresh := time.Since(v.fetched) < v.maxAge
	v.mu.RUnlock()
	if ok && fresh {
		return key, nil
	}

	if err := v.refresh(ctx); err != nil {
		// A stale key is better than no key when the endpoint is down.
		if ok {
			v.logger.Warnw("using stale signing certificate", "kid", kid, "error", err)
			return key, nil
		}
		return nil, err
	}

	v.mu.RLock()
	defer v.mu.RUnlock()
	key, ok = v.keys[kid]
	if !ok {
		return nil, fmt.Errorf("unknown signing key %q", kid)
	}
	return key, nil
}

func (v *Verifier) refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.certsURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build certs request: %w", err)
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch signing certificates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("certs endpoint returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read certs response: %w", err)
	}

	var certs map[string]string
	if err := json.Unmarshal(body, &certs); err != nil {
		return fmt.Errorf("failed to decode certs response: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, certPEM := range certs {
		block, _ := pem.Decode([]byte(certPEM))
		if block == nil {
			return fmt.Errorf("certificate %q is not PEM", kid)
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return fmt.Errorf("failed to parse certificate %q: %w", kid, err)
		}
		rsaKey, ok := cert.PublicKey.(*rsa.PublicKey)
		if !ok {
			return fmt.Errorf("certificate %q does not carry an RSA key", kid)
		}
		keys[kid] = rsaKey
	}

	v.mu.Lock()
	v.keys = keys
	v.fetched = time.Now()
	v.maxAge = parseMaxAge(resp.Header.Get("Cache-Control"))
	v.mu.Unlock()

	v.logger.Debugw("signing certificates refreshed", "count", len(keys))
	return nil
}

// parseMaxAge reads the max-age directive; the provider sets it to the
// certificate rotation interval.
func parseMaxAge(cacheControl string) time.Duration {
	const fallback = time.Hour
	for _, part := range strings.Split(cacheControl, ",") {
		part = strings.TrimSpace(part)
		if v, ok := strings.CutPrefix(part, "max-age="); ok {
			if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
				return time.Duration(secs) * time.Second
			}
		}
	}
	return fallback
}
