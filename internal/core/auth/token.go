package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired marks a validly signed token past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed covers corrupt encoding, signature mismatch and
	// unexpected signing algorithms. Kept distinct from ErrTokenExpired so
	// telemetry can tell the two apart; the user-facing message is the
	// same for both.
	ErrTokenMalformed = errors.New("token malformed")
)

// Claims is the signed payload of an access token: the standard subject
// and validity window plus a role snapshot taken at issuance.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// TokenCodec mints and validates HS256 access tokens against a
// process-wide secret. The clock is injectable for deterministic tests;
// rotating the secret invalidates every previously issued token.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenCodec returns a codec signing with secret. ttl is the default
// token lifetime used by Issue; non-positive values fall back to an hour.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock overrides the time source. Intended for tests.
func (tc *TokenCodec) WithClock(now func() time.Time) *TokenCodec {
	tc.now = now
	return tc
}

// TTL returns the configured default token lifetime.
func (tc *TokenCodec) TTL() time.Duration {
	return tc.ttl
}

// Issue mints a signed token for subject with a role snapshot. A zero ttl
// uses the codec default.
func (tc *TokenCodec) Issue(subject, role string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = tc.ttl
	}
	now := tc.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tc.secret)
}

// Decode verifies the signature and validity window of token and returns
// its claims. Failures are ErrTokenExpired or ErrTokenMalformed; nothing
// else escapes.
func (tc *TokenCodec) Decode(token string) (*Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) { return tc.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(tc.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrTokenMalformed
	}
	return &claims, nil
}
