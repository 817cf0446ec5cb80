package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/marmos91/storefront/pkg/models"
)

// JWT service errors.
var (
	// ErrInvalidToken indicates the token is malformed, has an invalid
	// signature, or otherwise failed validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken indicates the token was valid but has expired.
	ErrExpiredToken = errors.New("token expired")

	// ErrTokenSigningFailed indicates token generation failed.
	ErrTokenSigningFailed = errors.New("failed to sign token")

	// ErrInvalidSecretLength indicates the configured secret is too short.
	ErrInvalidSecretLength = errors.New("JWT secret must be at least 32 characters")
)

// minSecretLength is the minimum acceptable HMAC secret length in bytes.
const minSecretLength = 32

// DefaultTokenDuration is the token lifetime used when none is configured.
const DefaultTokenDuration = 24 * time.Hour

// JWTConfig configures the JWT service.
type JWTConfig struct {
	// Secret is the HMAC signing secret. Required, minimum 32 characters.
	Secret string

	// Issuer is the "iss" claim stamped on generated tokens.
	// Default: "storefront".
	Issuer string

	// TokenDuration is the token lifetime. Default: 24h.
	TokenDuration time.Duration
}

// Token is an issued bearer token with its expiry metadata.
type Token struct {
	// Token is the signed JWT string.
	Token string `json:"token"`

	// TokenType is always "Bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`

	// ExpiresAt is the absolute expiry time.
	ExpiresAt time.Time `json:"expires_at"`
}

// JWTService issues and validates HMAC-signed bearer tokens.
type JWTService struct {
	secret        []byte
	issuer        string
	tokenDuration time.Duration
}

// NewJWTService creates a JWT service from the given config.
//
// There is no default or fallback secret: a missing or short secret is
// a hard error so a misconfigured server refuses to start rather than
// issue forgeable tokens.
func NewJWTService(config JWTConfig) (*JWTService, error) {
	if len(config.Secret) < minSecretLength {
		return nil, ErrInvalidSecretLength
	}
	if config.Issuer == "" {
		config.Issuer = "storefront"
	}
	if config.TokenDuration <= 0 {
		config.TokenDuration = DefaultTokenDuration
	}

	return &JWTService{
		secret:        []byte(config.Secret),
		issuer:        config.Issuer,
		tokenDuration: config.TokenDuration,
	}, nil
}

// TokenDuration returns the configured token lifetime.
func (s *JWTService) TokenDuration() time.Duration {
	return s.tokenDuration
}

// Generate issues a signed token for the given user.
func (s *JWTService) Generate(user *models.User) (*Token, error) {
	now := time.Now()
	expiresAt := now.Add(s.tokenDuration)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: user.ID,
		Login:  user.Login,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenSigningFailed, err)
	}

	return &Token{
		Token:     signed,
		TokenType: "Bearer",
		ExpiresIn: int64(s.tokenDuration / time.Second),
		ExpiresAt: expiresAt,
	}, nil
}

// Validate parses and validates a token string, returning its claims.
//
// Returns ErrExpiredToken for expired tokens and ErrInvalidToken for
// everything else that fails validation (bad signature, wrong signing
// method, malformed token, missing user id).
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
