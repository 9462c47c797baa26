package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenInvalid covers malformed tokens, bad signatures, and claim
	// payloads that carry no user id.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired is returned once a token's expiry instant has passed.
	ErrTokenExpired = errors.New("token expired")
)

// TokenManager issues and verifies HMAC-SHA256 signed access tokens.
// New tokens carry a flat {id} claim; Verify also accepts the legacy
// nested {user:{id}} shape so tokens issued by the previous service
// keep working until they expire.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a manager with the provided symmetric secret and
// token lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given user id, valid for the manager's TTL.
func (m *TokenManager) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks the signature and expiry and returns the token's subject.
// Expiry is compared explicitly rather than relying only on the library's
// claim validation, since both claim shapes must be probed either way.
func (m *TokenManager) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrTokenExpired
		}
		return uuid.Nil, ErrTokenInvalid
	}
	if !token.Valid {
		return uuid.Nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrTokenInvalid
	}

	if exp, ok := claims["exp"].(float64); ok {
		if time.Now().Unix() >= int64(exp) {
			return uuid.Nil, ErrTokenExpired
		}
	}

	idStr := subjectFromClaims(claims)
	if idStr == "" {
		return uuid.Nil, ErrTokenInvalid
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}
	return id, nil
}

// subjectFromClaims handles both payload formats: {id} and {user:{id}}.
func subjectFromClaims(claims jwt.MapClaims) string {
	if id, ok := claims["id"].(string); ok && id != "" {
		return id
	}
	if nested, ok := claims["user"].(map[string]interface{}); ok {
		if id, ok := nested["id"].(string); ok {
			return id
		}
	}
	return ""
}
