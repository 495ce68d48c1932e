package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the JWT claims structure
type Claims struct {
	UserID        uuid.UUID `json:"user_id"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	InstitutionID string    `json:"institution_id,omitempty"`
	Permissions   []string  `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// TokenType represents the type of token
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

const (
	issuerMain  = "campus-core"
	issuerReset = "campus-core-reset"
)

// JWTManager handles JWT operations
type JWTManager struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(secret string, accessExpiry, refreshExpiry time.Duration) *JWTManager {
	return &JWTManager{
		secret:        []byte(secret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// keyFunc rejects any token not signed with HMAC before handing back the
// shared secret.
func (m *JWTManager) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return m.secret, nil
}

// sign creates and signs a token with the given claims.
func (m *JWTManager) sign(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// GenerateAccessToken generates a new access token
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID, email, role, institutionID string, permissions []string) (string, time.Time, error) {
	expiresAt := time.Now().Add(m.accessExpiry)

	claims := &Claims{
		UserID:        userID,
		Email:         email,
		Role:          role,
		InstitutionID: institutionID,
		Permissions:   permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   userID.String(),
			Issuer:    issuerMain,
		},
	}

	tokenString, err := m.sign(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// GenerateRefreshToken generates a new refresh token
func (m *JWTManager) GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error) {
	return m.signRegistered(userID, issuerMain, m.refreshExpiry)
}

// GenerateResetToken generates a password reset token, valid for one hour.
func (m *JWTManager) GenerateResetToken(userID uuid.UUID, email string) (string, time.Time, error) {
	return m.signRegistered(userID, issuerReset, 1*time.Hour)
}

func (m *JWTManager) signRegistered(userID uuid.UUID, issuer string, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)

	claims := &jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Subject:   userID.String(),
		Issuer:    issuer,
		ID:        uuid.New().String(),
	}

	tokenString, err := m.sign(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ValidateAccessToken validates and parses an access token
func (m *JWTManager) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, m.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// parseRegistered validates a registered-claims token and returns the user
// ID from its subject, mapping failures to the given application errors.
func (m *JWTManager) parseRegistered(tokenString, wantIssuer string, expiredErr, invalidErr error) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, m.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, expiredErr
		}
		return uuid.Nil, invalidErr
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Issuer != wantIssuer {
		return uuid.Nil, invalidErr
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, invalidErr
	}

	return userID, nil
}

// ValidateRefreshToken validates and parses a refresh token
func (m *JWTManager) ValidateRefreshToken(tokenString string) (uuid.UUID, error) {
	return m.parseRegistered(tokenString, issuerMain, ErrRefreshTokenExpired, ErrRefreshTokenInvalid)
}

// ValidateResetToken validates a password reset token
func (m *JWTManager) ValidateResetToken(tokenString string) (uuid.UUID, error) {
	return m.parseRegistered(tokenString, issuerReset, ErrResetTokenExpired, ErrResetTokenInvalid)
}
