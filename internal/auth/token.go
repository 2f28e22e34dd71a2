package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidCredentials covers every access-token failure: bad signature,
	// expired token, missing or non-numeric subject.
	ErrInvalidCredentials = errors.New("invalid authentication credentials")
	// ErrInvalidRefreshToken is the refresh-token counterpart, kept distinct
	// so callers can surface a different error code.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// TokenService issues and verifies stateless HS256 bearer tokens. The subject
// claim carries the user id, stringified on encode and parsed back on decode.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *TokenService) IssueAccessToken(userID int64) (string, error) {
	return s.issue(userID, s.accessTTL)
}

func (s *TokenService) IssueRefreshToken(userID int64) (string, error) {
	return s.issue(userID, s.refreshTTL)
}

func (s *TokenService) issue(userID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyAccessToken returns the user id carried by a valid access token.
func (s *TokenService) VerifyAccessToken(tokenStr string) (int64, error) {
	userID, err := s.verify(tokenStr)
	if err != nil {
		return 0, ErrInvalidCredentials
	}
	return userID, nil
}

// VerifyRefreshToken applies the same checks as VerifyAccessToken but fails
// with the refresh-specific error.
func (s *TokenService) VerifyRefreshToken(tokenStr string) (int64, error) {
	userID, err := s.verify(tokenStr)
	if err != nil {
		return 0, ErrInvalidRefreshToken
	}
	return userID, nil
}

// Refresh verifies a refresh token and rotates the pair: both a new access
// token and a new refresh token are issued for the same subject. The old
// refresh token stays formally valid until its expiry since tokens carry no
// server-side state.
func (s *TokenService) Refresh(refreshToken string) (access, refresh string, err error) {
	userID, err := s.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", "", err
	}
	access, err = s.IssueAccessToken(userID)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.IssueRefreshToken(userID)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *TokenService) verify(tokenStr string) (int64, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("token verification failed")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return 0, errors.New("token missing subject")
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, errors.New("token subject is not numeric")
	}
	return userID, nil
}
