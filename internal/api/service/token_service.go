package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/strongDoorknob/moodsy/internal/api/config"
	"github.com/strongDoorknob/moodsy/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// TokenClaims are the JWT claims issued by the API.
type TokenClaims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 access/refresh token pairs.
type TokenService interface {
	IssuePair(userID uint) (access, refresh string, err error)
	Refresh(refreshToken string) (string, error)
	ParseAccess(accessToken string) (uint, error)
}

// NewTokenService creates a TokenService. The secret must not be empty.
func NewTokenService(cfg config.Auth) (TokenService, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("auth.jwt_secret must be set")
	}
	return &tokenService{
		secret:     []byte(cfg.JWTSecret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}, nil
}

type tokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func (s *tokenService) IssuePair(userID uint) (string, string, error) {
	access, err := s.sign(userID, tokenTypeAccess, s.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.sign(userID, tokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *tokenService) Refresh(refreshToken string) (string, error) {
	userID, err := s.parse(refreshToken, tokenTypeRefresh)
	if err != nil {
		return "", err
	}
	return s.sign(userID, tokenTypeAccess, s.accessTTL)
}

func (s *tokenService) ParseAccess(accessToken string) (uint, error) {
	return s.parse(accessToken, tokenTypeAccess)
}

func (s *tokenService) sign(userID uint, tokenType string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := TokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (s *tokenService) parse(tokenString, wantType string) (uint, error) {
	var claims TokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, apperror.Auth("Given token not valid")
	}
	if claims.TokenType != wantType {
		return 0, apperror.Auth("Given token not valid for any token type")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, apperror.Auth("Token contained no recognizable user identification")
	}
	return uint(userID), nil
}
