// File: internal/service/token.go
package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AccessTokenTTL 存取令牌有效期間
	AccessTokenTTL = 15 * time.Minute
	// RefreshTokenTTL 刷新令牌有效期間
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// 以下變數可在測試中覆寫。
var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// Claims 定義 JWT 負載內容
type Claims struct {
	UserID  string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
	jwt.RegisteredClaims
}

// TokenService 負責簽發與驗證 JWT。存取令牌與刷新令牌使用
// 不同密鑰，任一密鑰外洩不影響另一種令牌。
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
}

// NewTokenService 以兩組密鑰建立 TokenService
func NewTokenService(accessSecret, refreshSecret string) *TokenService {
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
	}
}

func (s *TokenService) issue(secret []byte, ttl time.Duration, userID, email string, isAdmin bool) (string, error) {
	now := timeNow()
	claims := Claims{
		UserID:  userID,
		Email:   email,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (s *TokenService) verify(secret []byte, tokenString string) (*Claims, error) {
	token, err := parseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// IssueAccessToken 簽發存取令牌，15 分鐘後過期
func (s *TokenService) IssueAccessToken(userID, email string, isAdmin bool) (string, error) {
	return s.issue(s.accessSecret, AccessTokenTTL, userID, email, isAdmin)
}

// IssueRefreshToken 簽發刷新令牌，7 天後過期
func (s *TokenService) IssueRefreshToken(userID, email string, isAdmin bool) (string, error) {
	return s.issue(s.refreshSecret, RefreshTokenTTL, userID, email, isAdmin)
}

// VerifyAccessToken 以存取密鑰驗證並解析令牌
func (s *TokenService) VerifyAccessToken(tokenString string) (*Claims, error) {
	return s.verify(s.accessSecret, tokenString)
}

// VerifyRefreshToken 以刷新密鑰驗證並解析令牌
func (s *TokenService) VerifyRefreshToken(tokenString string) (*Claims, error) {
	return s.verify(s.refreshSecret, tokenString)
}
