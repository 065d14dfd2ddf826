package utility

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// TokenLifetime thời gian sống của JWT token.
const TokenLifetime = 7 * 24 * time.Hour

// JwtClaims chứa data được mã hóa trong JWT token.
type JwtClaims struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken tạo JWT token cho người dùng.
// Trả về map chứa token đã ký: {"token": "<jwt>"}.
func CreateToken(secret string, userID string, timeHex string, randomNumber string) (map[string]string, error) {
	claims := &JwtClaims{
		UserID:       userID,
		Time:         timeHex,
		RandomNumber: randomNumber,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(TokenLifetime).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("lỗi ký JWT token: %w", err)
	}

	return map[string]string{"token": signed}, nil
}

// VerifyToken xác thực chữ ký và thời hạn của JWT token, trả về claims nếu hợp lệ.
func VerifyToken(secret string, tokenString string) (*JwtClaims, error) {
	claims := &JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("thuật toán ký không hợp lệ: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("token không hợp lệ")
	}
	return claims, nil
}
