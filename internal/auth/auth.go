package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"dc-atlas-api-server/internal/models"
)

// JWTClaims defines the payload for the JWT.
type JWTClaims struct {
	UserID  string `json:"userID"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Country string `json:"country"`
	jwt.RegisteredClaims
}

// Hashing
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

var (
	jwtSecret  = []byte("dev-only-secret")
	expiration = 24 * time.Hour
)

// Configure sets the signing secret and token lifetime from config.
// Must be called before the first GenerateJWT or ParseToken.
func Configure(secret string, ttl time.Duration) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
	if ttl > 0 {
		expiration = ttl
	}
}

func GenerateJWT(user models.User) (string, error) {
	claims := &JWTClaims{
		UserID:  user.ID,
		Email:   user.Email,
		Role:    user.Role,
		Country: user.Country,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken validates a signed token and returns its claims.
func ParseToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
