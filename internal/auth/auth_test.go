package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dc-atlas-api-server/internal/models"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "admin123" || !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("unexpected hash %q", hash)
	}
	if !CheckPasswordHash("admin123", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("admin124", hash) {
		t.Error("wrong password accepted")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	Configure("test-secret", time.Hour)

	user := models.User{ID: "u-1", Email: "admin@datacenter.com", Role: models.RoleAdmin, Country: "USA"}
	token, err := GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "u-1" || claims.Email != user.Email || claims.Role != models.RoleAdmin || claims.Country != "USA" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseTokenRejectsTamperedToken(t *testing.T) {
	Configure("test-secret", time.Hour)

	token, err := GenerateJWT(models.User{ID: "u-1"})
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseToken(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}
	if _, err := ParseToken("not-a-token"); err == nil {
		t.Error("garbage token accepted")
	}
}

func TestParseTokenRejectsExpiredToken(t *testing.T) {
	Configure("test-secret", time.Hour)

	claims := &JWTClaims{
		UserID: "u-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	if _, err := ParseToken(token); err == nil {
		t.Error("expired token accepted")
	}
}
