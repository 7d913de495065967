package auth

import (
	"testing"

	"github.com/mtomase/makers-ledger/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	secret := "test-secret-test-secret-test-secret!"
	user := &models.User{ID: 42, Email: "maker@example.com"}

	tokenStr, err := GenerateToken(secret, user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(tk *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token doğrulanamadı: %v", err)
	}

	claims, ok := token.Claims.(*JWTCustomClaims)
	if !ok {
		t.Fatal("claims çözümlenemedi")
	}
	if claims.UserID != 42 || claims.Email != "maker@example.com" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestGenerateToken_WrongSecretRejected(t *testing.T) {
	tokenStr, err := GenerateToken("test-secret-test-secret-test-secret!", &models.User{ID: 1})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(tk *jwt.Token) (interface{}, error) {
		return []byte("baska-bir-secret-baska-bir-secret!!!"), nil
	})
	if err == nil && token.Valid {
		t.Fatal("yanlış secret ile imzalanmış token geçerli sayılmamalı")
	}
}
