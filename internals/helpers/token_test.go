package helper

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"rollcall_backend/internals/configs"
)

func TestCreateAdminTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "test-secret"

	id := uuid.New()
	signed, err := CreateAdminToken(id, "admin@example.edu", "superadmin")
	if err != nil {
		t.Fatalf("CreateAdminToken() error = %v", err)
	}

	parsed, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !parsed.Valid {
		t.Fatal("token not valid")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not MapClaims")
	}
	if claims["sub"] != id.String() {
		t.Errorf("sub = %v, want %s", claims["sub"], id)
	}
	if claims["email"] != "admin@example.edu" {
		t.Errorf("email = %v", claims["email"])
	}
	if claims["role"] != "superadmin" {
		t.Errorf("role = %v", claims["role"])
	}
}

func TestCreateAdminTokenWrongSecretRejected(t *testing.T) {
	configs.JWTSecret = "test-secret"
	signed, err := CreateAdminToken(uuid.New(), "admin@example.edu", "admin")
	if err != nil {
		t.Fatalf("CreateAdminToken() error = %v", err)
	}

	_, err = jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte("another-secret"), nil
	})
	if err == nil {
		t.Fatal("Parse() = nil error with wrong secret")
	}
}
