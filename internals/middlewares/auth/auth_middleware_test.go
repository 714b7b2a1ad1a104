package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"rollcall_backend/internals/configs"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/guarded", AuthMiddleware(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"admin_id":   c.Locals("admin_id"),
			"admin_role": c.Locals("admin_role"),
		})
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	configs.JWTSecret = "test-secret"
	id := uuid.New()

	valid := signToken(t, "test-secret", jwt.MapClaims{
		"sub":  id.String(),
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	expired := signToken(t, "test-secret", jwt.MapClaims{
		"sub": id.String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signToken(t, "other-secret", jwt.MapClaims{
		"sub": id.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	noSub := signToken(t, "test-secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + valid, fiber.StatusOK},
		{"missing header", "", fiber.StatusUnauthorized},
		{"not bearer", "Basic abc", fiber.StatusUnauthorized},
		{"expired token", "Bearer " + expired, fiber.StatusUnauthorized},
		{"wrong signing key", "Bearer " + wrongKey, fiber.StatusUnauthorized},
		{"missing sub claim", "Bearer " + noSub, fiber.StatusUnauthorized},
	}

	app := newTestApp()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/guarded", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tc.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}
		})
	}
}

func TestValidateTokenExpiryLeeway(t *testing.T) {
	// just expired, but inside the leeway window
	claims := jwt.MapClaims{"exp": float64(time.Now().Add(-10 * time.Second).Unix())}
	if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
		t.Errorf("validateTokenExpiry() = %v, want nil inside leeway", err)
	}

	claims = jwt.MapClaims{"exp": float64(time.Now().Add(-time.Minute).Unix())}
	if err := validateTokenExpiry(claims, 30*time.Second); err == nil {
		t.Error("validateTokenExpiry() = nil, want error past leeway")
	}

	if err := validateTokenExpiry(jwt.MapClaims{}, 0); err == nil {
		t.Error("validateTokenExpiry() = nil, want error for missing exp")
	}
}
