package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var errInvalidSessionToken = errors.New("invalid session token")

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func (handler *Handler) buildSessionToken(username string, ttl time.Duration) (string, error) {
	now := time.Now().In(handler.location)
	claims := sessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
}

func (handler *Handler) parseSessionToken(token string) (string, error) {
	claims := sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidSessionToken
		}
		return handler.secretKey, nil
	})
	if err != nil || !parsed.Valid || strings.TrimSpace(claims.Username) == "" {
		return "", errInvalidSessionToken
	}
	return claims.Username, nil
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, username string) error {
	token, err := handler.buildSessionToken(username, defaultSessionTTL)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(defaultSessionTTL),
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})
	return nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})
}

// sessionTokenFromRequest reads the session cookie, falling back to a bearer
// header for non-browser clients.
func sessionTokenFromRequest(c *fiber.Ctx) string {
	if token := strings.TrimSpace(c.Cookies(sessionCookieName)); token != "" {
		return token
	}
	authorization := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if strings.HasPrefix(authorization, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authorization, "Bearer "))
	}
	return ""
}
