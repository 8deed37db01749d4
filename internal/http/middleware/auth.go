package middleware

import (
	"context"
	"net/http"
	"strings"

	"fitter/internal/http/api"

	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
)

type key int

const RoleKey key = 1

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Auth accepts admin tokens signed with adminSecret and user tokens signed with userSecret.
func Auth(adminSecret, userSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get("Authorization")

			if tokenString == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "authorization header is required"))
				return
			}

			tokenString, _ = strings.CutPrefix(tokenString, "Bearer ")

			// Try admin token
			role, ok := validateToken(tokenString, adminSecret)
			if ok && role == RoleAdmin {
				ctx := context.WithValue(r.Context(), RoleKey, RoleAdmin)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// Try user token
			role, ok = validateToken(tokenString, userSecret)
			if ok && role == RoleUser {
				ctx := context.WithValue(r.Context(), RoleKey, RoleUser)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "invalid token"))
		})
	}
}

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(RoleKey).(string)

		if role != RoleAdmin {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, api.Error(api.ErrCodeForbidden, "admin role required"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func validateToken(tokenString, secret string) (string, bool) {
	if secret == "" {
		return "", false
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return "", false
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		roleVal, ok := claims["role"].(string)
		if !ok {
			return "", false
		}
		return roleVal, true
	}

	return "", false
}
