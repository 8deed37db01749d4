package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// makeToken signs an HS256 token carrying role that expires after ttl.
func makeToken(secret string, role string, ttl time.Duration) string {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	})

	s, err := t.SignedString([]byte(secret))
	if err != nil {
		panic(err)
	}
	return s
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	ttl := flag.Duration("ttl", 365*24*time.Hour, "Token lifetime")
	flag.Parse()

	adminSecret := envOr("ADMIN_JWT_SECRET", "admin_secret_key")
	userSecret := envOr("USER_JWT_SECRET", "user_secret_key")

	fmt.Println("ADMIN_TOKEN=" + makeToken(adminSecret, "admin", *ttl))
	fmt.Println("USER_TOKEN=" + makeToken(userSecret, "user", *ttl))
}
