package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// makeToken signs a long-lived JWT carrying the given role claim.
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

func main() {
	ttl := flag.Duration("ttl", 365*24*time.Hour, "token lifetime")
	flag.Parse()

	adminSecret := os.Getenv("ADMIN_JWT_SECRET")
	if adminSecret == "" {
		adminSecret = "admin_secret_key"
	}
	userSecret := os.Getenv("USER_JWT_SECRET")
	if userSecret == "" {
		userSecret = "user_secret_key"
	}

	fmt.Println("ADMIN_TOKEN=" + makeToken(adminSecret, "admin", *ttl))
	fmt.Println("USER_TOKEN=" + makeToken(userSecret, "user", *ttl))
}
