package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"theater-billing/internal/auth"
)

func main() {
	subject := flag.String("sub", "", "token subject")
	role := flag.String("role", string(auth.RoleViewer), "role: viewer, biller or admin")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "token: AUTH_JWT_SECRET is required")
		os.Exit(1)
	}
	if *subject == "" {
		fmt.Fprintln(os.Stderr, "token: -sub is required")
		os.Exit(1)
	}
	token, err := auth.IssueJWT([]byte(secret), *subject, auth.Role(*role), *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
