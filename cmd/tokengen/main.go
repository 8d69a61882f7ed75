// Command tokengen mints a participant token for local runs and ops work.
//
// Usage:
//
//	tokengen -identity hsbk -ttl 24h
//
// The signing key comes from KYC_REGISTRY_JWT_KEY so the minted token
// matches what the server validates.
package main

import (
	"flag"
	"fmt"
	"os"

	"kycnet/internal/jwt_token"
	"kycnet/internal/platform/config"
)

func main() {
	identity := flag.String("identity", "", "participant identity to put in the token subject")
	ttl := flag.Duration("ttl", config.DefaultTokenTTL, "token lifetime")
	flag.Parse()

	if *identity == "" {
		fmt.Fprintln(os.Stderr, "tokengen: -identity is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	svc := jwttoken.NewService(cfg.JWTSigningKey, *ttl)

	token, err := svc.Issue(*identity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
