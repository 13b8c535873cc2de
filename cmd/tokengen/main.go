// tokengen mints a signed access token for local development and
// smoke-testing the API without the hosted auth provider.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/security"
)

func main() {
	userID := flag.String("user", "", "user id (uuid); random when omitted")
	email := flag.String("email", "admin@fortisledger.io", "email claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	id := common.NewUUID()
	if *userID != "" {
		parsed, err := common.ParseUUID(*userID)
		if err != nil {
			log.Fatalf("invalid user id: %v", err)
		}
		id = parsed
	}

	token, expiresAt, err := security.NewJWTProvider(secret).Generate(id, *email, *ttl)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("user:    %s\nemail:   %s\nexpires: %s\n\n%s\n", id, *email, expiresAt.Format(time.RFC3339), token)
}
