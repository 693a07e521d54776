package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/forgo/relay/api/pkg/jwt"
)

// client-token mints a development access token directly, or hashes a
// client secret for the server's client registry.
func main() {
	secret := flag.String("secret", "", "HMAC signing secret (or set AUTH_TOKEN_SECRET)")
	clientID := flag.String("client", "dev-client", "Client ID for the token")
	issuer := flag.String("issuer", "relay.forgo.software", "Token issuer")
	ttl := flag.Duration("ttl", 7*24*time.Hour, "Token lifetime")
	hashSecret := flag.String("hash", "", "Instead of minting a token, print the bcrypt hash of this client secret")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	if *hashSecret != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*hashSecret), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error hashing secret: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(hash))
		return
	}

	signingSecret := *secret
	if signingSecret == "" {
		signingSecret = os.Getenv("AUTH_TOKEN_SECRET")
	}

	jwtService, err := jwt.NewService(jwt.Config{
		Secret:     []byte(signingSecret),
		Issuer:     *issuer,
		Expiration: *ttl,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating JWT service: %v\n", err)
		fmt.Fprintf(os.Stderr, "\nProvide a signing secret with -secret or AUTH_TOKEN_SECRET\n")
		os.Exit(1)
	}

	token, err := jwtService.Sign(jwt.Claims{
		Subject:  *clientID,
		ClientID: *clientID,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   int(ttl.Seconds()),
			"client_id":    *clientID,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
	} else {
		expTime := time.Now().Add(*ttl)
		fmt.Println("Client Token Generated")
		fmt.Println("======================")
		fmt.Printf("Client ID: %s\n", *clientID)
		fmt.Printf("Expires:   %s\n", expTime.Format(time.RFC3339))
		fmt.Println()
		fmt.Println("Token:")
		fmt.Println(token)
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Printf("  curl -H 'Authorization: Bearer <token>' http://localhost:8080/v1/members\n")
	}
}
