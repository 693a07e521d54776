// Package jwt provides JSON Web Token utilities for the Relay API.
//
// Tokens are signed with HMAC-SHA256 using a shared secret. The service
// fills in issuer, issued-at and expiry on signing, and checks signature,
// expiry and issuer on validation.
//
// # Token Generation
//
//	service, err := jwt.NewService(jwt.Config{
//	    Secret:     []byte("secret-key"),
//	    Issuer:     "relay",
//	    Expiration: time.Hour,
//	})
//
//	token, err := service.Sign(jwt.Claims{Subject: clientID, ClientID: clientID})
//
// # Token Validation
//
//	claims, err := service.Validate(token)
//	if errors.Is(err, jwt.ErrTokenExpired) {
//	    // expired
//	}
package jwt
