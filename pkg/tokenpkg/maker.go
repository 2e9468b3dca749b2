// Package tokenpkg issues and verifies admin access tokens.
package tokenpkg

import (
	"fmt"
	"time"
)

// Maker is an interface for managing tokens.
type Maker interface {
	// CreateToken creates a new token for a specific username and duration.
	CreateToken(username string, duration time.Duration) (string, *Payload, error)
	// VerifyToken checks if the token is valid or not.
	VerifyToken(token string) (*Payload, error)
}

// Supported token kinds.
const (
	KindPaseto = "paseto"
	KindJWT    = "jwt"
)

// New returns the Maker of the given kind.
func New(kind, symmetricKey string) (Maker, error) {
	switch kind {
	case KindPaseto, "":
		return NewPasetoMaker(symmetricKey)
	case KindJWT:
		return NewJWTMaker(symmetricKey)
	}

	return nil, fmt.Errorf("unsupported token kind %q", kind)
}
