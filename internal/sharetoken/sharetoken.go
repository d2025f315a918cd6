// Package sharetoken issues and verifies opaque advisor share-link tokens.
// A token wraps a scenario-share record ID with fernet encryption so share
// links carry no raw identifiers.
package sharetoken

import (
	"fmt"
	"time"

	"github.com/fernet/fernet-go"
)

// Issuer encrypts share record IDs into URL-safe tokens.
type Issuer struct {
	key *fernet.Key
	ttl time.Duration
}

// NewIssuer creates an issuer from a base64 fernet key. TTL bounds how long
// issued tokens verify.
func NewIssuer(encodedKey string, ttl time.Duration) (*Issuer, error) {
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode share token key: %w", err)
	}
	return &Issuer{key: key, ttl: ttl}, nil
}

// GenerateKey produces a fresh base64 fernet key, for provisioning.
func GenerateKey() (string, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		return "", fmt.Errorf("failed to generate share token key: %w", err)
	}
	return key.Encode(), nil
}

// Issue encrypts a share record ID into a token.
func (i *Issuer) Issue(shareID string) (string, error) {
	token, err := fernet.EncryptAndSign([]byte(shareID), i.key)
	if err != nil {
		return "", fmt.Errorf("failed to issue share token: %w", err)
	}
	return string(token), nil
}

// Verify decrypts a token back to its share record ID. Expired or tampered
// tokens fail.
func (i *Issuer) Verify(token string) (string, error) {
	msg := fernet.VerifyAndDecrypt([]byte(token), i.ttl, []*fernet.Key{i.key})
	if msg == nil {
		return "", fmt.Errorf("invalid or expired share token")
	}
	return string(msg), nil
}
