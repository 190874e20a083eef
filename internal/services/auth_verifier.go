package services

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier gates the editing surface. The rest of the system only
// sees this interface, so the env-configured single credential below can be
// swapped for a real account backend without touching any handler.
type CredentialVerifier interface {
	Verify(username string, password string) bool
}

type StaticCredentialVerifier struct {
	username     string
	passwordHash []byte
}

func NewStaticCredentialVerifier(username string, passwordHash string) *StaticCredentialVerifier {
	return &StaticCredentialVerifier{
		username:     strings.TrimSpace(username),
		passwordHash: []byte(passwordHash),
	}
}

// NewStaticCredentialVerifierFromPassword hashes a plaintext password at
// construction, for deployments that configure EDITOR_PASSWORD directly.
func NewStaticCredentialVerifierFromPassword(username string, password string) (*StaticCredentialVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return NewStaticCredentialVerifier(username, string(hash)), nil
}

func (verifier *StaticCredentialVerifier) Verify(username string, password string) bool {
	if verifier.username == "" || len(verifier.passwordHash) == 0 {
		return false
	}
	usernameMatches := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(verifier.username)) == 1
	passwordMatches := bcrypt.CompareHashAndPassword(verifier.passwordHash, []byte(password)) == nil
	return usernameMatches && passwordMatches
}
