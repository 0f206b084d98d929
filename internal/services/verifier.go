// Package services contains the application services of the calculator:
// authentication, entitlement resolution, the currency/progress ledger,
// house sorting, and the admin policy. Services are constructed once at
// startup and injected into the CLI; none of them keeps ambient globals.
package services

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier abstracts how a credential is stored and checked.
// The browser app this replaces stored and compared passwords verbatim; that
// is kept as the default, but it is isolated here so a deployment can swap
// in a salted-hash comparison without touching any caller.
type CredentialVerifier interface {
	// Store converts a plaintext credential into its stored form.
	Store(password string) (string, error)

	// Verify reports whether candidate matches the stored form.
	Verify(stored, candidate string) bool
}

// PlaintextVerifier keeps the legacy verbatim compare.
// It is not a security mechanism.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Store(password string) (string, error) {
	return password, nil
}

func (PlaintextVerifier) Verify(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// BcryptVerifier stores credentials as bcrypt hashes. Enabled via the
// hash_credentials config option.
type BcryptVerifier struct {
	// Cost is the bcrypt cost; zero means bcrypt.DefaultCost.
	Cost int
}

func (v BcryptVerifier) Store(password string) (string, error) {
	cost := v.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (v BcryptVerifier) Verify(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}
