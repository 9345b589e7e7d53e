// internal/app/system/passwords/passwords.go

// Package passwords wraps bcrypt hashing for account credentials.
package passwords

import "golang.org/x/crypto/bcrypt"

// MinLength is the minimum accepted password length at signup.
const MinLength = 6

// Hash returns the bcrypt digest of a plaintext password at default cost.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify safely compares a bcrypt digest against a plaintext candidate.
func Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
