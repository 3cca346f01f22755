package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashPassword derives a salted bcrypt hash from the plaintext password.
// The salt is generated by bcrypt itself and embedded in the hash.
func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}
