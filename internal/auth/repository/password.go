package repository

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a password using bcrypt. The salt is random, so two
// calls on the same input produce different strings that both verify.
func HashPassword(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash. A malformed hash is
// reported as a non-match, never an error.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
