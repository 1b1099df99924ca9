package service

import "golang.org/x/crypto/bcrypt"

// Raising the cost later invalidates nothing; bcrypt hashes embed their own
// cost parameter.
const bcryptCost = 12

// HashPassword produces a salted bcrypt hash. This is deliberately slow
// (tens of milliseconds); callers run it once per register/login request.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash. bcrypt's
// comparison is constant-time with respect to the password bytes.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
