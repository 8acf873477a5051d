package auth

import "golang.org/x/crypto/bcrypt"

// Checker validates submitted admin credentials against a stored bcrypt hash.
type Checker struct {
	hash []byte
}

func NewChecker(passwordHash string) *Checker {
	return &Checker{hash: []byte(passwordHash)}
}

// Check reports whether submitted matches the configured credential. Empty
// submissions always fail.
func (c *Checker) Check(submitted string) bool {
	if submitted == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.hash, []byte(submitted)) == nil
}

// Hash produces a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
